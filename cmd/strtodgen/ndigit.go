// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
)

var (
	nDigits  int
	expRange int
)

// newNDigitCmd implements Generator 2 (§6.2): random nDigits-digit decimal
// significands at a random decimal exponent, each correctly rounded via
// math/big.
func newNDigitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ndigit",
		Short: "Generator 2: random n-digit decimal significands",
		RunE:  runNDigit,
	}
	cmd.Flags().IntVar(&nDigits, "digits", 17, "significand digit count (2..800)")
	cmd.Flags().IntVar(&expRange, "exp-range", 300, "decimal exponent sampled uniformly in [-exp-range, exp-range]")
	return cmd
}

func runNDigit(cmd *cobra.Command, args []string) error {
	if nDigits < 2 || nDigits > 800 {
		return fmt.Errorf("strtodgen: ndigit: digits must be in [2,800], got %d", nDigits)
	}
	out, closeOut, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut()

	r := rand.New(rand.NewSource(seed))
	ten := big.NewInt(10)
	for i := 0; i < count; i++ {
		sig := randomDigits(r, nDigits)
		exp := r.Intn(2*expRange+1) - expRange

		n := new(big.Int)
		n.SetString(sig, 10)
		v := new(big.Rat).SetInt(n)
		if exp > 0 {
			scale := new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil)
			v.Mul(v, new(big.Rat).SetInt(scale))
		} else if exp < 0 {
			scale := new(big.Int).Exp(ten, big.NewInt(int64(-exp)), nil)
			v.Quo(v, new(big.Rat).SetInt(scale))
		}

		bits, prefix := correctlyRoundedBits(v)
		if _, err := fmt.Fprintf(out, "%c%016x %se%d\n", prefix, bits, sig, exp); err != nil {
			return fmt.Errorf("strtodgen: ndigit: %w", err)
		}
	}
	return nil
}

// randomDigits returns an n-digit decimal string with a non-zero leading
// digit.
func randomDigits(r *rand.Rand, n int) string {
	var b strings.Builder
	b.WriteByte(byte('1' + r.Intn(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + r.Intn(10)))
	}
	return b.String()
}
