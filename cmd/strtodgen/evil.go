// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"

	"github.com/spf13/cobra"
)

var perturbPPM int

// newEvilCmd implements Generator 3 (§6.2): decimal strings sitting exactly
// at, or a tiny perturbation away from, the midpoint between two adjacent
// binary64 representables — the classic stress case for correct rounding.
func newEvilCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evil",
		Short: "Generator 3: midpoint and near-midpoint decimal strings",
		RunE:  runEvil,
	}
	cmd.Flags().IntVar(&perturbPPM, "perturb-ppm", 0, "perturb the midpoint by this many millionths of an ULP, signed; 0 means exact midpoints")
	return cmd
}

func runEvil(cmd *cobra.Command, args []string) error {
	out, closeOut, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut()

	r := rand.New(rand.NewSource(seed))
	for i := 0; i < count; i++ {
		bits := randFiniteBits(r)
		if bits == math.Float64bits(math.MaxFloat64) || bits == math.Float64bits(-math.MaxFloat64) {
			continue // no upward neighbor to bracket against
		}
		next := bits + 1
		if math.Signbit(math.Float64frombits(bits)) {
			next = bits - 1 // magnitude-adjacent neighbor for negative values
		}

		cur := new(big.Rat).SetFloat64(math.Float64frombits(bits))
		neighbor := new(big.Rat).SetFloat64(math.Float64frombits(next))
		mid := new(big.Rat).Add(cur, neighbor)
		mid.Quo(mid, big.NewRat(2, 1))

		if perturbPPM != 0 {
			ulp := new(big.Rat).Sub(neighbor, cur)
			ulp.Abs(ulp)
			delta := new(big.Rat).Mul(ulp, big.NewRat(int64(perturbPPM), 1_000_000))
			mid.Add(mid, delta)
		}

		resBits, prefix := correctlyRoundedBits(mid)
		// mid is a multiple of 2**-1080 * 5**-6, so 1080 fractional digits
		// write it exactly.
		dec := mid.FloatString(1080)
		if _, err := fmt.Fprintf(out, "%c%016x %s\n", prefix, resBits, dec); err != nil {
			return fmt.Errorf("strtodgen: evil: %w", err)
		}
	}
	return nil
}
