// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"
)

// newUniformCmd implements Generator 1 (§6.2): random, uniformly distributed
// finite binary64 values, each emitted with its canonical 17-digit decimal
// form.
func newUniformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uniform",
		Short: "Generator 1: random finite binary64 values",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, closeOut, err := openOut()
			if err != nil {
				return err
			}
			defer closeOut()

			r := rand.New(rand.NewSource(seed))
			for i := 0; i < count; i++ {
				bits := randFiniteBits(r)
				v := math.Float64frombits(bits)
				dec := strconv.FormatFloat(v, 'e', 16, 64)
				if _, err := fmt.Fprintf(out, "%016x %s\n", bits, dec); err != nil {
					return fmt.Errorf("strtodgen: uniform: %w", err)
				}
			}
			return nil
		},
	}
}

// randFiniteBits draws a uniformly random binary64 bit pattern, rejecting
// NaNs and infinities.
func randFiniteBits(r *rand.Rand) uint64 {
	for {
		bits := r.Uint64()
		v := math.Float64frombits(bits)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return bits
		}
	}
}
