// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/big"
)

// correctlyRoundedBits computes the IEEE-754 binary64 pattern nearest the
// exact rational v (round-to-nearest-even), using math/big for the
// arbitrary-precision comparison against the two bracketing representables.
// This package deliberately reuses math/big rather than reimplementing
// multi-precision comparison, since general-purpose arbitrary-precision
// arithmetic is explicitly out of scope for the strtod package itself.
//
// The returned byte is the §6.2 tie-break marker: '+' if an exact tie was
// broken away from zero, '-' if toward zero, ' ' if v is not a tie at all.
func correctlyRoundedBits(v *big.Rat) (uint64, byte) {
	neg := v.Sign() < 0

	f64, _ := new(big.Float).SetPrec(300).SetRat(v).Float64()
	if math.IsInf(f64, 0) {
		bits := math.Float64bits(math.Inf(1))
		if neg {
			bits = math.Float64bits(math.Inf(-1))
		}
		return bits, ' '
	}
	bits := math.Float64bits(f64)

	cur := new(big.Rat).SetFloat64(f64)
	cmp := v.Cmp(cur)
	if cmp == 0 {
		return bits, ' '
	}

	var towardBits uint64
	if (cmp > 0) != neg {
		towardBits = bits + 1 // next magnitude up
	} else {
		towardBits = bits - 1 // next magnitude down
	}
	neighbor := new(big.Rat).SetFloat64(math.Float64frombits(towardBits))

	mid := new(big.Rat).Add(cur, neighbor)
	mid.Quo(mid, big.NewRat(2, 1))

	midCmp := v.Cmp(mid)
	if midCmp == 0 {
		// exact midpoint: round to the candidate with an even mantissa.
		chosen := bits
		if bits&1 != 0 {
			chosen = towardBits
		}
		// bits and towardBits share a sign, so the larger pattern is the
		// larger magnitude.
		if (chosen == towardBits) == (towardBits > bits) {
			return chosen, '+' // away from zero
		}
		return chosen, '-' // toward zero
	}

	// v is strictly between cur and mid, or strictly between mid and
	// towardBits; midCmp's sign (relative to the cmp direction) says which.
	if (midCmp > 0) == (cmp > 0) {
		return towardBits, ' '
	}
	return bits, ' '
}
