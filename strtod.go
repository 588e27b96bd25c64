// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "math"

const signBit = uint64(1) << 63

// qNaNBits is the canonical quiet-NaN pattern returned for a bare "nan"
// token (§4.1, §8): all exponent and mantissa bits set, sign clear.
const qNaNBits = uint64(0x7FFFFFFFFFFFFFFF)

// Strtod converts the leading floating-point token in s into a float64,
// following the grammar of §4.1 and the rounding behavior selected by the
// ambient mode (SetMode/Mode). n is the number of bytes of s that made up
// the token; n==0 means no valid token was found, and value is then always
// +0.0 with no sign applied.
func Strtod(s string) (value float64, n int) {
	return strtodMode(s, Mode())
}

// strtodMode is Strtod with an explicit rounding mode, bypassing the
// ambient package state; used by tests that need to exercise more
// than one mode without racing SetMode against themselves.
func strtodMode(s string, mode RoundingMode) (float64, int) {
	lr := lex(s)

	switch lr.special {
	case specialFail:
		return 0, 0
	case specialInf:
		bits := uInf
		if lr.neg {
			bits |= signBit
		}
		return math.Float64frombits(bits), lr.n
	case specialNaN:
		bits := qNaNBits
		if lr.neg {
			bits |= signBit
		}
		return math.Float64frombits(bits), lr.n
	}

	im := mode.direct(lr.neg)

	mntL, mntU, beL, beU, definite, ok := estimate(lr.mnt, lr.decExp, lr.hasLast, im)

	var resBits uint64
	if !ok {
		resBits = definite
	} else {
		resL := roundTo(mntL, beL, im)
		resU := roundTo(mntU, beU, im)
		if resL == resU {
			resBits = resL
		} else {
			cmp := compareThreshold(lr, s, resL, im)
			resBits = resL
			switch im {
			case modeToNearest:
				if cmp == 0 {
					cmp = int(resL & 1) // exact tie: round to even
				}
				if cmp > 0 {
					resBits = resU
				}
			case modeUpward:
				if cmp > 0 {
					resBits = resU
				}
			case modeTowardZero:
				if cmp >= 0 {
					resBits = resU
				}
			}
		}
	}

	if lr.neg {
		resBits |= signBit
	}
	return math.Float64frombits(resBits), lr.n
}
