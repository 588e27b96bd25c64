// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "math/bits"

const uInf = uint64(2047) << 52

// mul128by64 multiplies the 128-bit value (hi:lo) by the 64-bit y, producing
// a 192-bit result (rhi:rmid:rlo). Grounded on my_strtod99.c's inline
// __int128 arithmetic for the tab28 multiplication stage (§4.2 step 3),
// expressed here with math/bits.Mul64/Add64 the way db47h-decimal's
// dec_arith.go builds its own wide multiplies.
func mul128by64(hi, lo, y uint64) (rhi, rmid, rlo uint64) {
	h1, l1 := bits.Mul64(hi, y)
	h0, l0 := bits.Mul64(lo, y)
	mid, carry := bits.Add64(l1, h0, 0)
	return h1 + carry, mid, l0
}

// estimate implements the Approximate multiplier (§4.2). It returns the
// dual 56-bit mantissa estimates and their respective binary exponents
// (beL and beU differ by at most one bit position, per the renormalization
// below), unless one of the definite shortcuts (zero, overflow, underflow)
// applies, in which case definite holds the final unsigned pattern (sign
// not yet applied) and ok is false.
func estimate(mnt uint64, decExp int, lastDig bool, mode internalMode) (mntL, mntU uint64, beL, beU int, definite uint64, ok bool) {
	if mnt == 0 {
		return 0, 0, 0, 0, 0, false
	}
	if decExp > 308 {
		return 0, 0, 0, 0, uInf, false
	}
	if decExp < -342 {
		if mode != modeUpward {
			return 0, 0, 0, 0, 0, false
		}
		return 0, 0, 0, 0, 1, false
	}

	ie := decExp + 13*28
	iH := ie / 28
	iL := ie % 28

	mL := mnt
	mU := mnt
	if lastDig {
		mU++
	}

	m2L, m1L := bits.Mul64(mL, tab1[iL])
	m2U, m1U := bits.Mul64(mU, tab1[iL])
	var m0L, m0U uint64

	be := iL
	if iH != 13 {
		be += (((iH - 13) * 24383059) >> 18) + 1
		x28 := tab28[iH]
		m2L, m1L, m0L = mul128by64(m2L, m1L, x28)
		m2U, m1U, m0U = mul128by64(m2U, m1U, x28+1)

		if m2U == 0 {
			be -= 64
			m2L, m1L, m0L = m1L, m0L, 0
			m2U, m1U, m0U = m1U, m0U, 0
		}
	}

	if m2U == 0 {
		be -= 64
		m2L, m1L = m1L, 0
		m2U, m1U = m1U, 0
	}

	// normalize m2U:m1U, mirroring the shift onto m2L:m1L
	if lsh := bits.LeadingZeros64(m2U); lsh != 0 {
		m2L = (m2L << lsh) | (m1L >> (64 - lsh))
		m1L <<= lsh
		m2U = (m2U << lsh) | (m1U >> (64 - lsh))
		m1U <<= lsh
		be -= lsh
	}

	// compress to 56 bits, folding discarded bits into a sticky low bit
	m2U = (m2U >> 8) | b2u(((m2U&255)|m1U|m0U) != 0)
	m2L = (m2L >> 8) | b2u(((m2L&255)|m1L|m0L) != 0)

	// m2U carries the top 55 bits of the product with the discarded bits
	// folded into a sticky LSB, so its top bit (bit 55) is always set by the
	// normalization above. m2L shares
	// the same shift count but was derived from a smaller product (mntL <=
	// mntU), so it can come up to 54 data bits short one bit position; when
	// that happens renormalize it on its own, one bit at a time, adjusting
	// only its own exponent copy. Ported from my_strtod99.c's do/while loop
	// re-deriving m2L against BIT55.
	beL, beU = be, be
	const bit55 = uint64(1) << 55
	if m2L < bit55 {
		m2L <<= 1
		beL--
	}

	return m2L, m2U, beL, beU, 0, true
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
