// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "math/bits"

// maxLimbs bounds the Multi-precision buffer (§3): 18 words are proven
// sufficient for inputs up to the lexer's length cap, since the largest
// scaling factor used is approximately 5**342; 20 leaves slack for the
// couple of guard words the extraction steps below zero out ahead of use.
const maxLimbs = 20

// mulAddScalar multiplies the nwords-limb vector src by the scalar y, adds
// acc into the least-significant limb, and stores the nwords-limb result
// (plus any final carry limb) into dst. dst and src may be the same slice.
// Grounded on my_strtod99.c's mp_mulw.
func mulAddScalar(dst, src []uint64, nwords int, y, acc uint64) int {
	for i := 0; i < nwords; i++ {
		hi, lo := bits.Mul64(src[i], y)
		lo, c := bits.Add64(lo, acc, 0)
		dst[i] = lo
		acc = hi + c
	}
	dst[nwords] = acc
	if acc != 0 {
		return nwords + 1
	}
	return nwords
}

// readDigits reads exactly n decimal digit characters from s starting at
// pos, transparently stepping over the single byte at dotPos (the stored
// radix point) if the scan passes over it. This replaces the source's
// Ascii18ToBin/move8 contiguous-buffer tricks, which exist only to work
// around C's lack of safe random string indexing.
func readDigits(s string, pos, dotPos int, hasDot bool, n int) (val uint64, newPos int) {
	for n > 0 {
		if hasDot && pos == dotPos {
			pos++
			continue
		}
		val = val*10 + uint64(s[pos]-'0')
		pos++
		n--
	}
	return val, pos
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// pow10w returns 10**n as tab1[n] * 2**n, valid for n in [0,19]; used
// wherever the comparator needs to scale the multi-precision integer by
// an explicit power of ten rather than a bare power of five.
func pow10w(n int) uint64 { return tab1[n] << uint(n) }

// compareThreshold implements the Exact comparator (§4.4): it returns the
// sign of (exact source value - threshold), where threshold is candidate
// adjusted by the appropriate ULP fraction for mode.
func compareThreshold(lr lexResult, s string, candidate uint64, mode internalMode) int {
	const bit53 = uint64(1) << 53
	const msk53 = bit53 - 1
	const msk54 = uint64(1)<<54 - 1

	u := candidate
	if mode == modeTowardZero {
		u++ // Thr = next representable value
	}
	mnt := ((u * 2) & msk53) | bit53
	biasedExp := int(u >> 52)
	if biasedExp == 0 {
		mnt &= msk53
		biasedExp = 1
	}
	nBe := 1023 + 53 - biasedExp // Thr = mnt * 2**(-nBe)
	if mode == modeToNearest {
		mnt++ // Thr = midpoint between representables
	}

	str := lr.eom
	endStr := str
	nSrcDigits := 0
	if lr.hasLast {
		endStr = lr.last + 1
		nSrcDigits = endStr - str
		if lr.hasDot && lr.dot < endStr {
			nSrcDigits--
		}
	}

	var x [maxLimbs]uint64

	if lr.decExp >= 0 {
		srcDecExp := lr.decExp
		x[0] = lr.mnt
		nwords := 1

		nCvtDigits := minInt(srcDecExp, nSrcDigits)
		srcDecExp -= nCvtDigits
		nSrcDigits -= nCvtDigits

		pos := str
		for nCvtDigits >= 19 {
			var val uint64
			val, pos = readDigits(s, pos, lr.dot, lr.hasDot, 19)
			nwords = mulAddScalar(x[:], x[:], nwords, pow10w(19), val)
			nCvtDigits -= 19
		}
		if nCvtDigits > 0 {
			var val uint64
			val, pos = readDigits(s, pos, lr.dot, lr.hasDot, nCvtDigits)
			nwords = mulAddScalar(x[:], x[:], nwords, pow10w(nCvtDigits), val)
		}
		for srcDecExp > 0 {
			nd := minInt(srcDecExp, 19)
			nwords = mulAddScalar(x[:], x[:], nwords, pow10w(nd), 0)
			srcDecExp -= 19
		}

		if nBe > 0 {
			// Thr has fractional bits and X has none; a source with digits
			// beyond eom is at least 2**60, far above any such Thr.
			if nwords > 1 || (nBe >= 64 && x[0] != 0) || (nBe < 64 && x[0]>>uint(64-nBe) != 0) {
				return 1
			}
			if sx := x[0] << uint(nBe); sx != mnt {
				if sx < mnt {
					return -1
				}
				return 1
			}
			if pos < endStr {
				return 1
			}
			return 0
		}
		be := -nBe
		wi, bi := be/64, be%64
		sMnt := x[wi]
		var sRem uint64
		if bi != 0 {
			sRem = sMnt << uint(64-bi)
			sMnt = (sMnt >> uint(bi)) | (x[wi+1] << uint(64-bi))
		}
		sMnt &= msk54

		if sMnt != mnt {
			if sMnt < mnt {
				return -1
			}
			return 1
		}
		if pos < endStr {
			return 1 // more non-zero digits follow in the source
		}
		if sRem != 0 {
			return 1
		}
		for i := 0; i < wi; i++ {
			if x[i] != 0 {
				return 1
			}
		}
		return 0
	}

	// decExp < 0: threshold is scaled up by 5**(-decExp) instead.
	srcDecExp := lr.decExp
	nBe += srcDecExp
	multPowerOfTen := -srcDecExp

	var nwords int
	if multPowerOfTen >= 220 {
		tbl := pow5_220
		if multPowerOfTen >= 303 {
			tbl = pow5_303
		}
		nwords = mulAddScalar(x[:], tbl.limbs, len(tbl.limbs), mnt, 0)
		multPowerOfTen -= tbl.power
	} else {
		x[0] = mnt
		nwords = 1
	}
	for multPowerOfTen > 0 {
		nd := minInt(multPowerOfTen, 27)
		nwords = mulAddScalar(x[:], x[:], nwords, tab1[nd], 0)
		multPowerOfTen -= 27
	}
	x[nwords] = 0
	x[nwords+1] = 0
	x[nwords+2] = 0

	var xw uint64
	if nBe >= 0 {
		wi, bi := nBe/64, nBe%64
		x0, x1 := x[wi], x[wi+1]
		x[wi], x[wi+1] = 0, 0
		xw = x0
		if bi != 0 {
			xw = (x0 >> uint(bi)) | (x1 << uint(64-bi))
			x[wi] = x0 & (^uint64(0) >> uint(64-bi))
		}
	} else {
		xw = x[0] << uint(-nBe)
	}

	if lr.mnt != xw {
		if lr.mnt < xw {
			return -1
		}
		return 1
	}

	if !lr.hasLast {
		if nBe > 0 {
			nw := (nBe-1)/64 + 1
			for i := 0; i < nw; i++ {
				if x[i] != 0 {
					return -1
				}
			}
		}
		return 0
	}
	endStr = lr.last + 1

	nCmpDigits := minInt(nBe, nSrcDigits)
	pos := lr.eom
	for nCmpDigits > 0 {
		nDig := minInt(nCmpDigits, 19)
		nwLimbs := (nBe-1)/64 + 1
		mulAddScalar(x[:], x[:], nwLimbs, tab1[nDig], 0)
		nBe -= nDig
		nCmpDigits -= nDig

		var val uint64
		val, pos = readDigits(s, pos, lr.dot, lr.hasDot, nDig)

		wi, bi := nBe/64, nBe%64
		x0 := x[wi]
		xw := x0
		x[wi] = 0
		if bi != 0 {
			x1 := x[wi+1]
			xw = (x0 >> uint(bi)) | (x1 << uint(64-bi))
			x[wi] = x0 & (^uint64(0) >> uint(64-bi))
			x[wi+1] = 0
		}
		if val != xw {
			if val < xw {
				return -1
			}
			return 1
		}
	}

	if pos != endStr {
		return 1
	}
	if nBe > 0 {
		nw := (nBe-1)/64 + 1
		for i := 0; i < nw; i++ {
			if x[i] != 0 {
				return -1
			}
		}
	}
	return 0
}
