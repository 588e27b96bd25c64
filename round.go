// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

// roundTo implements the Rounder (§4.3): it converts a 56-bit normalized
// mantissa (top bit implicit-one, three guard bits, one sticky bit in the
// LSB) plus a binary exponent into a 64-bit IEEE-754 pattern under the
// given internal rounding mode. Ported from my_strtod99.c's ldexp_u.
func roundTo(m56 uint64, be int, mode internalMode) uint64 {
	be += 64 + 1023 + 63
	if be > 1023*2 {
		return uInf
	}

	mnt := m56 >> 3
	mntBits := 53 + 8
	if be < 1 {
		// subnormal
		rsh := 1 - be
		mntBits -= rsh
		be = 0
		if mntBits < 0 {
			if mode == modeUpward {
				return 1
			}
			return 0
		}
		mnt >>= uint(rsh)
	}

	tail := m56 << uint(mntBits)             // bits discarded beyond the stored mantissa
	res := mnt & (^uint64(0) >> 12)           // mask out the implicit leading one
	res |= uint64(be) << 52                  // biased exponent

	switch mode {
	case modeToNearest:
		tail |= mnt & 1 // break exact ties to even
		if tail > uint64(1)<<63 {
			res++
		}
	case modeUpward:
		if tail != 0 {
			res++
		}
	case modeTowardZero:
		// truncate: never increment
	}
	return res
}
