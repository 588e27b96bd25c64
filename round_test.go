// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "testing"

func TestRoundToExactPowerOfTwo(t *testing.T) {
	// 2**0 = 1.0: m56 has the implicit leading one set and nothing else,
	// binExp chosen so roundTo's internal be offset lands on 1023 (the bias
	// for exponent field value 1023, i.e. 2**0).
	m56 := uint64(1) << 55
	be := -1023 - 64 - 63 + 1023
	got := roundTo(m56, be, modeToNearest)
	want := uint64(0x3FF0000000000000)
	if got != want {
		t.Fatalf("roundTo(1.0) = %#016x, want %#016x", got, want)
	}
}

func TestRoundToOverflowsToInf(t *testing.T) {
	m56 := uint64(1) << 55
	got := roundTo(m56, 1024, modeToNearest)
	if got != uInf {
		t.Fatalf("roundTo(huge) = %#016x, want %#016x", got, uInf)
	}
}

func TestRoundToTiesToEven(t *testing.T) {
	// An exact tie (sticky bit clear, guard bits exactly at the halfway
	// point) must round to whichever candidate has an even mantissa.
	const be = -1023 - 64 - 63 + 1023

	even := (uint64(1) << 55) // mantissa bits all zero: already even
	tie := even | (uint64(1) << 2)
	got := roundTo(tie, be, modeToNearest)
	if got&1 != 0 {
		t.Fatalf("roundTo tie-to-even on an even candidate incremented: %#016x", got)
	}

	odd := even | 1<<3 // low mantissa bit set: candidate is odd
	tie2 := odd | (uint64(1) << 2)
	got2 := roundTo(tie2, be, modeToNearest)
	if got2&1 != 0 {
		t.Fatalf("roundTo tie-to-even on an odd candidate did not round up: %#016x", got2)
	}
}

func TestRoundToTowardZeroNeverIncrements(t *testing.T) {
	const be = -1023 - 64 - 63 + 1023
	m56 := (uint64(1) << 55) | 0x7 // every discardable bit set
	got := roundTo(m56, be, modeTowardZero)
	mntOnly := roundTo((uint64(1)<<55)|0, be, modeTowardZero)
	if got != mntOnly {
		t.Fatalf("modeTowardZero incremented: got %#016x, want %#016x", got, mntOnly)
	}
}

func TestRoundToSubnormal(t *testing.T) {
	// Smallest positive subnormal: 2**-1074, mantissa field all zero except
	// the final bit.
	be := -1074 - 64 - 63
	m56 := uint64(1) << 55
	got := roundTo(m56, be, modeToNearest)
	if got != 1 {
		t.Fatalf("roundTo(smallest subnormal) = %#016x, want 1", got)
	}
}
