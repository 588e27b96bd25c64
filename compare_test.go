// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import (
	"math"
	"testing"
)

// TestCompareThresholdCaseA exercises the lr.decExp >= 0 branch: the source
// digit string builds a plain multi-precision integer, scaled by trailing
// zeros. A candidate well below the source value must compare as "source
// above threshold" (1); a candidate at or above it must compare as "source
// below threshold" (-1), since the threshold sits at candidate's midpoint to
// its upward neighbor.
func TestCompareThresholdCaseA(t *testing.T) {
	lr := lex("100")
	if lr.decExp < 0 {
		t.Fatalf("lex(\"100\").decExp = %d, want >= 0", lr.decExp)
	}
	below := math.Float64bits(99)
	if cmp := compareThreshold(lr, "100", below, modeToNearest); cmp <= 0 {
		t.Errorf("compareThreshold(100, candidate=99) = %d, want > 0", cmp)
	}
	atValue := math.Float64bits(100)
	if cmp := compareThreshold(lr, "100", atValue, modeToNearest); cmp >= 0 {
		t.Errorf("compareThreshold(100, candidate=100) = %d, want < 0", cmp)
	}
	above := math.Float64bits(101)
	if cmp := compareThreshold(lr, "100", above, modeToNearest); cmp >= 0 {
		t.Errorf("compareThreshold(100, candidate=101) = %d, want < 0", cmp)
	}
}

// TestCompareThresholdCaseB exercises the lr.decExp < 0 branch: the
// candidate's mantissa is scaled up by a power of five instead of the
// source.
func TestCompareThresholdCaseB(t *testing.T) {
	lr := lex("0.001")
	if lr.decExp >= 0 {
		t.Fatalf("lex(\"0.001\").decExp = %d, want < 0", lr.decExp)
	}
	below := math.Float64bits(0.0005)
	if cmp := compareThreshold(lr, "0.001", below, modeToNearest); cmp <= 0 {
		t.Errorf("compareThreshold(0.001, candidate=0.0005) = %d, want > 0", cmp)
	}
	above := math.Float64bits(0.01)
	if cmp := compareThreshold(lr, "0.001", above, modeToNearest); cmp >= 0 {
		t.Errorf("compareThreshold(0.001, candidate=0.01) = %d, want < 0", cmp)
	}
}

// TestCompareThresholdModeTowardZeroShiftsCandidate confirms that
// modeTowardZero evaluates the threshold against the next representable
// value up from candidate (candidate+1 internally), rather than candidate
// itself: with a candidate equal to the exact decimal integer source, the
// advanced threshold lies above the source, so neither mode may report the
// source as above its threshold.
func TestCompareThresholdModeTowardZeroShiftsCandidate(t *testing.T) {
	lr := lex("2")
	c := math.Float64bits(2)
	cmpNearest := compareThreshold(lr, "2", c, modeToNearest)
	cmpZero := compareThreshold(lr, "2", c, modeTowardZero)
	if cmpNearest == 0 && cmpZero == 0 {
		t.Skip("candidate already exact at both thresholds")
	}
	// Both modes must still agree the source isn't above a threshold built
	// from its own exact bit pattern.
	if cmpNearest > 0 || cmpZero > 0 {
		t.Errorf("compareThreshold(2, candidate=2) returned a positive result for an exact candidate: nearest=%d zero=%d", cmpNearest, cmpZero)
	}
}

func TestMulAddScalarCarry(t *testing.T) {
	var buf [maxLimbs]uint64
	buf[0] = ^uint64(0)
	n := mulAddScalar(buf[:], buf[:], 1, 2, 0)
	if n != 2 {
		t.Fatalf("mulAddScalar word count = %d, want 2", n)
	}
	if buf[0] != ^uint64(1) {
		t.Errorf("buf[0] = %#x, want %#x", buf[0], ^uint64(1))
	}
	if buf[1] != 1 {
		t.Errorf("buf[1] = %#x, want 1 (carry)", buf[1])
	}
}

func TestReadDigitsSkipsDot(t *testing.T) {
	val, pos := readDigits("12.34", 0, 2, true, 4)
	if val != 1234 {
		t.Errorf("readDigits value = %d, want 1234", val)
	}
	if pos != 5 {
		t.Errorf("readDigits newPos = %d, want 5", pos)
	}
}

func TestPow10w(t *testing.T) {
	for n := 0; n <= 19; n++ {
		got := pow10w(n)
		want := uint64(1)
		for i := 0; i < n; i++ {
			want *= 10
		}
		if n < 20 && got != want {
			t.Errorf("pow10w(%d) = %d, want %d", n, got, want)
		}
	}
}
