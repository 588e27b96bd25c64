// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "sync/atomic"

// RoundingMode selects how Strtod resolves a decimal value that falls
// strictly between two adjacent binary64 representables.
type RoundingMode byte

// Supported rounding modes, named after the teacher package's own
// RoundingMode enum (db47h-decimal/stdlib.go) since they play the same
// role here: ToNearestEven is the IEEE 754 default, ToNegativeInf and
// ToPositiveInf are the two directed modes, and ToZero truncates.
const (
	ToNearestEven RoundingMode = iota
	ToNegativeInf
	ToPositiveInf
	ToZero
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	case ToZero:
		return "ToZero"
	default:
		return "RoundingMode(?)"
	}
}

// internalMode is the sign-normalized, 3-way mode the Rounder and the
// Exact comparator actually operate on (SPEC_FULL.md §4.5).
type internalMode byte

const (
	modeToNearest internalMode = iota
	modeTowardZero
	modeUpward
)

// direct maps the ambient RoundingMode and the sign of the value being
// produced to the internal mode, per §4.5's table.
func (m RoundingMode) direct(neg bool) internalMode {
	switch m {
	case ToNegativeInf:
		if neg {
			return modeUpward
		}
		return modeTowardZero
	case ToPositiveInf:
		if neg {
			return modeTowardZero
		}
		return modeUpward
	case ToZero:
		return modeTowardZero
	default: // ToNearestEven
		return modeToNearest
	}
}

var ambientMode atomic.Value // stores RoundingMode

func init() {
	ambientMode.Store(ToNearestEven)
}

// SetMode sets the package-wide ambient rounding mode used by Strtod.
// It may be called concurrently with Strtod; a call to SetMode happens
// before any Strtod call that observes its effect, but SetMode and
// Strtod impose no ordering on each other beyond the usual atomic-value
// guarantees (SPEC_FULL.md §5).
func SetMode(m RoundingMode) {
	ambientMode.Store(m)
}

// Mode returns the current ambient rounding mode.
func Mode() RoundingMode {
	return ambientMode.Load().(RoundingMode)
}
