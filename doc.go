// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package strtod converts decimal floating-point literals to the nearest
(or otherwise correctly rounded) float64, the way a C99 strtod would.

    v, n := strtod.Strtod("  -0.1e+3 ")
    // v == -100, n == 9

Strtod accepts the usual C-locale grammar: an optional sign, a decimal
significand with optional fractional part, an optional decimal exponent
introduced by 'e' or 'E', or one of the case-insensitive tokens "inf",
"infinity" and "nan". Leading whitespace is skipped. n reports how many
bytes of the input were consumed; a 0 result means no valid token was
found at the start of the string, in which case the returned value is
always +0.0.

Internally, conversion runs in three stages: a fast path computes two
candidate float64 values bracketing the true value from a 64-bit
truncation of the input's significand and a compact table of powers of
ten, then rounds both to float64 under the current rounding mode. If the
two candidates agree, that is the answer. On the rare disagreement, an
exact multi-precision comparison between the input and the midpoint (or
appropriate threshold) between the two candidates picks the correctly
rounded one. This mirrors the classic strtod designs the package is
derived from and avoids falling back to arbitrary-precision arithmetic on
the common case.

The rounding mode applied to ambiguous conversions is ambient package
state, read via Mode and set via SetMode; both may be called concurrently
with Strtod. The default is ToNearestEven.
*/
package strtod
