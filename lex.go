// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "strings"

// specialKind classifies a lexResult that short-circuits the numeric
// conversion pipeline entirely.
type specialKind byte

const (
	specialNone specialKind = iota
	specialInf
	specialNaN
	specialFail
)

// lexResult is the Parse result of §3: everything the Approximate
// multiplier and the Exact comparator need, expressed as byte offsets into
// the original string rather than raw pointers (Go strings are safe to
// index directly, so there is no need for the source's pointer arithmetic).
type lexResult struct {
	neg     bool
	special specialKind
	n       int // bytes of s consumed (the endPtr offset); 0 on structural failure

	mnt     uint64
	eom     int // offset where accumulation into mnt stopped
	hasDot  bool
	dot     int // offset of the radix point, valid only if encountered at/after eom
	hasLast bool
	last    int // offset of the last non-zero digit beyond eom
	decExp  int
}

const inplenMax = 100000

func atByte(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

func isWS(c byte) bool { return c <= 0x20 }

func hasFoldPrefix(s string, i int, word string) bool {
	if i < 0 || i+len(word) > len(s) {
		return false
	}
	return strings.EqualFold(s[i:i+len(word)], word)
}

// lex implements the Lexer (§4.1): it scans s from the start, recognizing
// the grammar's sign, significand, and exponent, and returns either a
// special result (structural failure or an INF/NAN token) or a fully
// populated lexResult ready for the Approximate multiplier.
func lex(s string) lexResult {
	i := 0
	for i < len(s) && isWS(s[i]) {
		i++
	}

	neg := false
	switch atByte(s, i) {
	case '+':
		i++
	case '-':
		i++
		neg = true
	}

	const mntLimit = (^uint64(0) - 9) / 10

	dotAvail := true // false once a radix point has been consumed
	hasEffDot := false
	effDot := 0
	if atByte(s, i) == '.' {
		i++
		effDot = i
		hasEffDot = true
		dotAvail = false
	}

	mantStart := i
	p := i
	var mnt uint64
	eom := -1
	hasDot := false
	dot := 0
	hasLast := false
	last := 0

loop:
	for {
		for {
			dig := atByte(s, p) - '0'
			if dig > 9 {
				break
			}
			p++
			mnt = mnt*10 + uint64(dig)
			if mnt > mntLimit {
				eom = p
				for {
					c := atByte(s, p)
					for c >= '0' && c <= '9' {
						p++
						c = atByte(s, p)
					}
					if !dotAvail || c != '.' {
						break
					}
					dot = p
					hasDot = true
					effDot = p
					hasEffDot = true
					dotAvail = false
					p++
				}
				if p > eom {
					last = p - 1
					for atByte(s, last) == '0' {
						last--
					}
					if hasDot && last == dot {
						last--
						for atByte(s, last) == '0' {
							last--
						}
					}
					if last < eom {
						hasLast = false
					} else {
						hasLast = true
					}
				}
				break loop
			}
		}
		// non-digit
		if !dotAvail || atByte(s, p) != '.' {
			eom = p
			if p == mantStart {
				// no digits consumed at all: look for INF/INFINITY/NAN,
				// but only if no dot was ever seen.
				if !hasEffDot {
					if hasFoldPrefix(s, p, "INF") {
						end := p + 3
						if hasFoldPrefix(s, end, "INITY") {
							end += 5
						}
						return lexResult{neg: neg, special: specialInf, n: end}
					}
					if hasFoldPrefix(s, p, "NAN") {
						return lexResult{neg: neg, special: specialNaN, n: p + 3}
					}
				}
				return lexResult{special: specialFail}
			}
			break loop
		}
		// dot found before overflow
		effDot = p + 1
		hasEffDot = true
		dotAvail = false
		p++
	}

	if p-mantStart > inplenMax {
		return lexResult{special: specialFail}
	}

	if !hasEffDot {
		effDot = p
	}
	decExp := effDot - eom

	n := p
	if c := atByte(s, p); c == 'e' || c == 'E' {
		q := p + 1
		expNeg := false
		switch atByte(s, q) {
		case '+':
			q++
		case '-':
			q++
			expNeg = true
		}
		if d := atByte(s, q); d >= '0' && d <= '9' {
			acc := 0
			for {
				dig := atByte(s, q) - '0'
				if dig > 9 {
					break
				}
				q++
				if acc = acc*10 + int(dig); acc > inplenMax*2 {
					acc = inplenMax * 2
				}
			}
			if expNeg {
				acc = -acc
			}
			decExp += acc
			n = q
		}
	}

	return lexResult{
		neg:     neg,
		special: specialNone,
		n:       n,
		mnt:     mnt,
		eom:     eom,
		hasDot:  hasDot,
		dot:     dot,
		hasLast: hasLast,
		last:    last,
		decExp:  decExp,
	}
}
