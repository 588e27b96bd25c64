// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

import "testing"

func TestLexSpecials(t *testing.T) {
	data := []struct {
		in      string
		special specialKind
		neg     bool
		n       int
	}{
		{"inf", specialInf, false, 3},
		{"-Infinity", specialInf, true, 9},
		{"NAN", specialNaN, false, 3},
		{"+nan", specialNaN, false, 4},
		{"", specialFail, false, 0},
		{"abc", specialFail, false, 0},
		{"  ", specialFail, false, 0},
		{".", specialFail, false, 0},
		{"e10", specialFail, false, 0},
	}
	for _, d := range data {
		lr := lex(d.in)
		if lr.special != d.special {
			t.Errorf("lex(%q).special = %d, want %d", d.in, lr.special, d.special)
			continue
		}
		if d.special == specialFail {
			continue
		}
		if lr.neg != d.neg || lr.n != d.n {
			t.Errorf("lex(%q) = {neg:%v n:%d}, want {neg:%v n:%d}", d.in, lr.neg, lr.n, d.neg, d.n)
		}
	}
}

func TestLexDecExp(t *testing.T) {
	data := []struct {
		in     string
		mnt    uint64
		decExp int
		n      int
	}{
		{"12.345", 12345, -3, 6},
		{"123", 123, 0, 3},
		{"0.001", 1, -3, 5},
		{"1.5e10", 15, 9, 6},
		{"1.5e-10", 15, -11, 7},
		{"100", 100, 0, 3},
		{".5", 5, -1, 2},
	}
	for _, d := range data {
		lr := lex(d.in)
		if lr.special != specialNone {
			t.Fatalf("lex(%q): unexpected special %d", d.in, lr.special)
		}
		if lr.mnt != d.mnt || lr.decExp != d.decExp || lr.n != d.n {
			t.Errorf("lex(%q) = {mnt:%d decExp:%d n:%d}, want {mnt:%d decExp:%d n:%d}",
				d.in, lr.mnt, lr.decExp, lr.n, d.mnt, d.decExp, d.n)
		}
	}
}

func TestLexWhitespaceAndSign(t *testing.T) {
	lr := lex("   -42")
	if !lr.neg || lr.mnt != 42 || lr.n != 6 {
		t.Fatalf("lex(%q) = %+v", "   -42", lr)
	}
}

func TestLexTrailingGarbageNotConsumed(t *testing.T) {
	lr := lex("42abc")
	if lr.special != specialNone || lr.n != 2 || lr.mnt != 42 {
		t.Fatalf("lex(%q) = %+v", "42abc", lr)
	}
}
