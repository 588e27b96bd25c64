// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strtod

// tab1 holds 5**k for k in [0,27], used both by the Approximate multiplier
// (§4.2) as the exact low-order factor and by the Exact comparator (§4.4)
// as scalar multipliers when scaling the multi-precision buffer.
var tab1 = [28]uint64{
	1,
	5,
	25,
	125,
	625,
	3125,
	15625,
	78125,
	390625,
	1953125,
	9765625,
	48828125,
	244140625,
	1220703125,
	6103515625,
	30517578125,
	152587890625,
	762939453125,
	3814697265625,
	19073486328125,
	95367431640625,
	476837158203125,
	2384185791015625,
	11920928955078125,
	59604644775390625,
	298023223876953125,
	1490116119384765625,
	7450580596923828125,
}

// tab28 holds 10**((k-13)*28), pre-rounded toward zero to 64 bits, for k in
// [0,24]. Used by the Approximate multiplier's second multiplication stage
// (§4.2 step 3); tab28[k]+1 is the corresponding upper-bound factor.
var tab28 = [25]uint64{
	0xe1afa13afbd14d6d, //  10**(-364) * 2**(64+1209)
	0xe3e27a444d8d98b7, //  10**(-336) * 2**(64+1116)
	0xe61acf033d1a45df, //  10**(-308) * 2**(64+1023)
	0xe858ad248f5c22c9, //  10**(-280) * 2**(64+ 930)
	0xea9c227723ee8bcb, //  10**(-252) * 2**(64+ 837)
	0xece53cec4a314ebd, //  10**(-224) * 2**(64+ 744)
	0xef340a98172aace4, //  10**(-196) * 2**(64+ 651)
	0xf18899b1bc3f8ca1, //  10**(-168) * 2**(64+ 558)
	0xf3e2f893dec3f126, //  10**(-140) * 2**(64+ 465)
	0xf64335bcf065d37d, //  10**(-112) * 2**(64+ 372)
	0xf8a95fcf88747d94, //  10**( -84) * 2**(64+ 279)
	0xfb158592be068d2e, //  10**( -56) * 2**(64+ 186)
	0xfd87b5f28300ca0d, //  10**( -28) * 2**(64+  93)
	0x8000000000000000, //  10**(   0) * 2**(64-   1)
	0x813f3978f8940984, //  10**(  28) * 2**(64-  94)
	0x82818f1281ed449f, //  10**(  56) * 2**(64- 187)
	0x83c7088e1aab65db, //  10**(  84) * 2**(64- 280)
	0x850fadc09923329e, //  10**( 112) * 2**(64- 373)
	0x865b86925b9bc5c2, //  10**( 140) * 2**(64- 466)
	0x87aa9aff79042286, //  10**( 168) * 2**(64- 559)
	0x88fcf317f22241e2, //  10**( 196) * 2**(64- 652)
	0x8a5296ffe33cc92f, //  10**( 224) * 2**(64- 745)
	0x8bab8eefb6409c1a, //  10**( 252) * 2**(64- 838)
	0x8d07e33455637eb2, //  10**( 280) * 2**(64- 931)
	0x8e679c2f5e44ff8f, //  10**( 308) * 2**(64-1024)
}

// pow5Table is a precomputed 5**k limb vector used by the Exact comparator's
// bulk-scaling path (§4.4 Case B), expressed as little-endian uint64 limbs.
type pow5Table struct {
	power int // k such that limbs represent 5**k
	limbs []uint64
}

// pow5_220 = 5**220, used to bulk-scale the comparator's threshold mantissa
// when the remaining power of 5 is at least 220.
var pow5_220 = pow5Table{
	power: 220,
	limbs: []uint64{
		0x60c58d209ab55311,
		0xa1c8387566126cba,
		0xc44e8767587f4c16,
		0x908059e41a047cf2,
		0x7cfc8e8a0ba063ec,
		0xf0144b2e1fac055e,
		0x172257324207eb0e,
		0x71505aee4b8f981d,
	},
}

// pow5_303 = 5**303, used instead of pow5_220 once the remaining power of 5
// reaches 303 (fewer bulk-multiplication rounds for very small magnitudes).
var pow5_303 = pow5Table{
	power: 303,
	limbs: []uint64{
		0x80a8ab58d818ff0d,
		0xd82ee807acb4e04a,
		0x3f2f7c3c7d52768c,
		0x592b1ec0db4fd779,
		0x5bbdb4201a048818,
		0xd490df5ae941dd25,
		0x5487f097ff592863,
		0xd6898606dc1740fd,
		0xbe643f001dea2bc7,
		0xd30560258f54e6ba,
		0xbaa718e68396cffd,
	},
}
