// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math/bits"

// uint128 holds a 128-bit unsigned accumulator as (hi, lo), the way
// math/bits.Mul64/Add64 naturally produce one.
type uint128 struct {
	hi, lo uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi, lo}
}

// addMul64 returns v + a*b as a uint128.
func addMul64(v uint128, a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	lo2, c := bits.Add64(v.lo, lo, 0)
	hi2, _ := bits.Add64(v.hi, hi, c)
	return uint128{hi2, lo2}
}

// shiftRightBy51 returns v >> 51 where v < 2^128.
func shiftRightBy51(v uint128) uint64 {
	return (v.hi << 13) | (v.lo >> 51)
}

// feMul sets v = a*b mod p using the schoolbook convolution with the
// Bernstein fold-by-19 trick (2^255 = 19 mod p), per §4.A. The five
// limb products are accumulated in full 128-bit precision and only
// then carried down to ~51-bit limbs, which keeps the code simple at
// the cost of using math/bits instead of hand-scheduled asm.
func feMul(v, a, b *Element) {
	a0, a1, a2, a3, a4 := a.l0, a.l1, a.l2, a.l3, a.l4
	b0, b1, b2, b3, b4 := b.l0, b.l1, b.l2, b.l3, b.l4

	// 19x-scaled limbs used to fold contributions at/above the 255-bit
	// boundary back into the low limbs.
	a1_19 := a1 * 19
	a2_19 := a2 * 19
	a3_19 := a3 * 19
	a4_19 := a4 * 19

	r0 := mul64(a0, b0)
	r0 = addMul64(r0, a1_19, b4)
	r0 = addMul64(r0, a2_19, b3)
	r0 = addMul64(r0, a3_19, b2)
	r0 = addMul64(r0, a4_19, b1)

	r1 := mul64(a0, b1)
	r1 = addMul64(r1, a1, b0)
	r1 = addMul64(r1, a2_19, b4)
	r1 = addMul64(r1, a3_19, b3)
	r1 = addMul64(r1, a4_19, b2)

	r2 := mul64(a0, b2)
	r2 = addMul64(r2, a1, b1)
	r2 = addMul64(r2, a2, b0)
	r2 = addMul64(r2, a3_19, b4)
	r2 = addMul64(r2, a4_19, b3)

	r3 := mul64(a0, b3)
	r3 = addMul64(r3, a1, b2)
	r3 = addMul64(r3, a2, b1)
	r3 = addMul64(r3, a3, b0)
	r3 = addMul64(r3, a4_19, b4)

	r4 := mul64(a0, b4)
	r4 = addMul64(r4, a1, b3)
	r4 = addMul64(r4, a2, b2)
	r4 = addMul64(r4, a3, b1)
	r4 = addMul64(r4, a4, b0)

	carryAndStore(v, r0, r1, r2, r3, r4)
}

// feSquare sets v = a*a mod p, grouping the doubled cross-terms the way
// §4.A's "square(a,k)" contract calls out ("diagonal terms fold to 2x").
func feSquare(v, a *Element) {
	l0, l1, l2, l3, l4 := a.l0, a.l1, a.l2, a.l3, a.l4

	l0_2 := l0 * 2
	l1_2 := l1 * 2
	l1_38 := l1 * 38
	l2_38 := l2 * 38
	l3_38 := l3 * 38
	l3_19 := l3 * 19
	l4_19 := l4 * 19

	r0 := mul64(l0, l0)
	r0 = addMul64(r0, l1_38, l4)
	r0 = addMul64(r0, l2_38, l3)

	r1 := mul64(l0_2, l1)
	r1 = addMul64(r1, l2_38, l4)
	r1 = addMul64(r1, l3_19, l3)

	r2 := mul64(l0_2, l2)
	r2 = addMul64(r2, l1, l1)
	r2 = addMul64(r2, l3_38, l4)

	r3 := mul64(l0_2, l3)
	r3 = addMul64(r3, l1_2, l2)
	r3 = addMul64(r3, l4_19, l4)

	r4 := mul64(l0_2, l4)
	r4 = addMul64(r4, l1_2, l3)
	r4 = addMul64(r4, l2, l2)

	carryAndStore(v, r0, r1, r2, r3, r4)
}

// carryAndStore takes five 128-bit partial limb sums (as would come out
// of a 5x5 schoolbook convolution already folded by 19 where needed)
// and reduces them down into v's ~51-bit limbs with a generic two-pass
// carry propagate.
func carryAndStore(v *Element, r0, r1, r2, r3, r4 uint128) {
	c0 := shiftRightBy51(r0)
	c1 := shiftRightBy51(r1)
	c2 := shiftRightBy51(r2)
	c3 := shiftRightBy51(r3)
	c4 := shiftRightBy51(r4)

	v.l0 = (r0.lo & maskLow51Bits) + 19*c4
	v.l1 = (r1.lo & maskLow51Bits) + c0
	v.l2 = (r2.lo & maskLow51Bits) + c1
	v.l3 = (r3.lo & maskLow51Bits) + c2
	v.l4 = (r4.lo & maskLow51Bits) + c3

	v.carryPropagate()
}
