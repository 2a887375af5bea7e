// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the prime field GF(2^255-19), the arithmetic
// substrate for the edwards25519 group. Every operation here is the
// component "A. Field engine" of the curve: add, sub, mul, square,
// inversion, the pow(2^252-3) helper used by point decoding, and the
// constant-time conditional primitives scalar multiplication relies on.
//
// An Element is a not-necessarily-reduced representative of a residue
// class mod p = 2^255-19, held as five ~51-bit limbs. Limbs may exceed
// 2^51 between operations; only Bytes/SetBytes round-trip through the
// unique canonical integer in [0, p).
package field

import (
	"crypto/subtle"
	"encoding/binary"
)

// Element represents an element of GF(2^255-19). The zero value is a
// valid zero element. All arguments and receivers may alias.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^51 + t.l2*2^102 + t.l3*2^153 + t.l4*2^204
	// Between operations, limbs are expected to fit in ~52 bits.
	l0, l1, l2, l3, l4 uint64
}

const maskLow51Bits uint64 = (1 << 51) - 1

var (
	feZero     = &Element{0, 0, 0, 0, 0}
	feOne      = &Element{1, 0, 0, 0, 0}
	feMinusOne = new(Element).Negate(feOne)
)

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// carryPropagate brings all limbs below 2^51 (l0 may briefly carry 19x
// the overflow of l4). Two rounds are enough because no limb can start
// more than a couple of bits over nominal width after Add/Mul/Square.
func (v *Element) carryPropagate() *Element {
	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l0 += (v.l4 >> 51) * 19
	v.l4 &= maskLow51Bits

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l0 += (v.l4 >> 51) * 19
	v.l4 &= maskLow51Bits
	return v
}

// reduce reduces v modulo p and returns it, leaving limbs in [0, 2^51)
// representing the unique integer in [0, p).
func (v *Element) reduce() *Element {
	v.carryPropagate()

	// v < 2^255 + 2^13*19 here; if v >= p = 2^255-19, v+19 overflows 2^255-1
	// and c is 1, otherwise c is 0.
	c := (v.l0 + 19) >> 51
	c = (v.l1 + c) >> 51
	c = (v.l2 + c) >> 51
	c = (v.l3 + c) >> 51
	c = (v.l4 + c) >> 51

	v.l0 += 19 * c

	v.l1 += v.l0 >> 51
	v.l0 &= maskLow51Bits
	v.l2 += v.l1 >> 51
	v.l1 &= maskLow51Bits
	v.l3 += v.l2 >> 51
	v.l2 &= maskLow51Bits
	v.l4 += v.l3 >> 51
	v.l3 &= maskLow51Bits
	v.l4 &= maskLow51Bits

	return v
}

// Add sets v = a + b, and returns v. The limb sums are carried once
// (carryPropagate), not fully reduced mod p.
func (v *Element) Add(a, b *Element) *Element {
	v.l0 = a.l0 + b.l0
	v.l1 = a.l1 + b.l1
	v.l2 = a.l2 + b.l2
	v.l3 = a.l3 + b.l3
	v.l4 = a.l4 + b.l4
	return v.carryPropagate()
}

// twoP is 2*p expressed per-limb so Subtract never underflows: each
// limb of a can be up to 2^52ish and a + twoP[i] - b[i] stays positive.
var twoP = [5]uint64{
	0xFFFFFFFFFFFDA,
	0xFFFFFFFFFFFFE,
	0xFFFFFFFFFFFFE,
	0xFFFFFFFFFFFFE,
	0xFFFFFFFFFFFFE,
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	v.l0 = (a.l0 + twoP[0]) - b.l0
	v.l1 = (a.l1 + twoP[1]) - b.l1
	v.l2 = (a.l2 + twoP[2]) - b.l2
	v.l3 = (a.l3 + twoP[3]) - b.l3
	v.l4 = (a.l4 + twoP[4]) - b.l4
	return v.carryPropagate()
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, a 32-byte little-endian encoding. The high bit
// of the last byte is ignored and non-canonical values (p..2^255-1) are
// accepted, consistent with RFC 7748 / RFC 8032 decoding conventions;
// canonical rejection, where required, happens one level up.
func (v *Element) SetBytes(x []byte) *Element {
	if len(x) != 32 {
		panic("edwards25519/field: invalid field element input size")
	}

	v.l0 = binary.LittleEndian.Uint64(x[0:8]) & maskLow51Bits
	v.l1 = (binary.LittleEndian.Uint64(x[6:14]) >> 3) & maskLow51Bits
	v.l2 = (binary.LittleEndian.Uint64(x[12:20]) >> 6) & maskLow51Bits
	v.l3 = (binary.LittleEndian.Uint64(x[19:27]) >> 1) & maskLow51Bits
	v.l4 = (binary.LittleEndian.Uint64(x[24:32]) >> 12) & maskLow51Bits
	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v (the
// "contract" operation of §4.A).
func (v *Element) Bytes() []byte {
	var out [32]byte
	return v.bytes(&out)
}

func (v *Element) bytes(out *[32]byte) []byte {
	t := *v
	t.reduce()

	var buf [8]byte
	for i, l := range [5]uint64{t.l0, t.l1, t.l2, t.l3, t.l4} {
		bitsOffset := i * 51
		binary.LittleEndian.PutUint64(buf[:], l<<uint(bitsOffset%8))
		for j, b := range buf {
			off := bitsOffset/8 + j
			if off >= len(out) {
				break
			}
			out[off] |= b
		}
	}
	return out[:]
}

// Equal returns 1 if v == u mod p, and 0 otherwise. Constant-time.
func (v *Element) Equal(u *Element) int {
	sa, sv := u.Bytes(), v.Bytes()
	return subtle.ConstantTimeCompare(sa, sv)
}

const mask64Bits uint64 = (1 << 64) - 1

// Select sets v to a if cond == 1, or to b if cond == 0. cond must be
// 0 or 1. This is the "move_conditional" primitive of §4.A.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := uint64(cond) * mask64Bits
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	v.l4 = (m & a.l4) | (^m & b.l4)
	return v
}

// Swap swaps v and u if cond == 1, or does nothing if cond == 0. This
// is "swap_conditional" of §4.A.
func (v *Element) Swap(u *Element, cond int) {
	m := uint64(cond) * mask64Bits
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
	t = m & (v.l4 ^ u.l4)
	v.l4 ^= t
	u.l4 ^= t
}

// CondNegate sets v to -u if cond == 1, or to u if cond == 0.
func (v *Element) CondNegate(u *Element, cond int) *Element {
	var neg Element
	neg.Negate(u)
	return v.Select(&neg, u, cond)
}

// IsNegative returns 1 if the canonical encoding of v has its low bit
// set (the curve's convention for "negative" used by point decode/encode),
// and 0 otherwise.
func (v *Element) IsNegative() int {
	b := v.Bytes()
	return int(b[0] & 1)
}

// Absolute sets v to the non-negative representative of u.
func (v *Element) Absolute(u *Element) *Element {
	return v.CondNegate(u, u.IsNegative())
}

// IsZero returns 1 if v == 0 mod p, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	feMul(v, x, y)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	feSquare(v, x)
	return v
}

// SquareN sets v = x^(2^n) by repeated squaring, and returns v. This is
// the "square(a, k)" repeated-squaring contract of §4.A, used by both
// Invert and Pow22523's addition chains.
func (v *Element) SquareN(x *Element, n int) *Element {
	v.Square(x)
	for i := 1; i < n; i++ {
		v.Square(v)
	}
	return v
}

// Mult32 sets v = x * y for a small uint32 y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	x0lo, x0hi := mul51(x.l0, y)
	x1lo, x1hi := mul51(x.l1, y)
	x2lo, x2hi := mul51(x.l2, y)
	x3lo, x3hi := mul51(x.l3, y)
	x4lo, x4hi := mul51(x.l4, y)
	v.l0 = x0lo + 19*x4hi
	v.l1 = x1lo + x0hi
	v.l2 = x2lo + x1hi
	v.l3 = x3lo + x2hi
	v.l4 = x4lo + x3hi
	return v
}

// mul51 returns lo, hi such that x*y = hi*2^51 + lo, with lo < 2^51.
func mul51(x uint64, y uint32) (lo, hi uint64) {
	const mask51 = (1 << 51) - 1
	z := mul64(x, uint64(y))
	return z.lo & mask51, shiftRightBy51(z)
}

// Invert sets v = 1/z mod p (0 if z == 0), and returns v. Computed as
// z^(p-2) via a fixed 254-squaring, 11-multiplication addition chain;
// every step operates on public-shaped but potentially secret-valued
// limbs with no data-dependent branch, so it is constant-time in z.
func (v *Element) Invert(z *Element) *Element {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Element

	z2.Square(z)             // 2
	t.SquareN(&z2, 2)        // 8
	z9.Multiply(&t, z)       // 9
	z11.Multiply(&z9, &z2)   // 11
	t.Square(&z11)           // 22
	z2_5_0.Multiply(&t, &z9) // 2^5 - 1

	t.SquareN(&z2_5_0, 5)
	z2_10_0.Multiply(&t, &z2_5_0) // 2^10 - 1

	t.SquareN(&z2_10_0, 10)
	z2_20_0.Multiply(&t, &z2_10_0) // 2^20 - 1

	t.SquareN(&z2_20_0, 20)
	t.Multiply(&t, &z2_20_0) // 2^40 - 1

	t.SquareN(&t, 10)
	z2_50_0.Multiply(&t, &z2_10_0) // 2^50 - 1

	t.SquareN(&z2_50_0, 50)
	z2_100_0.Multiply(&t, &z2_50_0) // 2^100 - 1

	t.SquareN(&z2_100_0, 100)
	t.Multiply(&t, &z2_100_0) // 2^200 - 1

	t.SquareN(&t, 50)
	t.Multiply(&t, &z2_50_0) // 2^250 - 1

	t.SquareN(&t, 5) // 2^255 - 2^5

	return v.Multiply(&t, &z11) // 2^255 - 21 = p - 2
}

// Pow22523 sets v = x^(2^252-3), and returns v. This is the
// "pow_two252m3" exponent §4.A names, used by the square-root step of
// point decoding (the exponent (p-5)/8).
func (v *Element) Pow22523(x *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(x)          // x^2
	t1.SquareN(&t0, 2)    // x^8
	t1.Multiply(x, &t1)   // x^9
	t0.Multiply(&t0, &t1) // x^11
	t0.Square(&t0)        // x^22
	t0.Multiply(&t1, &t0) // x^31

	t1.SquareN(&t0, 5)
	t0.Multiply(&t1, &t0) // 2^10 - 1

	t1.SquareN(&t0, 10)
	t1.Multiply(&t1, &t0) // 2^20 - 1

	t2.SquareN(&t1, 20)
	t1.Multiply(&t2, &t1) // 2^40 - 1

	t1.SquareN(&t1, 10)
	t0.Multiply(&t1, &t0) // 2^50 - 1

	t1.SquareN(&t0, 50)
	t1.Multiply(&t1, &t0) // 2^100 - 1

	t2.SquareN(&t1, 100)
	t1.Multiply(&t2, &t1) // 2^200 - 1

	t1.SquareN(&t1, 50)
	t0.Multiply(&t1, &t0) // 2^250 - 1

	t0.SquareN(&t0, 2) // 2^252 - 4
	return v.Multiply(&t0, x)
}

// sqrtM1 is a square root of -1 mod p (2^((p-1)/4)).
var sqrtM1 = &Element{1718705420411056, 234908883556509,
	2233514472574048, 2117202627021982, 765476049583133}

// SqrtM1 returns sqrt(-1) mod p as a field element.
func SqrtM1() *Element {
	var v Element
	return v.Set(sqrtM1)
}
