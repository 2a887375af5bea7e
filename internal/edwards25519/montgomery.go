// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "github.com/gtank/edwards25519/internal/field"

// montA24 is (486662-2)/4, the Montgomery curve coefficient constant used
// by the x-coordinate-only ladder below.
const montA24 = 121665

// montgomeryLadder returns the u-coordinate of k*P, where u is the
// u-coordinate of P and k is a 32-byte little-endian scalar (the raw,
// already-clamped bytes, not reduced mod L). This is the textbook
// Curve25519 ladder from the birationally equivalent Montgomery curve;
// edwards25519 and its EdDSA façade never call it themselves, but the
// Curve25519 cousin carried over from the original C source needs it.
func montgomeryLadder(k *[32]byte, u *field.Element) *field.Element {
	var x1, x2, z2, x3, z3 field.Element
	x1.Set(u)
	x2.One()
	z2.Zero()
	x3.Set(u)
	z3.One()

	swap := 0
	for t := 254; t >= 0; t-- {
		kt := int((k[t/8] >> uint(t%8)) & 1)
		swap ^= kt
		x2.Swap(&x3, swap)
		z2.Swap(&z3, swap)
		swap = kt

		var A, AA, B, BB, E, C, D, DA, CB field.Element
		A.Add(&x2, &z2)
		AA.Square(&A)
		B.Subtract(&x2, &z2)
		BB.Square(&B)
		E.Subtract(&AA, &BB)
		C.Add(&x3, &z3)
		D.Subtract(&x3, &z3)
		DA.Multiply(&D, &A)
		CB.Multiply(&C, &B)

		var sum, diff field.Element
		sum.Add(&DA, &CB)
		x3.Square(&sum)
		diff.Subtract(&DA, &CB)
		diff.Square(&diff)
		z3.Multiply(&diff, &x1)

		x2.Multiply(&AA, &BB)
		var a24E field.Element
		a24E.Mult32(&E, montA24)
		a24E.Add(&a24E, &AA)
		z2.Multiply(&a24E, &E)
	}
	x2.Swap(&x3, swap)
	z2.Swap(&z3, swap)

	var zinv field.Element
	zinv.Invert(&z2)
	var out field.Element
	out.Multiply(&x2, &zinv)
	return &out
}

// montgomeryBasepointU is the u-coordinate of the birational image of
// the edwards25519 base point B, u = (1+y)/(1-y) with y = 4/5, i.e. u = 9.
var montgomeryBasepointU = func() field.Element {
	var b [32]byte
	b[0] = 9
	var u field.Element
	u.SetBytes(b[:])
	return u
}()

// MontgomeryBasepointScalarMult implements the Curve25519 cousin named
// in §9: the "scalarmult_basepoint" ladder operating on the
// birationally equivalent Montgomery curve's u-coordinate, seeded from
// u=9. k is used as raw clamped scalar bytes, matching the X25519
// convention (not reduced mod L).
func MontgomeryBasepointScalarMult(k *[32]byte) [32]byte {
	clamped := *k
	clamped[0] &= 248
	clamped[31] &= 127
	clamped[31] |= 64

	result := montgomeryLadder(&clamped, &montgomeryBasepointU)
	var out [32]byte
	copy(out[:], result.Bytes())
	return out
}
