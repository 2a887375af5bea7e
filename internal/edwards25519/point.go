// Copyright (c) 2017 George Tankersley. All rights reserved.
// Copyright (c) 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards25519 implements group logic for the twisted Edwards
// curve
//
//     -x^2 + y^2 = 1 + d*x^2*y^2
//
// with d = -121665/121666 mod p, the curve underlying Ed25519. This is
// component "C. Group engine" of the curve: four point representations
// (P3/extended, P1xP1/completed, Cached/PNiels, AffineCached/Niels),
// point doubling, addition in every combination the scalar-mult
// strategies need, negation, and encode/decode between a point and its
// packed 32-byte form.
package edwards25519

import (
	"errors"
	"math/big"

	"github.com/gtank/edwards25519/internal/field"
)

// D is the curve equation constant d = -121665/121666 mod p.
var D = &field.Element{}

// twoD is 2*d mod p.
var twoD = &field.Element{}

func init() {
	D.SetBytes(hexToLEBytes("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3"))
	twoD.Add(D, D)
}

// hexToLEBytes parses a big-endian hex constant and returns its
// 32-byte little-endian encoding, the same form the other example
// implementations use to declare field constants via math/big.
func hexToLEBytes(hex string) []byte {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("edwards25519: bad hex constant")
	}
	be := n.Bytes()
	out := make([]byte, 32)
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// Point types.

// ProjP1xP1 is the "completed" representation (X:Y:Z:T) with x=X/Z,
// y=Y/T. It is the natural output of add/double before normalizing to
// ProjP3, i.e. "P1P1" in §3.
type ProjP1xP1 struct {
	X, Y, Z, T field.Element
}

// ProjP2 is the projective (X:Y:Z) representation with x=X/Z, y=Y/Z.
// Cheaper to double than ProjP3 when T is not needed.
type ProjP2 struct {
	X, Y, Z field.Element
}

// ProjP3 is the extended (X:Y:Z:T) representation with x=X/Z, y=Y/Z,
// xy=T/Z: the full group element, "P" in §3.
type ProjP3 struct {
	X, Y, Z, T field.Element
}

// ProjCached holds a variable point precomputed for repeated additions
// without an inversion: ((Y+X)*Z, (Y-X)*Z, Z, 2dXY*Z). This is "PNiels"
// in §3.
type ProjCached struct {
	YplusX, YminusX, Z, T2d field.Element
}

// AffineCached holds a point with Z implicitly 1, used for table-driven
// additions of constant points (the fixed-base table). This is "Niels"
// in §3.
type AffineCached struct {
	YplusX, YminusX, T2d field.Element
}

// Zero / identity constructors.

func (v *ProjP1xP1) Zero() *ProjP1xP1 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.One()
	return v
}

func (v *ProjP2) Zero() *ProjP2 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	return v
}

// Zero sets v to the identity element and returns v.
func (v *ProjP3) Zero() *ProjP3 {
	v.X.Zero()
	v.Y.One()
	v.Z.One()
	v.T.Zero()
	return v
}

func (v *ProjCached) Zero() *ProjCached {
	v.YplusX.One()
	v.YminusX.One()
	v.Z.One()
	v.T2d.Zero()
	return v
}

func (v *AffineCached) Zero() *AffineCached {
	v.YplusX.One()
	v.YminusX.One()
	v.T2d.Zero()
	return v
}

// Conversions.

func (v *ProjP2) FromP1xP1(p *ProjP1xP1) *ProjP2 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

func (v *ProjP2) FromP3(p *ProjP3) *ProjP2 {
	v.X.Set(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	return v
}

func (v *ProjP3) FromP1xP1(p *ProjP1xP1) *ProjP3 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

func (v *ProjP3) FromP2(p *ProjP2) *ProjP3 {
	v.X.Multiply(&p.X, &p.Z)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Square(&p.Z)
	v.T.Multiply(&p.X, &p.Y)
	return v
}

func (v *ProjCached) FromP3(p *ProjP3) *ProjCached {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Subtract(&p.Y, &p.X)
	v.Z.Set(&p.Z)
	v.T2d.Multiply(&p.T, twoD)
	return v
}

func (v *AffineCached) FromP3(p *ProjP3) *AffineCached {
	v.YplusX.Add(&p.Y, &p.X)
	v.YminusX.Subtract(&p.Y, &p.X)
	v.T2d.Multiply(&p.T, twoD)

	var invZ field.Element
	invZ.Invert(&p.Z)
	v.YplusX.Multiply(&v.YplusX, &invZ)
	v.YminusX.Multiply(&v.YminusX, &invZ)
	v.T2d.Multiply(&v.T2d, &invZ)
	return v
}

// Set copies u into v.
func (v *ProjP3) Set(u *ProjP3) *ProjP3 {
	*v = *u
	return v
}

// Addition, subtraction, doubling.

// Add sets v = p + q (ProjCached form), and returns v.
func (v *ProjP3) Add(p *ProjP3, q *ProjCached) *ProjP3 {
	var result ProjP1xP1
	result.Add(p, q)
	return v.FromP1xP1(&result)
}

// Sub sets v = p - q (ProjCached form), and returns v.
func (v *ProjP3) Sub(p *ProjP3, q *ProjCached) *ProjP3 {
	var result ProjP1xP1
	result.Sub(p, q)
	return v.FromP1xP1(&result)
}

// AddAffine sets v = p + q (AffineCached form), and returns v.
func (v *ProjP3) AddAffine(p *ProjP3, q *AffineCached) *ProjP3 {
	var result ProjP1xP1
	result.AddAffine(p, q)
	return v.FromP1xP1(&result)
}

// SubAffine sets v = p - q (AffineCached form), and returns v.
func (v *ProjP3) SubAffine(p *ProjP3, q *AffineCached) *ProjP3 {
	var result ProjP1xP1
	result.SubAffine(p, q)
	return v.FromP1xP1(&result)
}

// Add is the "add_pniels" operation of §4.C: standard extended/cached
// Edwards addition with no inversion, following donna's
// ge25519_pnielsadd_p1p1 term order.
func (v *ProjP1xP1) Add(p *ProjP3, q *ProjCached) *ProjP1xP1 {
	var a, b, c, rt field.Element

	a.Subtract(&p.Y, &p.X)
	b.Add(&p.Y, &p.X)
	a.Multiply(&a, &q.YminusX)
	v.X.Multiply(&b, &q.YplusX)

	v.Y.Add(&v.X, &a)
	v.X.Subtract(&v.X, &a)

	c.Multiply(&p.T, &q.T2d)
	rt.Multiply(&p.Z, &q.Z)
	rt.Add(&rt, &rt)

	v.Z.Add(&rt, &c)
	v.T.Subtract(&rt, &c)
	return v
}

// Sub is Add against the negated cached point: donna forms -q by
// swapping ysubx/xaddy and negating t2d, so the cross terms below use
// q's two halves transposed relative to Add.
func (v *ProjP1xP1) Sub(p *ProjP3, q *ProjCached) *ProjP1xP1 {
	var a, b, c, rt field.Element

	a.Subtract(&p.Y, &p.X)
	b.Add(&p.Y, &p.X)
	a.Multiply(&a, &q.YplusX)    // transposed relative to Add
	v.X.Multiply(&b, &q.YminusX) // transposed relative to Add

	v.Y.Add(&v.X, &a)
	v.X.Subtract(&v.X, &a)

	c.Multiply(&p.T, &q.T2d)
	rt.Multiply(&p.Z, &q.Z)
	rt.Add(&rt, &rt)

	v.Z.Subtract(&rt, &c)
	v.T.Add(&rt, &c)
	return v
}

// AddAffine is the "add_niels" operation of §4.C, for table entries
// where Z=1 is implicit (donna's ge25519_nielsadd2_p1p1): the doubled
// Z term comes directly from p.Z rather than a Z*Z product.
func (v *ProjP1xP1) AddAffine(p *ProjP3, q *AffineCached) *ProjP1xP1 {
	var a, b, c, twoZ field.Element

	a.Subtract(&p.Y, &p.X)
	b.Add(&p.Y, &p.X)
	a.Multiply(&a, &q.YminusX)
	v.X.Multiply(&b, &q.YplusX)

	v.Y.Add(&v.X, &a)
	v.X.Subtract(&v.X, &a)

	c.Multiply(&p.T, &q.T2d)
	twoZ.Add(&p.Z, &p.Z)

	v.Z.Add(&twoZ, &c)
	v.T.Subtract(&twoZ, &c)
	return v
}

// SubAffine is AddAffine against the negated table entry.
func (v *ProjP1xP1) SubAffine(p *ProjP3, q *AffineCached) *ProjP1xP1 {
	var a, b, c, twoZ field.Element

	a.Subtract(&p.Y, &p.X)
	b.Add(&p.Y, &p.X)
	a.Multiply(&a, &q.YplusX)    // transposed relative to AddAffine
	v.X.Multiply(&b, &q.YminusX) // transposed relative to AddAffine

	v.Y.Add(&v.X, &a)
	v.X.Subtract(&v.X, &a)

	c.Multiply(&p.T, &q.T2d)
	twoZ.Add(&p.Z, &p.Z)

	v.Z.Subtract(&twoZ, &c)
	v.T.Add(&twoZ, &c)
	return v
}

// Double sets v = 2*p (as a completed point), and returns v. Follows
// donna's ge25519_double_p1p1 labeling: squares of X, Y and 2*Z^2, the
// cross square (X+Y)^2, combined into the four completed limbs in the
// same order donna assembles them (Y^2 +/- X^2 into v.Y/v.Z, then E into
// v.X from the cross square and v.Y, then v.T from the doubled Z^2 term
// and v.Z).
func (v *ProjP1xP1) Double(p *ProjP2) *ProjP1xP1 {
	var sqX, sqY, twoSqZ, sqSum field.Element

	sqX.Square(&p.X)
	sqY.Square(&p.Y)
	twoSqZ.Square(&p.Z)
	twoSqZ.Add(&twoSqZ, &twoSqZ)
	sqSum.Add(&p.X, &p.Y)
	sqSum.Square(&sqSum)

	v.Y.Add(&sqY, &sqX)
	v.Z.Subtract(&sqY, &sqX)
	v.X.Subtract(&sqSum, &v.Y)
	v.T.Subtract(&twoSqZ, &v.Z)
	return v
}

// Double sets v = 2*p, and returns v.
func (v *ProjP3) Double(p *ProjP3) *ProjP3 {
	var p2 ProjP2
	p2.FromP3(p)
	var result ProjP1xP1
	result.Double(&p2)
	return v.FromP1xP1(&result)
}

// Negate sets v = -p, and returns v.
func (v *ProjP3) Negate(p *ProjP3) *ProjP3 {
	v.X.Negate(&p.X)
	v.Y.Set(&p.Y)
	v.Z.Set(&p.Z)
	v.T.Negate(&p.T)
	return v
}

// Negate sets v to the negation of p (AffineCached form): swap the two
// halves and negate the cross term, §4.C's "negate(P) in Niels form".
func (v *AffineCached) Negate(p *AffineCached) *AffineCached {
	v.YplusX.Set(&p.YminusX)
	v.YminusX.Set(&p.YplusX)
	v.T2d.Negate(&p.T2d)
	return v
}

// Negate sets v to the negation of p (ProjCached form).
func (v *ProjCached) Negate(p *ProjCached) *ProjCached {
	v.YplusX.Set(&p.YminusX)
	v.YminusX.Set(&p.YplusX)
	v.Z.Set(&p.Z)
	v.T2d.Negate(&p.T2d)
	return v
}

// CondNegate conditionally negates v to p or -p (ProjCached form)
// depending on cond, without branching: the constant-time alternative
// to calling Negate behind an if, used inside scalar-mult inner loops.
func (v *ProjCached) CondNegate(p *ProjCached, cond int) *ProjCached {
	var neg ProjCached
	neg.Negate(p)
	v.YplusX.Select(&neg.YplusX, &p.YplusX, cond)
	v.YminusX.Select(&neg.YminusX, &p.YminusX, cond)
	v.Z.Select(&neg.Z, &p.Z, cond)
	v.T2d.Select(&neg.T2d, &p.T2d, cond)
	return v
}

// CondNegate is the AffineCached analogue of ProjCached.CondNegate.
func (v *AffineCached) CondNegate(p *AffineCached, cond int) *AffineCached {
	var neg AffineCached
	neg.Negate(p)
	v.YplusX.Select(&neg.YplusX, &p.YplusX, cond)
	v.YminusX.Select(&neg.YminusX, &p.YminusX, cond)
	v.T2d.Select(&neg.T2d, &p.T2d, cond)
	return v
}

// Select sets v to a if cond==1, b if cond==0 (AffineCached form). Used
// by the fixed-base table scan, which must touch every entry.
func (v *AffineCached) Select(a, b *AffineCached, cond int) *AffineCached {
	v.YplusX.Select(&a.YplusX, &b.YplusX, cond)
	v.YminusX.Select(&a.YminusX, &b.YminusX, cond)
	v.T2d.Select(&a.T2d, &b.T2d, cond)
	return v
}

// Equal returns 1 if v and u represent the same point, 0 otherwise,
// by cross-multiplying the X and Y coordinates with the other point's Z.
// Inside the module it is called by IsIdentity and the tests; Verify
// compares encodings instead.
func (v *ProjP3) Equal(u *ProjP3) int {
	var t1, t2, t3, t4 field.Element
	t1.Multiply(&v.X, &u.Z)
	t2.Multiply(&u.X, &v.Z)
	t3.Multiply(&v.Y, &u.Z)
	t4.Multiply(&u.Y, &v.Z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// IsIdentity reports whether v is the group identity.
func (v *ProjP3) IsIdentity() bool {
	var zero ProjP3
	zero.Zero()
	return v.Equal(&zero) == 1
}

// IsOnCurve reports whether the given affine coordinates satisfy
// -x^2 + y^2 = 1 + d*x^2*y^2.
func IsOnCurve(x, y *field.Element) bool {
	var lh, y2, rh field.Element
	lh.Square(x)
	y2.Square(y)
	rh.Multiply(&lh, &y2)
	rh.Multiply(&rh, D)
	rh.Add(&rh, new(field.Element).One())
	lh.Negate(&lh)
	lh.Add(&lh, &y2)
	lh.Subtract(&lh, &rh)
	return lh.IsZero() == 1
}

// ErrInvalidEncoding is returned by Decode when the 32-byte input does
// not encode a point on the curve.
var ErrInvalidEncoding = errors.New("edwards25519: invalid point encoding")

// Decode implements §4.C's "open_unpack": it reads 32 bytes, treats bit
// 255 as the sign of x and the rest as y, and recovers x via
// x = u*v^3*(u*v^7)^((p-5)/8) with u=y^2-1, v=d*y^2+1. It returns the
// point exactly as encoded, not its negation; single-signature
// verification subtracts the public key's contribution by negating the
// scalar k instead. This routine is variable-time and must never be
// called on secret input.
func (v *ProjP3) Decode(b []byte) (*ProjP3, error) {
	if len(b) != 32 {
		return nil, ErrInvalidEncoding
	}
	var y field.Element
	signBit := int(b[31] >> 7)
	var yBytes [32]byte
	copy(yBytes[:], b)
	yBytes[31] &= 0x7f
	y.SetBytes(yBytes[:])

	var u, vv, one field.Element
	one.One()
	u.Square(&y)
	vv.Multiply(&u, D)
	vv.Add(&vv, &one)
	u.Subtract(&u, &one)

	var v3, v7, x field.Element
	v3.Square(&vv)
	v3.Multiply(&v3, &vv) // v^3
	v7.Square(&v3)
	v7.Multiply(&v7, &vv) // v^7

	var uv7 field.Element
	uv7.Multiply(&u, &v7)
	var candidate field.Element
	candidate.Pow22523(&uv7)
	x.Multiply(&u, &v3)
	x.Multiply(&x, &candidate) // x = u*v^3*(u*v^7)^((p-5)/8)

	var check, x2 field.Element
	x2.Square(&x)
	check.Multiply(&x2, &vv)

	if check.Equal(&u) != 1 {
		var negU field.Element
		negU.Negate(&u)
		if check.Equal(&negU) == 1 {
			x.Multiply(&x, field.SqrtM1())
		} else {
			return nil, ErrInvalidEncoding
		}
		x2.Square(&x)
		check.Multiply(&x2, &vv)
		if check.Equal(&u) != 1 {
			return nil, ErrInvalidEncoding
		}
	}

	if x.IsZero() == 1 && signBit == 1 {
		// x=0 has a single representation; a set sign bit here does
		// not correspond to any point, per RFC 8032's decoding rule.
		return nil, ErrInvalidEncoding
	}
	if x.IsNegative() != signBit {
		x.Negate(&x)
	}

	v.X.Set(&x)
	v.Y.Set(&y)
	v.Z.One()
	v.T.Multiply(&v.X, &v.Y)
	return v, nil
}

// Encode implements §4.C's "pack": invert Z, compute affine (x,y),
// encode y as 32 bytes with bit 255 set to the low bit of x.
func (v *ProjP3) Encode() []byte {
	var zInv, x, y field.Element
	zInv.Invert(&v.Z)
	x.Multiply(&v.X, &zInv)
	y.Multiply(&v.Y, &zInv)

	out := y.Bytes()
	out[31] |= byte(x.IsNegative() << 7)
	return out
}
