// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements the scalar ring Z/LZ, where
//
//     L = 2^252 + 27742317777372353535851937790883648493
//
// is the prime order of the edwards25519 base-point subgroup. This is
// component "B. Scalar engine" of the curve: expand/contract between
// byte encodings and the ring, add/multiply mod L, and the window4 /
// sliding_window recodings the scalar-multiplication strategies need.
//
// scReduce and mulAdd are ported from the public-domain "ref10"
// implementation of ed25519 from SUPERCOP, the same reduction algorithm
// the teacher package's scReduce uses for the fiat-crypto backend; here
// it is the whole scalar engine rather than a helper bolted onto a
// Montgomery-domain type, since the spec calls for an explicit,
// auditable limb layout with window/sliding-window recoding hooks.
package scalar

// Scalar is an integer mod L. The zero value is 0.
type Scalar struct {
	b [32]byte // little-endian bytes; < L unless set unreduced by SetCanonicalBytes
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Zero returns the additive identity.
func Zero() Scalar { return Scalar{} }

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.b = x.b
	return s
}

// Bytes returns the 32-byte little-endian canonical encoding of s (the
// "contract256" operation of §4.B).
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, s.b[:])
	return out
}

// SetCanonicalBytes sets s = x, interpreted as a 32-byte little-endian
// integer (signatures carry such scalars directly; callers must
// separately reject s >= 2^253 cheaply via the high-byte mask, see §3).
// It does not reduce: NewKeyFromSeed and Sign also use it for the
// clamped secret scalar, which lies in [2^254, 2^255), and
// ScalarBaseMult and MulAdd accept such values.
func (s *Scalar) SetCanonicalBytes(x []byte) *Scalar {
	if len(x) != 32 {
		panic("edwards25519/scalar: invalid scalar length")
	}
	copy(s.b[:], x)
	return s
}

// SetUniformBytes sets s = x mod L, interpreting x as n little-endian
// bytes for n in {32, 64}. This is "expand256" of §4.B: for n=64 it
// performs the ref10 wide reduction (functionally the spec's Barrett
// reduction by a precomputed 1/L estimate); for n=32 it still reduces,
// since uniform 32-byte input (e.g. a raw hash truncation) need not
// already be < L.
func (s *Scalar) SetUniformBytes(x []byte) *Scalar {
	var wide [64]byte
	copy(wide[:], x)
	var out [32]byte
	scReduce(&out, &wide)
	s.b = out
	return s
}

// Add sets s = x + y mod L, and returns s. Implemented via the general
// multiply-add primitive as 1*x + y, reusing the single reduction
// routine rather than a bespoke add-then-conditionally-subtract-L path.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	one := one()
	s.b = mulAdd(&one.b, &x.b, &y.b)
	return s
}

// Multiply sets s = x*y mod L, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	zero := Scalar{}
	s.b = mulAdd(&x.b, &y.b, &zero.b)
	return s
}

// MulAdd sets s = x*y + z mod L, and returns s.
func (s *Scalar) MulAdd(x, y, z *Scalar) *Scalar {
	s.b = mulAdd(&x.b, &y.b, &z.b)
	return s
}

// Negate sets s = -x mod L, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	zero := Scalar{}
	minusOne := minusOne()
	return s.MulAdd(x, &minusOne, &zero)
}

// Subtract sets s = x - y mod L, and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	var negY Scalar
	negY.Negate(y)
	return s.Add(x, &negY)
}

// Compare returns -1, 0, or +1 depending on whether s is less than,
// equal to, or greater than t, treating both as integers in [0, L).
// Not constant-time: used only by the batch-verification multi-scalar
// engine, which is variable-time by construction.
func (s *Scalar) Compare(t *Scalar) int {
	for i := 31; i >= 0; i-- {
		if s.b[i] != t.b[i] {
			if s.b[i] < t.b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.b == [32]byte{}
}

// Equal returns 1 if s == t, and 0 otherwise. Not constant-time; the
// only caller-visible use is in variable-time verification paths.
func (s *Scalar) Equal(t *Scalar) int {
	if s.b == t.b {
		return 1
	}
	return 0
}

func one() Scalar {
	var s Scalar
	s.b[0] = 1
	return s
}

func minusOne() Scalar {
	// L - 1, little-endian.
	return Scalar{b: [32]byte{
		0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x10,
	}}
}

// load3 interprets in[0:3] as a little-endian integer.
func load3(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

// load4 interprets in[0:4] as a little-endian integer.
func load4(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}

// loadLimbs12 splits a 32-byte scalar into twelve 21-bit limbs, the
// same bit layout scReduce uses for the low half of its 64-byte input.
func loadLimbs12(in []byte) (s0, s1, s2, s3, s4, s5, s6, s7, s8, s9, s10, s11 int64) {
	s0 = 2097151 & load3(in[0:])
	s1 = 2097151 & (load4(in[2:]) >> 5)
	s2 = 2097151 & (load3(in[5:]) >> 2)
	s3 = 2097151 & (load4(in[7:]) >> 7)
	s4 = 2097151 & (load4(in[10:]) >> 4)
	s5 = 2097151 & (load3(in[13:]) >> 1)
	s6 = 2097151 & (load4(in[15:]) >> 6)
	s7 = 2097151 & (load3(in[18:]) >> 3)
	s8 = 2097151 & load3(in[21:])
	s9 = 2097151 & (load4(in[23:]) >> 5)
	s10 = 2097151 & (load3(in[26:]) >> 2)
	s11 = 2097151 & (load4(in[28:]) >> 7)
	return
}
