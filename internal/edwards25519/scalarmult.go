// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"crypto/subtle"

	"github.com/gtank/edwards25519/internal/scalar"
)

// ScalarBaseMult sets v = s*B, where B is the edwards25519 base point,
// using the fixed-base comb strategy of §4.D: a SignedRadix16 digit
// sequence indexes basepointTable with a constant-time, full-table scan
// so that the memory access pattern and control flow do not depend on
// s. Safe to call on secret scalars.
func (v *ProjP3) ScalarBaseMult(s *scalar.Scalar) *ProjP3 {
	digits := s.SignedRadix16()

	v.Zero()
	for i := 0; i < 64; i++ {
		selected := selectTableEntry(&basepointTable[i], digits[i])

		var sum ProjP1xP1
		sum.AddAffine(v, &selected)
		v.FromP1xP1(&sum)
	}
	return v
}

// selectTableEntry performs a constant-time lookup of |d| * 16^i * B
// out of an 8-entry block, correctly producing the identity when d==0,
// and negates the result when d<0.
func selectTableEntry(block *[8]AffineCached, d int8) AffineCached {
	sign := int((d >> 7) & 1) // 1 if d<0
	signMask := d >> 7        // 0 or -1
	absD := uint8((d + signMask) ^ signMask)

	var result AffineCached
	result.Zero()
	for j := 0; j < 8; j++ {
		mask := subtle.ConstantTimeByteEq(absD, uint8(j+1))
		result.Select(&block[j], &result, mask)
	}
	result.CondNegate(&result, sign)
	return result
}

// DoubleScalarMultVartime sets v = a*A + b*B, where B is the edwards25519
// base point, using simultaneous width-5 sliding-window double-and-add
// (§4.D's "straus_and_shamir" combination). This is variable-time in
// both scalars and must only be used on public verification inputs,
// never secret ones.
func (v *ProjP3) DoubleScalarMultVartime(a *scalar.Scalar, A *ProjP3, b *scalar.Scalar) *ProjP3 {
	aNaf := a.SlidingWindow(5)
	bNaf := b.SlidingWindow(5)

	aTable := oddMultiples(A)

	var cur ProjP3
	cur.Zero()

	for i := 255; i >= 0; i-- {
		var p1 ProjP1xP1
		var p2 ProjP2
		p2.FromP3(&cur)
		p1.Double(&p2)
		cur.FromP1xP1(&p1)

		if aNaf[i] > 0 {
			cur.Add(&cur, &aTable[(aNaf[i]-1)/2])
		} else if aNaf[i] < 0 {
			cur.Sub(&cur, &aTable[(-aNaf[i]-1)/2])
		}

		if bNaf[i] > 0 {
			cur.Add(&cur, &basepointOddMultiples[(bNaf[i]-1)/2])
		} else if bNaf[i] < 0 {
			cur.Sub(&cur, &basepointOddMultiples[(-bNaf[i]-1)/2])
		}
	}

	v.Set(&cur)
	return v
}
