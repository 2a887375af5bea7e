// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gtank/edwards25519/internal/scalar"
)

func randomScalar(t *testing.T) *scalar.Scalar {
	t.Helper()
	var wide [64]byte
	_, err := rand.Read(wide[:])
	require.NoError(t, err)
	var s scalar.Scalar
	s.SetUniformBytes(wide[:])
	return &s
}

// doubleAndAdd is the textbook reference computation of §8's fixed-base
// property: s*B via naive repeated addition over the bits of s.
func doubleAndAdd(s *scalar.Scalar) *ProjP3 {
	b := s.Bytes()
	var acc ProjP3
	acc.Zero()
	for i := 255; i >= 0; i-- {
		byteIdx := i / 8
		bitIdx := uint(i % 8)

		var p2 ProjP2
		p2.FromP3(&acc)
		var p1 ProjP1xP1
		p1.Double(&p2)
		acc.FromP1xP1(&p1)

		if (b[byteIdx]>>bitIdx)&1 == 1 {
			var cached ProjCached
			cached.FromP3(&basepoint)
			acc.Add(&acc, &cached)
		}
	}
	return &acc
}

func TestScalarBaseMultMatchesDoubleAndAdd(t *testing.T) {
	for i := 0; i < 8; i++ {
		s := randomScalar(t)
		want := doubleAndAdd(s)
		got := new(ProjP3).ScalarBaseMult(s)
		require.Equal(t, 1, got.Equal(want))
	}
}

func TestScalarBaseMultZeroIsIdentity(t *testing.T) {
	zero := scalar.Zero()
	got := new(ProjP3).ScalarBaseMult(&zero)
	var id ProjP3
	id.Zero()
	require.Equal(t, 1, got.Equal(&id))
}

func TestDoubleScalarMultVartimeAgreesWithScalarBaseMult(t *testing.T) {
	// a*A + b*B with A = B reduces to (a+b)*B.
	a, b := randomScalar(t), randomScalar(t)
	var sum scalar.Scalar
	sum.Add(a, b)

	want := new(ProjP3).ScalarBaseMult(&sum)
	got := new(ProjP3).DoubleScalarMultVartime(a, Basepoint(), b)

	require.Equal(t, 1, got.Equal(want))
}

func TestDoubleScalarMultVartimeZero(t *testing.T) {
	zero := scalar.Zero()
	got := new(ProjP3).DoubleScalarMultVartime(&zero, Basepoint(), &zero)
	var id ProjP3
	id.Zero()
	require.Equal(t, 1, got.Equal(&id))
}
