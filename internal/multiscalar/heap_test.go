// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multiscalar

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gtank/edwards25519/internal/edwards25519"
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

func TestComputeMatchesSequentialScalarMult(t *testing.T) {
	n := 5
	weights := make([]*scalar.Scalar, n)
	points := make([]*edwards25519.ProjP3, n)

	want := new(edwards25519.ProjP3).Zero()
	for i := 0; i < n; i++ {
		w := randomScalar(t)
		s := randomScalar(t)
		p := new(edwards25519.ProjP3).ScalarBaseMult(s)

		weights[i] = w
		points[i] = p

		term := new(edwards25519.ProjP3).DoubleScalarMultVartime(w, p, &scalar.Scalar{})
		var cached edwards25519.ProjCached
		cached.FromP3(term)
		var sum edwards25519.ProjP3
		sum.Add(want, &cached)
		want = &sum
	}

	got := Compute(weights, points)
	require.Equal(t, 1, got.Equal(want))
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, nil)
	var id edwards25519.ProjP3
	id.Zero()
	require.Equal(t, 1, got.Equal(&id))
}

func TestComputeSingleEntry(t *testing.T) {
	w := randomScalar(t)
	p := new(edwards25519.ProjP3).ScalarBaseMult(randomScalar(t))

	got := Compute([]*scalar.Scalar{w}, []*edwards25519.ProjP3{p})
	want := new(edwards25519.ProjP3).DoubleScalarMultVartime(w, p, &scalar.Scalar{})
	require.Equal(t, 1, got.Equal(want))
}

func TestComputeZeroWeightsIgnored(t *testing.T) {
	p := new(edwards25519.ProjP3).ScalarBaseMult(randomScalar(t))
	zero := scalar.Zero()
	got := Compute([]*scalar.Scalar{&zero}, []*edwards25519.ProjP3{p})
	var id edwards25519.ProjP3
	id.Zero()
	require.Equal(t, 1, got.Equal(&id))
}
