// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gtank/edwards25519/internal/field"
)

func TestBasepointIsOnCurve(t *testing.T) {
	B := Basepoint()
	var zInv, x, y field.Element
	zInv.Invert(&B.Z)
	x.Multiply(&B.X, &zInv)
	y.Multiply(&B.Y, &zInv)
	require.True(t, IsOnCurve(&x, &y))
}

func TestIdentityEncodeDecode(t *testing.T) {
	var id ProjP3
	id.Zero()
	enc := id.Encode()

	got, err := new(ProjP3).Decode(enc)
	require.NoError(t, err)
	require.Equal(t, 1, got.Equal(&id))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	B := Basepoint()
	var twoB ProjP3
	twoB.Double(B)

	enc := twoB.Encode()
	got, err := new(ProjP3).Decode(enc)
	require.NoError(t, err)
	require.Equal(t, 1, got.Equal(&twoB))
	require.Equal(t, enc, got.Encode())
}

func TestAddMatchesDouble(t *testing.T) {
	B := Basepoint()
	var cached ProjCached
	cached.FromP3(B)

	var sum ProjP3
	sum.Add(B, &cached)

	var dbl ProjP3
	dbl.Double(B)

	require.Equal(t, 1, sum.Equal(&dbl))
}

func TestAddThenSubtractIsIdentity(t *testing.T) {
	B := Basepoint()
	var twoB ProjP3
	twoB.Double(B)

	var cached ProjCached
	cached.FromP3(B)

	var back ProjP3
	back.Sub(&twoB, &cached)

	require.Equal(t, 1, back.Equal(B))
}

func TestNegateRoundTrips(t *testing.T) {
	B := Basepoint()
	var negB, back ProjP3
	negB.Negate(B)
	back.Negate(&negB)
	require.Equal(t, 1, back.Equal(B))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	// y = 0x0505...05 has no x on the curve (u/v is not a square).
	var garbage [32]byte
	for i := range garbage {
		garbage[i] = 0x05
	}
	_, err := new(ProjP3).Decode(garbage[:])
	require.Error(t, err)
}

func TestAffineCachedAdditionMatchesProjCached(t *testing.T) {
	B := Basepoint()
	var twoB ProjP3
	twoB.Double(B)

	var pc ProjCached
	pc.FromP3(B)
	var ac AffineCached
	ac.FromP3(B)

	var viaProj, viaAffine ProjP3
	viaProj.Add(&twoB, &pc)
	viaAffine.AddAffine(&twoB, &ac)

	require.Equal(t, 1, viaProj.Equal(&viaAffine))
}
