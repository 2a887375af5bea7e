// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMontgomeryBasepointScalarMultIteration1024 is the §8 scenario 6
// end-to-end check: iterating scalarmult_basepoint 1024 times starting
// from the clamped key {0xff, 0, ..., 0} must land on a fixed value.
func TestMontgomeryBasepointScalarMultIteration1024(t *testing.T) {
	var k [32]byte
	k[0] = 0xff

	for i := 0; i < 1024; i++ {
		k = MontgomeryBasepointScalarMult(&k)
	}

	want, err := hex.DecodeString("acce24b1d4a2362115e23e843c232b5f956cc07b9582d793d519b6f1fb96d604")
	require.NoError(t, err)
	require.Equal(t, want, k[:])
}

func TestMontgomeryBasepointScalarMultZeroScalarIsNotIdentityU(t *testing.T) {
	var k [32]byte // clamps to 2^254, a nonzero scalar, so the output is not u=0
	out := MontgomeryBasepointScalarMult(&k)
	require.NotEqual(t, make([]byte, 32), out[:])
}
