// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyBatchAllValid(t *testing.T) {
	const n = 64
	pubs := make([]PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([][]byte, n)

	for i := 0; i < n; i++ {
		pub, priv, err := GenerateKey(nil)
		require.NoError(t, err)

		m := make([]byte, 8+i%5)
		_, err = rand.Read(m)
		require.NoError(t, err)

		pubs[i] = pub
		msgs[i] = m
		sigs[i] = Sign(priv, m)
	}

	ok, perSlot, err := VerifyBatch(nil, pubs, msgs, sigs)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, perSlot, n)
	for i := 0; i < n; i++ {
		require.True(t, perSlot[i])
	}
}

func TestVerifyBatchOneCorrupted(t *testing.T) {
	const n = 8
	pubs := make([]PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([][]byte, n)

	for i := 0; i < n; i++ {
		pub, priv, err := GenerateKey(nil)
		require.NoError(t, err)
		m := []byte{byte(i)}

		pubs[i] = pub
		msgs[i] = m
		sigs[i] = Sign(priv, m)
	}

	sigs[0] = sigs[1] // corrupt slot 0 with an unrelated valid signature

	ok, perSlot, err := VerifyBatch(nil, pubs, msgs, sigs)
	require.NoError(t, err)
	require.False(t, ok)
	require.Len(t, perSlot, n)
	require.False(t, perSlot[0])
	for i := 1; i < n; i++ {
		require.True(t, perSlot[i])
	}
}

func TestVerifyBatchEmpty(t *testing.T) {
	ok, perSlot, err := VerifyBatch(nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, perSlot)
}

func TestVerifyBatchMismatchedLengths(t *testing.T) {
	_, _, err := VerifyBatch(nil, make([]PublicKey, 2), make([][]byte, 1), make([][]byte, 2))
	require.Error(t, err)
}
