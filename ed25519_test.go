// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// Official RFC 8032 / ed25519.cr.yp.to test vector #1: empty message.
func TestVectorOne(t *testing.T) {
	seed := mustHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	wantPub := mustHex(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a")
	wantSig := mustHex(t, "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b")

	priv := NewKeyFromSeed(seed)
	pub := priv.Public()
	require.Equal(t, wantPub, []byte(pub))

	sig := Sign(priv, nil)
	require.Equal(t, wantSig, sig)
	require.True(t, Verify(pub, nil, sig))
}

// Official test vector #2: one-byte message.
func TestVectorTwo(t *testing.T) {
	seed := mustHex(t, "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb")
	wantPub := mustHex(t, "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c")
	wantSig := mustHex(t, "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00")
	m := mustHex(t, "72")

	priv := NewKeyFromSeed(seed)
	pub := priv.Public()
	require.Equal(t, wantPub, []byte(pub))

	sig := Sign(priv, m)
	require.Equal(t, wantSig, sig)
	require.True(t, Verify(pub, m, sig))
}

func TestVectorTwoNegativeFlippedSigByte(t *testing.T) {
	seed := mustHex(t, "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb")
	m := mustHex(t, "72")

	priv := NewKeyFromSeed(seed)
	pub := priv.Public()
	sig := Sign(priv, m)
	sig[63] ^= 0x01

	require.False(t, Verify(pub, m, sig))
}

func TestRejectsHighScalarWithoutDecoding(t *testing.T) {
	seed := mustHex(t, "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb")
	m := mustHex(t, "72")

	priv := NewKeyFromSeed(seed)
	pub := priv.Public()
	sig := Sign(priv, m)
	sig[63] = 0x20

	require.False(t, Verify(pub, m, sig))
}

func TestRoundTripRandom(t *testing.T) {
	for i := 0; i < 256; i++ {
		pub, priv, err := GenerateKey(nil)
		require.NoError(t, err)

		m := make([]byte, i%37)
		_, err = rand.Read(m)
		require.NoError(t, err)

		sig := Sign(priv, m)
		require.True(t, Verify(pub, m, sig))
	}
}

func TestEmptyMessageAccepted(t *testing.T) {
	pub, priv, err := GenerateKey(nil)
	require.NoError(t, err)

	sig := Sign(priv, []byte{})
	require.True(t, Verify(pub, []byte{}, sig))
}

func TestBitFlipsBreakVerification(t *testing.T) {
	pub, priv, err := GenerateKey(nil)
	require.NoError(t, err)
	m := []byte("the quick brown fox")
	sig := Sign(priv, m)

	require.True(t, Verify(pub, m, sig))

	flipped := append([]byte(nil), m...)
	flipped[0] ^= 1
	require.False(t, Verify(pub, flipped, sig))

	badPub := append(PublicKey(nil), pub...)
	badPub[0] ^= 1
	require.False(t, Verify(badPub, m, sig))

	badSig := append([]byte(nil), sig...)
	badSig[0] ^= 1
	require.False(t, Verify(pub, m, badSig))

	badSig2 := append([]byte(nil), sig...)
	badSig2[40] ^= 1
	require.False(t, Verify(pub, m, badSig2))
}

func TestPublicKeyNotOnCurveRejected(t *testing.T) {
	_, priv, err := GenerateKey(nil)
	require.NoError(t, err)
	m := []byte("msg")
	sig := Sign(priv, m)

	// y=2 has no corresponding x (2^2-1 is not a square times v for
	// most small y values); this particular y is not on the curve.
	bogus := make(PublicKey, PublicKeySize)
	bogus[0] = 2

	require.False(t, Verify(bogus, m, sig))
}
