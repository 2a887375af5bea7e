// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards25519 implements the Ed25519 signature scheme (EdDSA
// over the twisted Edwards curve birationally equivalent to
// Curve25519), wired on top of the field, scalar, group, and
// scalar-multiplication packages under internal/. It exposes key
// generation, signing, single-signature verification, and batch
// verification.
package edwards25519

import (
	cryptorand "crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/gtank/edwards25519/internal/edwards25519"
	"github.com/gtank/edwards25519/internal/scalar"
)

const (
	// PublicKeySize is the size, in bytes, of public keys.
	PublicKeySize = 32
	// PrivateKeySize is the size, in bytes, of private keys (seed ||
	// public key, following RFC 8032's "expanded" convention).
	PrivateKeySize = 64
	// SeedSize is the size, in bytes, of private key seeds.
	SeedSize = 32
	// SignatureSize is the size, in bytes, of signatures.
	SignatureSize = 64
)

// PublicKey is an Ed25519 public key, the 32-byte packed encoding of a
// curve point.
type PublicKey []byte

// PrivateKey is an Ed25519 private key, the 32-byte seed followed by
// its 32-byte derived public key.
type PrivateKey []byte

// Public returns the PublicKey embedded in priv.
func (priv PrivateKey) Public() PublicKey {
	pk := make(PublicKey, PublicKeySize)
	copy(pk, priv[SeedSize:])
	return pk
}

// Seed returns the private key seed used to generate priv via
// NewKeyFromSeed.
func (priv PrivateKey) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, priv[:SeedSize])
	return seed
}

// GenerateKey generates a public/private key pair using entropy from
// rand. If rand is nil, crypto/rand.Reader is used.
func GenerateKey(rand io.Reader) (PublicKey, PrivateKey, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, nil, fmt.Errorf("ed25519: %w", err)
	}
	priv := NewKeyFromSeed(seed)
	return priv.Public(), priv, nil
}

// NewKeyFromSeed derives a PrivateKey from an existing 32-byte seed,
// implementing §4.E's `publickey(sk32) -> pk32` expanded to keep the
// seed alongside the derived public key, the same seed-plus-public-key
// layout RFC 8032 and crypto/ed25519 both use.
func NewKeyFromSeed(seed []byte) PrivateKey {
	if len(seed) != SeedSize {
		panic(ErrInvalidKeySize)
	}

	digest := sha512.Sum512(seed)
	var a scalar.Scalar
	clampScalarBytes(digest[:32])
	a.SetCanonicalBytes(digest[:32])

	A := new(edwards25519.ProjP3).ScalarBaseMult(&a)
	pub := A.Encode()

	priv := make(PrivateKey, PrivateKeySize)
	copy(priv[:SeedSize], seed)
	copy(priv[SeedSize:], pub)
	return priv
}

// clampScalarBytes applies Ed25519's clamping in place: clear the low
// 3 bits and bit 255, set bit 254, forcing the hashed secret into the
// cofactor-clearing, high-bit-fixed form §4.E and §6 require.
func clampScalarBytes(h []byte) {
	h[0] &= 248
	h[31] &= 127
	h[31] |= 64
}

// Sign signs the message m with priv and returns a signature. It
// implements §4.E's `sign(m, sk, pk)`. The nonce is derived
// deterministically from the hashed seed and the message, never from
// randomness, so repeated calls with the same inputs produce the same
// signature.
func Sign(priv PrivateKey, m []byte) []byte {
	if len(priv) != PrivateKeySize {
		panic(ErrInvalidKeySize)
	}
	seed, pub := priv[:SeedSize], priv[SeedSize:]

	digest := sha512.Sum512(seed)
	clampScalarBytes(digest[:32])
	var a scalar.Scalar
	a.SetCanonicalBytes(digest[:32])

	h := sha512.New()
	h.Write(digest[32:64])
	h.Write(m)
	var rDigest [64]byte
	h.Sum(rDigest[:0])

	var r scalar.Scalar
	r.SetUniformBytes(rDigest[:])

	R := new(edwards25519.ProjP3).ScalarBaseMult(&r)
	rEnc := R.Encode()

	h.Reset()
	h.Write(rEnc)
	h.Write(pub)
	h.Write(m)
	var kDigest [64]byte
	h.Sum(kDigest[:0])

	var k scalar.Scalar
	k.SetUniformBytes(kDigest[:])

	var s scalar.Scalar
	s.MulAdd(&k, &a, &r)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], rEnc)
	copy(sig[32:], s.Bytes())
	return sig
}

// Verify reports whether sig is a valid signature of m by pub,
// implementing §4.E's `open(m, pk, RS)`. It is variable-time in all of
// its inputs, which Ed25519 permits since none are secret here.
func Verify(pub PublicKey, m, sig []byte) bool {
	ok, _ := verify(pub, m, sig)
	return ok
}

// verify returns (valid, err), distinguishing a structurally invalid
// signature/key (err set, to surface INVALID_SCALAR / INVALID_POINT)
// from one that merely fails the check equation.
func verify(pub PublicKey, m, sig []byte) (bool, error) {
	if len(pub) != PublicKeySize {
		return false, ErrInvalidKeySize
	}
	if len(sig) != SignatureSize {
		return false, ErrInvalidKeySize
	}
	// §3's cheap high-byte mask: reject S >= 2^253 without decoding
	// anything.
	if sig[63]&0xE0 != 0 {
		return false, ErrInvalidScalar
	}

	A, err := new(edwards25519.ProjP3).Decode(pub)
	if err != nil {
		return false, ErrInvalidPoint
	}

	var s scalar.Scalar
	s.SetCanonicalBytes(sig[32:64])

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(pub)
	h.Write(m)
	var kDigest [64]byte
	h.Sum(kDigest[:0])

	var k scalar.Scalar
	k.SetUniformBytes(kDigest[:])

	// The check equation is R = [S]B - [k]A; DoubleScalarMultVartime
	// computes a*A + b*B, so the A-side weight must be negated.
	var negK scalar.Scalar
	negK.Negate(&k)

	checkR := new(edwards25519.ProjP3).DoubleScalarMultVartime(&negK, A, &s)
	checkEnc := checkR.Encode()

	if subtle.ConstantTimeCompare(checkEnc, sig[:32]) != 1 {
		return false, ErrInvalidSignature
	}
	return true, nil
}
