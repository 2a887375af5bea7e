// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	cryptorand "crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/gtank/edwards25519/internal/edwards25519"
	"github.com/gtank/edwards25519/internal/multiscalar"
	"github.com/gtank/edwards25519/internal/scalar"
)

// VerifyBatch implements §4.F: it reduces n independent verification
// equations [s_i]B = R_i + [k_i]A_i to a single multi-scalar equation
// using independent random 128-bit weights z_i, and evaluates it with
// the Bos-Coster engine in internal/multiscalar. If the aggregate check
// fails, it falls back to verifying every signature individually so the
// caller learns which slots are bad.
//
// rand supplies the per-signature verification weights; if nil,
// crypto/rand.Reader is used. pubs, msgs, and sigs must all have the
// same length, which may be zero.
//
// Returns batchOK (true iff every signature is valid) and perSlot,
// a slice reporting the validity of each individual signature. When
// batchOK is false, perSlot comes from verifying every slot on its own;
// on success every entry is true without a fallback pass. For an empty
// batch perSlot is nil.
func VerifyBatch(rand io.Reader, pubs []PublicKey, msgs [][]byte, sigs [][]byte) (batchOK bool, perSlot []bool, err error) {
	n := len(pubs)
	if len(msgs) != n || len(sigs) != n {
		return false, nil, fmt.Errorf("ed25519: mismatched batch lengths")
	}
	if n == 0 {
		return true, nil, nil
	}
	if rand == nil {
		rand = cryptorand.Reader
	}

	points := make([]*edwards25519.ProjP3, 0, 2*n+1)
	weights := make([]*scalar.Scalar, 0, 2*n+1)

	points = append(points, edwards25519.Basepoint())
	negSum := scalar.NewScalar()
	weights = append(weights, negSum) // filled in after the loop below

	anyStructurallyInvalid := false

	type slot struct {
		R, A *edwards25519.ProjP3
		k, s *scalar.Scalar
		z    *scalar.Scalar
		ok   bool
	}
	slots := make([]slot, n)

	for i := 0; i < n; i++ {
		if len(sigs[i]) != SignatureSize || len(pubs[i]) != PublicKeySize {
			anyStructurallyInvalid = true
			continue
		}
		if sigs[i][63]&0xE0 != 0 {
			anyStructurallyInvalid = true
			continue
		}

		R, errR := new(edwards25519.ProjP3).Decode(sigs[i][:32])
		A, errA := new(edwards25519.ProjP3).Decode(pubs[i])
		if errR != nil || errA != nil {
			anyStructurallyInvalid = true
			continue
		}

		var s scalar.Scalar
		s.SetCanonicalBytes(sigs[i][32:64])

		h := sha512.New()
		h.Write(sigs[i][:32])
		h.Write(pubs[i])
		h.Write(msgs[i])
		var kDigest [64]byte
		h.Sum(kDigest[:0])
		var k scalar.Scalar
		k.SetUniformBytes(kDigest[:])

		var zBuf [16]byte
		if _, err := io.ReadFull(rand, zBuf[:]); err != nil {
			return false, nil, fmt.Errorf("ed25519: %w", err)
		}
		var zWide [64]byte
		copy(zWide[:16], zBuf[:])
		var z scalar.Scalar
		z.SetUniformBytes(zWide[:])

		slots[i] = slot{R: R, A: A, k: &k, s: &s, z: &z, ok: true}
	}

	for i := range slots {
		if !slots[i].ok {
			continue
		}
		zs := new(scalar.Scalar).Multiply(slots[i].z, slots[i].s)
		negSum.Subtract(negSum, zs)

		points = append(points, slots[i].R)
		weights = append(weights, slots[i].z)
	}
	for i := range slots {
		if !slots[i].ok {
			continue
		}
		zk := new(scalar.Scalar).Multiply(slots[i].z, slots[i].k)
		points = append(points, slots[i].A)
		weights = append(weights, zk)
	}

	if anyStructurallyInvalid {
		return false, verifyIndividually(pubs, msgs, sigs), nil
	}

	result := multiscalar.Compute(weights, points)
	identityEnc := new(edwards25519.ProjP3).Zero().Encode()

	if subtle.ConstantTimeCompare(result.Encode(), identityEnc) == 1 {
		allTrue := make([]bool, n)
		for i := range allTrue {
			allTrue[i] = true
		}
		return true, allTrue, nil
	}

	return false, verifyIndividually(pubs, msgs, sigs), nil
}

// verifyIndividually is the §4.F-mandated fallback: when the aggregate
// check fails (or a slot was structurally malformed), verify every
// signature on its own so the caller learns exactly which indices are
// bad.
func verifyIndividually(pubs []PublicKey, msgs [][]byte, sigs [][]byte) []bool {
	perSlot := make([]bool, len(pubs))
	for i := range perSlot {
		perSlot[i] = Verify(pubs[i], msgs[i], sigs[i])
	}
	return perSlot
}
