// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import "errors"

// Sentinel errors for the failure kinds of verification. The unexported
// verify returns them by value; Verify reduces them to a false result.
// NewKeyFromSeed and Sign panic with ErrInvalidKeySize when given a
// seed or private key of the wrong length.
var (
	// ErrInvalidSignature is returned when the check equation fails
	// for the given message, public key, and signature.
	ErrInvalidSignature = errors.New("ed25519: invalid signature")

	// ErrInvalidPoint is returned when a public key does not decode to
	// a point on the curve.
	ErrInvalidPoint = errors.New("ed25519: invalid point encoding")

	// ErrInvalidScalar is returned when a signature's S component is
	// not in [0, 2^253), the cheap high-bits mask check.
	ErrInvalidScalar = errors.New("ed25519: invalid scalar encoding")

	// ErrInvalidKeySize is returned when a seed, key, or signature slice
	// has the wrong length for the operation.
	ErrInvalidKeySize = errors.New("ed25519: invalid key size")
)
