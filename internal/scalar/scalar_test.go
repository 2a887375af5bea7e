// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomReducedScalar(t *testing.T) *Scalar {
	t.Helper()
	var wide [64]byte
	_, err := rand.Read(wide[:])
	require.NoError(t, err)
	var s Scalar
	s.SetUniformBytes(wide[:])
	return &s
}

func TestAddCommutative(t *testing.T) {
	for i := 0; i < 32; i++ {
		a, b := randomReducedScalar(t), randomReducedScalar(t)
		var x, y Scalar
		x.Add(a, b)
		y.Add(b, a)
		require.Equal(t, 1, x.Equal(&y))
	}
}

func TestMulAddConsistentWithMulThenAdd(t *testing.T) {
	for i := 0; i < 32; i++ {
		a, b, c := randomReducedScalar(t), randomReducedScalar(t), randomReducedScalar(t)
		var direct, mul, added Scalar
		direct.MulAdd(a, b, c)
		mul.Multiply(a, b)
		added.Add(&mul, c)
		require.Equal(t, 1, direct.Equal(&added))
	}
}

func TestSignedRadix16Reconstructs(t *testing.T) {
	for i := 0; i < 32; i++ {
		s := randomReducedScalar(t)
		s.b[31] &= 0x7f // clear top bit as SignedRadix16 requires
		digits := s.SignedRadix16()

		var acc, pow, tmp, digitScalar Scalar
		pow.b[0] = 1
		for _, d := range digits {
			digitScalar = Scalar{}
			if d >= 0 {
				digitScalar.b[0] = byte(d)
			} else {
				digitScalar.Negate(&Scalar{b: func() [32]byte { var b [32]byte; b[0] = byte(-d); return b }()})
			}
			tmp.Multiply(&digitScalar, &pow)
			acc.Add(&acc, &tmp)

			var sixteen Scalar
			sixteen.b[0] = 16
			pow.Multiply(&pow, &sixteen)
		}
		require.Equal(t, 1, acc.Equal(s))
	}
}

func TestSlidingWindowDigitsAreOddAndSpaced(t *testing.T) {
	s := randomReducedScalar(t)
	s.b[31] &= 0x7f
	naf := s.SlidingWindow(5)

	lastNonZero := -100
	for i, d := range naf {
		if d == 0 {
			continue
		}
		require.Equal(t, int8(1), d&1, "digit at %d must be odd", i)
		if lastNonZero >= 0 {
			require.GreaterOrEqual(t, i-lastNonZero, 5)
		}
		lastNonZero = i
	}
}
