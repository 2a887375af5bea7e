// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomElement(t *testing.T) *Element {
	t.Helper()
	var b [32]byte
	_, err := rand.Read(b[:])
	require.NoError(t, err)
	b[31] &= 0x7f
	var e Element
	e.SetBytes(b[:])
	return &e
}

func TestAddCommutative(t *testing.T) {
	for i := 0; i < 64; i++ {
		x, y := randomElement(t), randomElement(t)
		var a, b Element
		a.Add(x, y)
		b.Add(y, x)
		require.Equal(t, 1, a.Equal(&b))
	}
}

func TestMulCommutative(t *testing.T) {
	for i := 0; i < 64; i++ {
		x, y := randomElement(t), randomElement(t)
		var a, b Element
		a.Multiply(x, y)
		b.Multiply(y, x)
		require.Equal(t, 1, a.Equal(&b))
	}
}

func TestSquareMatchesMultiply(t *testing.T) {
	for i := 0; i < 64; i++ {
		x := randomElement(t)
		var sq, mul Element
		sq.Square(x)
		mul.Multiply(x, x)
		require.Equal(t, 1, sq.Equal(&mul))
	}
}

func TestInvert(t *testing.T) {
	for i := 0; i < 64; i++ {
		x := randomElement(t)
		if x.IsZero() == 1 {
			continue
		}
		var inv, prod Element
		inv.Invert(x)
		prod.Multiply(x, &inv)
		require.Equal(t, 1, prod.Equal(feOne))
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		var b [32]byte
		_, err := rand.Read(b[:])
		require.NoError(t, err)
		b[31] &= 0x7f // below p, top bit cleared

		var e Element
		e.SetBytes(b[:])
		out := e.Bytes()

		var e2 Element
		e2.SetBytes(out)
		require.Equal(t, 1, e.Equal(&e2))
	}
}

func TestSwapSelect(t *testing.T) {
	a, b := randomElement(t), randomElement(t)
	origA, origB := *a, *b

	a.Swap(b, 0)
	require.Equal(t, 1, a.Equal(&origA))
	require.Equal(t, 1, b.Equal(&origB))

	a.Swap(b, 1)
	require.Equal(t, 1, a.Equal(&origB))
	require.Equal(t, 1, b.Equal(&origA))

	var sel Element
	sel.Select(&origA, &origB, 1)
	require.Equal(t, 1, sel.Equal(&origA))
	sel.Select(&origA, &origB, 0)
	require.Equal(t, 1, sel.Equal(&origB))
}

// TestPow22523Identity checks Pow22523 against Fermat's little theorem
// directly: r = x^((p-5)/8) implies r^8 == x^(p-5) == x^(p-1)/x^4 == 1/x^4,
// so r^8 * x^4 must be 1 for any nonzero x, independent of whether x is a
// quadratic residue.
func TestPow22523Identity(t *testing.T) {
	for i := 0; i < 32; i++ {
		x := randomElement(t)
		if x.IsZero() == 1 {
			continue
		}
		var r, r8, x4 Element
		r.Pow22523(x)
		r8.SquareN(&r, 3)
		x4.SquareN(x, 2)

		var prod Element
		prod.Multiply(&r8, &x4)
		require.Equal(t, 1, prod.Equal(feOne))
	}
}
