// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

// basepointBytes is the standard 32-byte encoding of the edwards25519
// base point B: y = 4/5, x even. This is the generator RFC 8032 names
// and every Ed25519 implementation shares.
var basepointBytes = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

var basepoint ProjP3

// Basepoint returns a copy of the edwards25519 base point.
func Basepoint() *ProjP3 {
	var v ProjP3
	v.Set(&basepoint)
	return &v
}

// basepointTable holds, for each of the 64 nibble positions in a
// SignedRadix16 digit sequence, the eight points {1,...,8} * 16^i * B
// in AffineCached form. ScalarBaseMult selects one of these (possibly
// negated) per digit and adds it in, the "fixed-base comb" strategy of
// §4.D.
var basepointTable [64][8]AffineCached

// basepointOddMultiples holds the eight odd multiples
// {1,3,5,7,9,11,13,15} * B in ProjCached form, consumed by
// DoubleScalarMultVartime's sliding-window recoding of the B-scalar.
var basepointOddMultiples [8]ProjCached

func init() {
	pt, err := new(ProjP3).Decode(basepointBytes[:])
	if err != nil {
		panic("edwards25519: base point fails to decode: " + err.Error())
	}
	basepoint = *pt

	buildFixedBaseTable(&basepoint, &basepointTable)
	buildOddMultiples(&basepoint, &basepointOddMultiples)
}

// buildFixedBaseTable fills table[b][j] = (j+1) * 16^b * P, for
// b in [0,64) and j in [0,8).
func buildFixedBaseTable(P *ProjP3, table *[64][8]AffineCached) {
	var pow ProjP3
	pow.Set(P)

	for b := 0; b < 64; b++ {
		var cached ProjCached
		cached.FromP3(&pow)

		var multiple ProjP3
		multiple.Set(&pow)
		for j := 0; j < 8; j++ {
			table[b][j].FromP3(&multiple)
			if j < 7 {
				multiple.Add(&multiple, &cached)
			}
		}

		// pow *= 16, via four doublings, ready for the next block.
		for k := 0; k < 4; k++ {
			var p2 ProjP2
			p2.FromP3(&pow)
			var p1 ProjP1xP1
			p1.Double(&p2)
			pow.FromP1xP1(&p1)
		}
	}
}

// buildOddMultiples fills out[i] = (2i+1) * P in ProjCached form, for
// i in [0,8): the table a width-5 sliding-window recoding consumes.
func buildOddMultiples(P *ProjP3, out *[8]ProjCached) {
	var P2 ProjP3
	P2.Double(P)
	var P2cached ProjCached
	P2cached.FromP3(&P2)

	var acc ProjP3
	acc.Set(P)
	for i := range out {
		out[i].FromP3(&acc)
		if i < len(out)-1 {
			acc.Add(&acc, &P2cached)
		}
	}
}

// oddMultiples computes {1,3,...,15} * P for an arbitrary, non-fixed
// point P, used for the variable operand of DoubleScalarMultVartime
// since it cannot be precomputed.
func oddMultiples(P *ProjP3) [8]ProjCached {
	var out [8]ProjCached
	buildOddMultiples(P, &out)
	return out
}
