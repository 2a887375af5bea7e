// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package multiscalar computes sum(s_i * P_i) for many (scalar, point)
// pairs at once, the component §4.F names for batch verification. It
// implements the Bos–Coster algorithm: a max-heap keyed on scalar
// magnitude repeatedly pops the two largest-weighted points and
// replaces them with a smaller-weighted pair carrying the same total
// contribution, until a single entry remains.
package multiscalar

import (
	"container/heap"

	"github.com/gtank/edwards25519/internal/edwards25519"
	"github.com/gtank/edwards25519/internal/scalar"
)

// entry is one (weight, point) term of the sum.
type entry struct {
	weight *scalar.Scalar
	point  *edwards25519.ProjP3
}

// entryHeap is a container/heap.Interface max-heap ordered by weight.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	return h[i].weight.Compare(h[j].weight) > 0 // max-heap
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*entry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Compute returns sum(weights[i] * points[i]). len(weights) must equal
// len(points); if both are empty, the identity is returned. This is variable-time and must
// only be used on already-public (weight, point) pairs.
func Compute(weights []*scalar.Scalar, points []*edwards25519.ProjP3) *edwards25519.ProjP3 {
	if len(weights) != len(points) {
		panic("multiscalar: mismatched weights/points length")
	}
	if len(weights) == 0 {
		return new(edwards25519.ProjP3).Zero()
	}

	h := make(entryHeap, 0, len(weights))
	for i := range weights {
		w := new(scalar.Scalar).Set(weights[i])
		if w.IsZero() {
			continue
		}
		h = append(h, &entry{weight: w, point: points[i]})
	}
	heap.Init(&h)

	if len(h) == 0 {
		return new(edwards25519.ProjP3).Zero()
	}

	for len(h) > 1 {
		a := heap.Pop(&h).(*entry)
		b := heap.Pop(&h).(*entry)

		// a.weight >= b.weight since a was the heap max and b the
		// next-max. a*P + b*Q == (a-b)*P + b*(P+Q).
		var merged edwards25519.ProjP3
		merged.Add(a.point, cachedOf(b.point))

		var diff scalar.Scalar
		diff.Subtract(a.weight, b.weight)

		if !diff.IsZero() {
			heap.Push(&h, &entry{weight: &diff, point: a.point})
		}
		heap.Push(&h, &entry{weight: b.weight, point: &merged})
	}

	last := h[0]
	return scalarMultVartime(last.weight, last.point)
}

func cachedOf(p *edwards25519.ProjP3) *edwards25519.ProjCached {
	var c edwards25519.ProjCached
	c.FromP3(p)
	return &c
}

// scalarMultVartime computes s*P via simple, variable-time
// double-and-add over the bits of s's canonical encoding. Used only for
// the final residual-scalar step of Compute, after every other entry
// has been folded away.
func scalarMultVartime(s *scalar.Scalar, P *edwards25519.ProjP3) *edwards25519.ProjP3 {
	b := s.Bytes()

	var acc edwards25519.ProjP3
	acc.Zero()

	for i := 255; i >= 0; i-- {
		byteIdx := i / 8
		bitIdx := uint(i % 8)

		var dbl edwards25519.ProjP2
		dbl.FromP3(&acc)
		var p1 edwards25519.ProjP1xP1
		p1.Double(&dbl)
		acc.FromP1xP1(&p1)

		if (b[byteIdx]>>bitIdx)&1 == 1 {
			acc.Add(&acc, cachedOf(P))
		}
	}
	return &acc
}
