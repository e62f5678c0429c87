// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"container/heap"

	"github.com/symcore/polycas/polyerr"
)

// MulCoeff returns p with every coefficient multiplied by c. Term order
// is unaffected since exponent rows are untouched; a term is dropped if
// its coefficient becomes zero.
func (p Polynomial[C, R, E]) MulCoeff(c C) Polynomial[C, R, E] {
	out := p.NewFrom()
	for i := range p.Coeffs {
		prod := p.Ring.Mul(p.Coeffs[i], c)
		out.AppendMonomialBack(prod, p.row(i))
	}
	return out
}

// MulMonomial returns p multiplied by the single term c*prod(x^exps).
// Shifting every exponent row by the same constant preserves
// lexicographic order, so the result can be built with the
// append-to-back fast path without re-sorting.
func (p Polynomial[C, R, E]) MulMonomial(c C, exps []E) Polynomial[C, R, E] {
	if len(exps) != p.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "MulMonomial: %d exponents for %d variables", len(exps), p.NVars)
	}
	out := p.NewFrom()
	shifted := make([]E, p.NVars)
	for i := range p.Coeffs {
		prod := p.Ring.Mul(p.Coeffs[i], c)
		if p.Ring.IsZero(prod) {
			continue
		}
		row := p.row(i)
		for v := range shifted {
			shifted[v] = mustAddExponent(row[v], exps[v])
		}
		out.AppendMonomialBack(prod, shifted)
	}
	return out
}

type mulHeapItem[E Exponent] struct {
	i, j int
	key  []E
}

type mulHeap[E Exponent] []mulHeapItem[E]

func (h mulHeap[E]) Len() int           { return len(h) }
func (h mulHeap[E]) Less(a, b int) bool { return compareRows(h[a].key, h[b].key) < 0 }
func (h mulHeap[E]) Swap(a, b int)      { h[a], h[b] = h[b], h[a] }
func (h *mulHeap[E]) Push(x any)        { *h = append(*h, x.(mulHeapItem[E])) }
func (h *mulHeap[E]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// HeapMul multiplies p by o using the Monagan-Pearce heap-based
// streaming algorithm: rather than materializing all na*nb monomial
// products and sorting them, it grows a min-heap over just the
// "frontier" pairs (i,j), popping the lexicographically smallest
// remaining product exponent at each step and immediately coalescing
// every pair that shares it.
//
// The heap is seeded with a single pair (0,0); popping (i,j) pushes
// (i,j+1) (advance along o) and, only the first time row i is visited
// (j==0), also pushes (i+1,0) (start the next row of p). This reaches
// every (i,j) in the na*nb grid exactly once without a second pass, so
// no pair is ever pushed twice and the heap never exceeds O(na+nb)
// entries at steady state.
//
// TODO: fold in an exponent-cache (a map from encoded exponent row to
// the heap index already holding that key) so that two frontier pairs
// which already produce equal exponents merge before hitting the heap,
// rather than only after both have been popped; the current version is
// correct but does a little unnecessary heap churn on inputs with many
// coinciding monomials.
func (p Polynomial[C, R, E]) HeapMul(o Polynomial[C, R, E]) Polynomial[C, R, E] {
	p.checkCompatible(o)
	out := p.NewFrom()
	na, nb := len(p.Coeffs), len(o.Coeffs)
	if na == 0 || nb == 0 {
		return out
	}

	keyOf := func(i, j int) []E {
		row := make([]E, p.NVars)
		pr, orow := p.row(i), o.row(j)
		for v := range row {
			row[v] = mustAddExponent(pr[v], orow[v])
		}
		return row
	}

	h := &mulHeap[E]{{i: 0, j: 0, key: keyOf(0, 0)}}
	heap.Init(h)

	var pendingKey []E
	var pendingCoeff C
	havePending := false

	flush := func() {
		if havePending {
			out.AppendMonomialBack(pendingCoeff, pendingKey)
			havePending = false
		}
	}

	for h.Len() > 0 {
		item := heap.Pop(h).(mulHeapItem[E])
		coeff := p.Ring.Mul(p.Coeffs[item.i], o.Coeffs[item.j])

		if havePending && compareRows(pendingKey, item.key) == 0 {
			pendingCoeff = p.Ring.Add(pendingCoeff, coeff)
		} else {
			flush()
			pendingKey, pendingCoeff, havePending = item.key, coeff, true
		}

		if item.j+1 < nb {
			heap.Push(h, mulHeapItem[E]{i: item.i, j: item.j + 1, key: keyOf(item.i, item.j+1)})
		}
		if item.j == 0 && item.i+1 < na {
			heap.Push(h, mulHeapItem[E]{i: item.i + 1, j: 0, key: keyOf(item.i+1, 0)})
		}
	}
	flush()
	return out
}
