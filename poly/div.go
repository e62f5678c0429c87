// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"container/heap"

	"github.com/symcore/polycas/polyerr"
	"github.com/symcore/polycas/ring"
)

// monomialDivides reports whether a is divisible by b componentwise
// (every exponent in b is <= the corresponding exponent in a), and
// returns a-b when it is.
func monomialDivides[E Exponent](a, b []E) ([]E, bool) {
	out := make([]E, len(a))
	for i := range a {
		if b[i] > a[i] {
			return nil, false
		}
		out[i] = a[i] - b[i]
	}
	return out, true
}

// QuotRem divides p by o, returning a quotient and remainder such that
// p == q*o + r, with every monomial of r either not a multiple of o's
// leading monomial or strictly smaller than it.
//
// QuotRem is a free function constrained to ring.EuclideanDomain rather
// than a Polynomial method, since Go methods cannot impose a stronger
// bound on a receiver's own type parameter than the type declaration
// already carries. Over a genuine non-Field EuclideanDomain (see
// ring.Integers) the leading-coefficient division performed at each
// step can leave a nonzero ring remainder; when that happens the whole
// division is aborted and the original dividend is returned unchanged
// as the remainder with an empty quotient — the graceful-failure
// contract a caller is expected to retry over a field extension
// (promoting ring.Integers coefficients to ring.Rationals, say) rather
// than treat as a panic.
//
// The algorithm repeatedly inspects the current leading term of the
// working remainder (an O(1) read, since terms are kept in sorted order
// by construction rather than re-sorted per step — the same invariant
// the heap-based multiplication in mul.go relies on): if it is divisible
// by o's leading monomial the corresponding quotient term is emitted and
// o scaled by it is subtracted out via MulMonomial/Sub; otherwise the
// term is moved into the remainder outright. This is the direct
// generalization of univariate long division to the sparse multivariate
// case (Monagan and Pearce's streaming heap division, HeapDivision
// below, is the asymptotically faster version of the same idea, trading
// this function's simple subtract-and-rescan step for incremental heap
// maintenance).
func QuotRem[C any, R ring.EuclideanDomain[C], E Exponent](p, o Polynomial[C, R, E]) (q, r Polynomial[C, R, E]) {
	p.checkCompatible(o)
	if o.IsZero() {
		polyerr.Raise(polyerr.OpDivideByZero, "QuotRem: division by the zero polynomial")
	}
	q = p.NewFrom()
	r = p.NewFrom()

	lmOther := o.LMonomial()
	lcOther := o.LCoeff()

	work := p
	for !work.IsZero() {
		lm := work.LMonomial()
		lc := work.LCoeff()

		diff, ok := monomialDivides(lm, lmOther)
		if !ok {
			r.AppendMonomial(lc, lm)
			work = work.dropLeading()
			continue
		}

		qc, rc := p.Ring.QuoRem(lc, lcOther)
		if !p.Ring.IsZero(rc) {
			return p.NewFrom(), p
		}
		q.AppendMonomial(qc, diff)

		sub := o.MulMonomial(qc, diff)
		work = work.Sub(sub)
	}
	return q, r
}

// dropLeading returns p with its leading (last) term removed.
func (p Polynomial[C, R, E]) dropLeading() Polynomial[C, R, E] {
	if p.IsZero() {
		return p
	}
	out := p.NewFrom()
	n := len(p.Coeffs) - 1
	out.Coeffs = append([]C(nil), p.Coeffs[:n]...)
	out.Exps = append([]E(nil), p.Exps[:n*p.NVars]...)
	return out
}

// SyntheticDivision divides p by an arbitrary univariate divisor,
// walking powers of the active variable (the one appearing in p's own
// leading monomial) from p.LDegreeMax() down to 0, accumulating each
// power's coefficient from the dividend and from the quotient terms
// already built, then dividing by the divisor's leading coefficient via
// ring.QuoRem: a nonzero ring remainder demotes that power into the
// remainder instead of the quotient, checked one coefficient at a time
// rather than aborting the whole pass the way QuotRem's all-or-nothing
// failure does. This generalizes the single-monomial "divide by c*x_v"
// fast path the name historically described to any univariate divisor;
// FastSyntheticDivision (div_field.go) specializes it further to
// field.FiniteField coefficients.
func SyntheticDivision[C any, R ring.EuclideanDomain[C], E Exponent](p, divisor Polynomial[C, R, E]) (q, r Polynomial[C, R, E]) {
	p.checkCompatible(divisor)
	if divisor.IsZero() {
		polyerr.Raise(polyerr.OpDivideByZero, "SyntheticDivision: division by the zero polynomial")
	}
	nvars := p.NVars
	q = p.NewFrom()
	r = p.NewFrom()
	if p.IsZero() {
		return q, r
	}

	var v int
	for i, e := range p.LMonomial() {
		if e != 0 {
			v = i
			break
		}
	}

	norm := divisor.LCoeff()
	m := divisor.LDegreeMax()
	pow := p.LDegreeMax()
	dividendPos := p.NTerms() - 1
	ndiv := divisor.NTerms()

	// Built highest power first, the order walking pow downward
	// naturally produces; reversed into increasing order at the end.
	var qCoeffs []C
	var qExps []E
	var rCoeffs []C
	var rExps []E

	for {
		var coeff C
		found := false
		for {
			if p.row(dividendPos)[v] == pow {
				coeff = p.Coeffs[dividendPos]
				found = true
				break
			}
			if dividendPos == 0 || p.row(dividendPos)[v] < pow {
				break
			}
			dividendPos--
		}
		if !found {
			coeff = p.Ring.Zero()
		}

		qindex, bindex := 0, 0
		nq := len(qCoeffs)
		for bindex < ndiv && qindex < nq {
			for bindex+1 < ndiv && divisor.row(bindex)[v]+qExps[qindex*nvars+v] < pow {
				bindex++
			}
			if divisor.row(bindex)[v]+qExps[qindex*nvars+v] == pow {
				coeff = p.Ring.Sub(coeff, p.Ring.Mul(divisor.Coeffs[bindex], qCoeffs[qindex]))
			}
			qindex++
		}

		if !p.Ring.IsZero(coeff) {
			row := make([]E, nvars)
			if pow >= m {
				quot, rem := p.Ring.QuoRem(coeff, norm)
				if p.Ring.IsZero(rem) {
					row[v] = pow - m
					qCoeffs = append(qCoeffs, quot)
					qExps = append(qExps, row...)
				} else {
					row[v] = pow
					rCoeffs = append(rCoeffs, coeff)
					rExps = append(rExps, row...)
				}
			} else {
				row[v] = pow
				rCoeffs = append(rCoeffs, coeff)
				rExps = append(rExps, row...)
			}
		}

		if pow == 0 {
			break
		}
		pow--
	}

	for i := len(qCoeffs) - 1; i >= 0; i-- {
		q.AppendMonomialBack(qCoeffs[i], qExps[i*nvars:(i+1)*nvars])
	}
	for i := len(rCoeffs) - 1; i >= 0; i-- {
		r.AppendMonomialBack(rCoeffs[i], rExps[i*nvars:(i+1)*nvars])
	}
	return q, r
}

// divHeapEntry records one contributor to a pending monomial in
// HeapDivision's heap: qi indexes an already-emitted quotient term, gi
// indexes a divisor term counted from its leading term (gi==0 is the
// divisor's leading term), and nextInDivisor distinguishes whether this
// entry's successor (pushed once it is drained) advances along the
// divisor's terms (the "quotient heap" product, chasing one quotient
// row across the whole divisor) or along the quotient's own terms (the
// "divisor heap" product, chasing one divisor row across the whole
// quotient) — the two interleaved product streams Monagan-Pearce heap
// division merges through a single heap.
type divHeapEntry[E Exponent] struct {
	qi, gi        int
	nextInDivisor bool
}

type monoHeap[E Exponent] [][]E

func (h monoHeap[E]) Len() int           { return len(h) }
func (h monoHeap[E]) Less(a, b int) bool { return compareRows(h[a], h[b]) > 0 }
func (h monoHeap[E]) Swap(a, b int)      { h[a], h[b] = h[b], h[a] }
func (h *monoHeap[E]) Push(x any)        { *h = append(*h, x.([]E)) }
func (h *monoHeap[E]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// encodeExpKey packs an exponent row into a comparable string so it
// can key the heap's dedup cache, the same big-endian-bytes-per-column
// idiom ToMultivariatePolynomialList uses for its group keys.
func encodeExpKey[E Exponent](row []E) string {
	b := make([]byte, len(row)*4)
	for i, e := range row {
		v := uint32(e)
		b[i*4], b[i*4+1], b[i*4+2], b[i*4+3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
	}
	return string(b)
}

// HeapDivision divides p by o using the sparse polynomial heap
// division of Monagan and Pearce ("Sparse polynomial division using a
// heap", 2011): rather than QuotRem's subtract-and-rescan of the whole
// working remainder at every step, it reads the dividend's own terms
// in decreasing order and merges them with a max-heap of the products
// still owed by already-emitted quotient terms against the divisor's
// tail (dividend terms never enter the heap), draining every
// contributor that lands on the popped
// monomial in one pass and pushing each drained contributor's single
// successor back onto the heap. A cache from encoded monomial to the
// list of pending (qi, gi, nextInDivisor) contributors at that monomial
// keeps the heap free of duplicate keys.
//
// The algorithm tracks, per divisor term gi, whether it is currently
// represented in the heap (divMonomialInHeap) and which quotient row it
// was last chased from (indexOfDivMonomialInQuotient); once the
// quotient grows to exactly o's term count, every divisor position
// switches from being driven off the newest quotient term pairwise
// (the quotient heap) to being driven off the full quotient-vs-divisor
// cross product (the divisor heap) — the one-shot reindex below that
// fires the moment len(qCoeffs) first equals o.NTerms().
func HeapDivision[C any, R ring.EuclideanDomain[C], E Exponent](p, o Polynomial[C, R, E]) (q, r Polynomial[C, R, E]) {
	p.checkCompatible(o)
	if o.IsZero() {
		polyerr.Raise(polyerr.OpDivideByZero, "HeapDivision: division by the zero polynomial")
	}
	nvars := p.NVars
	np := p.NTerms()
	ndiv := o.NTerms()

	pBack := func(k int) []E { return p.row(np - 1 - k) }
	pCoeffBack := func(k int) C { return p.Coeffs[np-1-k] }
	divBack := func(gi int) []E { return o.row(ndiv - 1 - gi) }
	divCoeffBack := func(gi int) C { return o.Coeffs[ndiv-1-gi] }
	ldeg := o.LMonomial()
	lcOther := o.LCoeff()

	addExp := func(a, b []E) []E {
		out := make([]E, nvars)
		for v := range out {
			out[v] = mustAddExponent(a[v], b[v])
		}
		return out
	}

	var qCoeffs []C
	var qExps [][]E
	var rCoeffs []C
	var rExps [][]E

	divMonomialInHeap := make([]bool, ndiv)
	indexOfDivMonomialInQuotient := make([]int, ndiv)

	cache := map[string][]divHeapEntry[E]{}
	h := &monoHeap[E]{}
	heap.Init(h)

	addToHeap := func(key []E, entry divHeapEntry[E]) {
		enc := encodeExpKey(key)
		lst, ok := cache[enc]
		if !ok {
			heap.Push(h, key)
		}
		cache[enc] = append(lst, entry)
	}

	k := 0
	for h.Len() > 0 || k < np {
		var m []E
		var c C
		if k < np && (h.Len() == 0 || compareRows(pBack(k), (*h)[0]) >= 0) {
			m = pBack(k)
			c = pCoeffBack(k)
			k++
		} else {
			m = (*h)[0]
			c = p.Ring.Zero()
		}

		if h.Len() > 0 && compareRows(m, (*h)[0]) == 0 {
			heap.Pop(h)
			enc := encodeExpKey(m)
			entries := cache[enc]
			delete(cache, enc)

			for _, e := range entries {
				c = p.Ring.Sub(c, p.Ring.Mul(qCoeffs[e.qi], divCoeffBack(e.gi)))

				switch {
				case e.nextInDivisor && e.gi+1 < ndiv:
					nextM := addExp(qExps[e.qi], divBack(e.gi+1))
					addToHeap(nextM, divHeapEntry[E]{qi: e.qi, gi: e.gi + 1, nextInDivisor: true})
				case !e.nextInDivisor:
					indexOfDivMonomialInQuotient[e.gi] = e.qi + 1

					if e.qi+1 < len(qCoeffs) {
						nextM := addExp(qExps[e.qi+1], divBack(e.gi))
						addToHeap(nextM, divHeapEntry[E]{qi: e.qi + 1, gi: e.gi, nextInDivisor: false})
					} else {
						divMonomialInHeap[e.gi] = false
					}

					if e.gi+1 < ndiv && !divMonomialInHeap[e.gi+1] {
						t := indexOfDivMonomialInQuotient[e.gi+1]
						if t < len(qCoeffs) {
							divMonomialInHeap[e.gi+1] = true
							nextElem := addExp(qExps[e.qi], divBack(e.gi+1))
							addToHeap(nextElem, divHeapEntry[E]{qi: e.qi, gi: e.gi + 1, nextInDivisor: false})
						}
					}
				}
			}
		}

		diff, dominates := monomialDivides(m, ldeg)
		if !p.Ring.IsZero(c) && dominates {
			qc, rc := p.Ring.QuoRem(c, lcOther)
			if !p.Ring.IsZero(rc) {
				return p.NewFrom(), p
			}
			qi := len(qCoeffs)
			qCoeffs = append(qCoeffs, qc)
			qExps = append(qExps, diff)

			if ndiv == 1 {
				continue
			}

			qnG1 := addExp(qExps[qi], divBack(1))

			switch {
			case len(qCoeffs) < ndiv:
				addToHeap(qnG1, divHeapEntry[E]{qi: qi, gi: 1, nextInDivisor: true})
			case len(qCoeffs) > ndiv:
				if !divMonomialInHeap[1] {
					divMonomialInHeap[1] = true
					addToHeap(qnG1, divHeapEntry[E]{qi: qi, gi: 1, nextInDivisor: false})
				}
			default:
				for idx := range indexOfDivMonomialInQuotient {
					indexOfDivMonomialInQuotient[idx] = len(qCoeffs) - 1
				}
				divMonomialInHeap[1] = true
				addToHeap(qnG1, divHeapEntry[E]{qi: qi, gi: 1, nextInDivisor: false})
			}
		} else if !p.Ring.IsZero(c) {
			rCoeffs = append(rCoeffs, c)
			rExps = append(rExps, append([]E(nil), m...))
		}
	}

	q = p.NewFrom()
	r = p.NewFrom()
	for i := len(qCoeffs) - 1; i >= 0; i-- {
		q.AppendMonomialBack(qCoeffs[i], qExps[i])
	}
	for i := len(rCoeffs) - 1; i >= 0; i-- {
		r.AppendMonomialBack(rCoeffs[i], rExps[i])
	}
	return q, r
}

// Content returns the ring-GCD of all of p's coefficients (the ring's
// zero for the zero polynomial). Content is a free function rather
// than a Polynomial method for the same reason QuotRem is: Go forbids
// a method from imposing a stronger constraint than the type's own
// declaration, and folding ring.EuclideanDomain.GCD needs more than the
// base ring.Ring every Polynomial already carries. Over a Field this
// collapses to the ring's One() as soon as p has any nonzero term
// (every nonzero field element is a unit); the fold is only
// interesting over a genuine EuclideanDomain like ring.Integers.
func Content[C any, R ring.EuclideanDomain[C], E Exponent](p Polynomial[C, R, E]) C {
	if p.IsZero() {
		return p.Ring.Zero()
	}
	g := p.Coeffs[0]
	for _, c := range p.Coeffs[1:] {
		g = p.Ring.GCD(g, c)
	}
	return g
}
