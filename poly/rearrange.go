// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"sort"

	"github.com/symcore/polycas/polyerr"
	"github.com/symcore/polycas/ring"
)

// Rearrange returns p with its variables permuted according to order,
// a slice of length NVars giving, for each new variable position, which
// old variable index supplies it. Since lexicographic order depends on
// variable position, the term list is rebuilt and re-sorted rather than
// just having its exponent columns shuffled in place.
func (p Polynomial[C, R, E]) Rearrange(order []int) Polynomial[C, R, E] {
	if len(order) != p.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "Rearrange: permutation has length %d, want %d", len(order), p.NVars)
	}
	var newVarMap []string
	if p.VarMap != nil {
		newVarMap = make([]string, p.NVars)
		for newPos, oldPos := range order {
			newVarMap[newPos] = p.VarMap[oldPos]
		}
	}

	type term struct {
		coeff C
		row   []E
	}
	terms := make([]term, len(p.Coeffs))
	for i := range p.Coeffs {
		oldRow := p.row(i)
		newRow := make([]E, p.NVars)
		for newPos, oldPos := range order {
			newRow[newPos] = oldRow[oldPos]
		}
		terms[i] = term{coeff: p.Coeffs[i], row: newRow}
	}
	sort.Slice(terms, func(a, b int) bool {
		return compareRows(terms[a].row, terms[b].row) < 0
	})

	out := New[C, R, E](p.Ring, p.NVars)
	out.VarMap = newVarMap
	for _, t := range terms {
		out.AppendMonomialBack(t.coeff, t.row)
	}
	return out
}

// Replace substitutes variable v with the constant value, returning a
// polynomial over the remaining NVars-1 variables (column v dropped).
// Terms that collapse onto the same remaining monomial after
// substitution are merged.
func (p Polynomial[C, R, E]) Replace(v int, value C) Polynomial[C, R, E] {
	if v < 0 || v >= p.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "Replace: variable index %d out of range for %d variables", v, p.NVars)
	}
	var newVarMap []string
	if p.VarMap != nil {
		newVarMap = append(newVarMap[:0:0], p.VarMap[:v]...)
		newVarMap = append(newVarMap, p.VarMap[v+1:]...)
	}
	out := New[C, R, E](p.Ring, p.NVars-1)
	out.VarMap = newVarMap

	// Cache value^k for every k appearing in column v among p's terms,
	// computed incrementally since exponents only grow.
	maxDeg := p.Degree(v)
	pows := make([]C, int(maxDeg)+1)
	pows[0] = p.Ring.One()
	for k := 1; k <= int(maxDeg); k++ {
		pows[k] = p.Ring.Mul(pows[k-1], value)
	}

	for i := range p.Coeffs {
		row := p.row(i)
		newRow := make([]E, p.NVars-1)
		copy(newRow, row[:v])
		copy(newRow[v:], row[v+1:])
		scaled := p.Ring.Mul(p.Coeffs[i], pows[int(row[v])])
		out.AppendMonomial(scaled, newRow)
	}
	return out
}

// ReplaceAllExcept substitutes every variable except keepVar with the
// corresponding entry of values (the entry at keepVar is ignored),
// collapsing p down to a single-variable polynomial in keepVar.
func (p Polynomial[C, R, E]) ReplaceAllExcept(keepVar int, values []C) Polynomial[C, R, E] {
	if len(values) != p.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "ReplaceAllExcept: %d values for %d variables", len(values), p.NVars)
	}
	work := p
	// Replace from the highest index down so that indices below keepVar
	// don't shift while we still need to reference them by original
	// position.
	for v := p.NVars - 1; v >= 0; v-- {
		if v == keepVar {
			continue
		}
		work = work.Replace(v, values[v])
		if v < keepVar {
			keepVar--
		}
	}
	return work
}

// UnivariateTerm pairs a power of the grouping variable with the
// multivariate coefficient polynomial (over the remaining variables)
// that multiplies it.
type UnivariateTerm[C any, R ring.Ring[C], E Exponent] struct {
	Power E
	Coeff Polynomial[C, R, E]
}

// ToUnivariatePolynomialList regroups p by its exponent in variable v,
// returning one entry per distinct power of v present, each carrying the
// polynomial in the remaining NVars-1 variables that multiplies x_v^k.
func (p Polynomial[C, R, E]) ToUnivariatePolynomialList(v int) []UnivariateTerm[C, R, E] {
	groups := map[E]*Polynomial[C, R, E]{}
	var order []E
	for i := range p.Coeffs {
		row := p.row(i)
		k := row[v]
		g, ok := groups[k]
		if !ok {
			np := New[C, R, E](p.Ring, p.NVars-1)
			g = &np
			groups[k] = g
			order = append(order, k)
		}
		newRow := make([]E, p.NVars-1)
		copy(newRow, row[:v])
		copy(newRow[v:], row[v+1:])
		g.AppendMonomial(p.Coeffs[i], newRow)
	}
	sort.Slice(order, func(a, b int) bool { return order[a] < order[b] })
	out := make([]UnivariateTerm[C, R, E], len(order))
	for i, k := range order {
		out[i] = UnivariateTerm[C, R, E]{Power: k, Coeff: *groups[k]}
	}
	return out
}

// MultivariateTerm pairs a combined exponent tuple (over the grouping
// variables) with the coefficient polynomial over the remaining ones.
type MultivariateTerm[C any, R ring.Ring[C], E Exponent] struct {
	Powers []E
	Coeff  Polynomial[C, R, E]
}

// ToMultivariatePolynomialList generalizes ToUnivariatePolynomialList to
// a set of grouping variables vs, returning one entry per distinct tuple
// of exponents observed across vs.
func (p Polynomial[C, R, E]) ToMultivariatePolynomialList(vs []int) []MultivariateTerm[C, R, E] {
	isGrouped := make([]bool, p.NVars)
	for _, v := range vs {
		isGrouped[v] = true
	}
	type key string
	groups := map[key]*MultivariateTerm[C, R, E]{}
	var order []key

	encodeKey := func(powers []E) key {
		b := make([]byte, 0, len(powers)*4)
		for _, e := range powers {
			b = append(b, byte(e>>24), byte(e>>16), byte(e>>8), byte(e))
		}
		return key(b)
	}

	remainingNVars := p.NVars - len(vs)
	for i := range p.Coeffs {
		row := p.row(i)
		powers := make([]E, len(vs))
		for gi, v := range vs {
			powers[gi] = row[v]
		}
		k := encodeKey(powers)
		g, ok := groups[k]
		if !ok {
			np := New[C, R, E](p.Ring, remainingNVars)
			g = &MultivariateTerm[C, R, E]{Powers: powers, Coeff: np}
			groups[k] = g
			order = append(order, k)
		}
		newRow := make([]E, 0, remainingNVars)
		for v := 0; v < p.NVars; v++ {
			if !isGrouped[v] {
				newRow = append(newRow, row[v])
			}
		}
		g.Coeff.AppendMonomial(p.Coeffs[i], newRow)
	}
	sort.Slice(order, func(a, b int) bool { return order[a] < order[b] })
	out := make([]MultivariateTerm[C, R, E], len(order))
	for i, k := range order {
		out[i] = *groups[k]
	}
	return out
}
