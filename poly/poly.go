// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements sparse multivariate polynomials over any
// coefficient ring from package ring (or field): a coefficient vector
// paired with a flat, row-major exponent matrix, terms kept in strictly
// increasing lexicographic monomial order so the leading monomial is
// always the last row. This mirrors the teacher's mat package, which
// also favors a flat backing slice plus a stride over a slice-of-slices
// representation for cache locality.
package poly

import (
	"fmt"

	"github.com/symcore/polycas/polyerr"
	"github.com/symcore/polycas/ring"
)

// Exponent is the integer type used to store a single variable's power
// within a monomial. Two widths are supported, matching the teacher's
// preference (see mat's Index type aliasing) for letting callers choose
// a narrower representation when memory matters.
type Exponent interface {
	~uint16 | ~uint32
}

// checkedAddExponent adds a and b, reporting overflow instead of
// wrapping. Go's unsigned integer types wrap silently on overflow, so
// every exponent addition in this package (monomial multiplication)
// must route through this helper rather than using + directly.
func checkedAddExponent[E Exponent](a, b E) (E, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// mustAddExponent adds a and b, raising polyerr.OpExponentOverflow
// instead of silently wrapping on overflow.
func mustAddExponent[E Exponent](a, b E) E {
	sum, ok := checkedAddExponent(a, b)
	if !ok {
		polyerr.Raise(polyerr.OpExponentOverflow, "exponent addition %d+%d overflows", a, b)
	}
	return sum
}

// Polynomial is a sparse multivariate polynomial: NTerms coefficients in
// Coeffs, each paired with a row of NVars exponents in the flat matrix
// Exps (Exps[i*NVars : (i+1)*NVars] is term i's monomial). Terms are
// kept in strictly increasing lexicographic order across the exponent
// rows, so Coeffs[len(Coeffs)-1] is always the leading coefficient.
//
// C is the coefficient representation (numeric.Float64, numeric.Rational,
// a cmplx.Complex[T], or a finite field's uint64), R is the concrete
// ring.Ring implementation operating on C, and E is the exponent width.
// VarMap optionally names the NVars variables for pretty-printing; it is
// nil for anonymous polynomials.
type Polynomial[C any, R ring.Ring[C], E Exponent] struct {
	Ring   R
	NVars  int
	Coeffs []C
	Exps   []E
	VarMap []string
}

// New returns the zero polynomial in nvars variables over r.
func New[C any, R ring.Ring[C], E Exponent](r R, nvars int) Polynomial[C, R, E] {
	return Polynomial[C, R, E]{Ring: r, NVars: nvars}
}

// NewFrom returns an empty polynomial sharing p's ring, variable count,
// and variable map, used as the accumulator target of add/mul/div.
func (p Polynomial[C, R, E]) NewFrom() Polynomial[C, R, E] {
	return Polynomial[C, R, E]{Ring: p.Ring, NVars: p.NVars, VarMap: p.VarMap}
}

// FromConstant returns the constant polynomial c (the zero polynomial
// if c is the ring's zero).
func FromConstant[C any, R ring.Ring[C], E Exponent](r R, nvars int, c C) Polynomial[C, R, E] {
	p := New[C, R, E](r, nvars)
	if r.IsZero(c) {
		return p
	}
	p.Coeffs = append(p.Coeffs, c)
	p.Exps = make([]E, nvars)
	return p
}

// FromMonomial returns the single-term polynomial c*prod(x_i^exps[i]).
func FromMonomial[C any, R ring.Ring[C], E Exponent](r R, nvars int, c C, exps []E) Polynomial[C, R, E] {
	if len(exps) != nvars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "FromMonomial: %d exponents for %d variables", len(exps), nvars)
	}
	p := New[C, R, E](r, nvars)
	if r.IsZero(c) {
		return p
	}
	p.Coeffs = append(p.Coeffs, c)
	p.Exps = append(p.Exps, exps...)
	return p
}

func (p Polynomial[C, R, E]) NTerms() int { return len(p.Coeffs) }

func (p Polynomial[C, R, E]) IsZero() bool { return len(p.Coeffs) == 0 }

func (p Polynomial[C, R, E]) IsConstant() bool {
	if p.IsZero() {
		return true
	}
	if len(p.Coeffs) != 1 {
		return false
	}
	for _, e := range p.row(0) {
		if e != 0 {
			return false
		}
	}
	return true
}

func (p Polynomial[C, R, E]) IsOne() bool {
	return p.IsConstant() && len(p.Coeffs) == 1 && p.Ring.IsOne(p.Coeffs[0])
}

// row returns term i's exponent row as a sub-slice of Exps (no copy).
func (p Polynomial[C, R, E]) row(i int) []E {
	return p.Exps[i*p.NVars : (i+1)*p.NVars]
}

// compareRows returns -1, 0, or 1 as a is lexicographically less than,
// equal to, or greater than b, comparing the first variable first
// (the same order the teacher's mat.Dense compares indices row-major).
func compareRows[E Exponent](a, b []E) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// LCoeff returns the leading coefficient (the coefficient of the
// lexicographically largest monomial), or the ring's zero for the zero
// polynomial.
func (p Polynomial[C, R, E]) LCoeff() C {
	if p.IsZero() {
		return p.Ring.Zero()
	}
	return p.Coeffs[len(p.Coeffs)-1]
}

// LMonomial returns the exponent row of the leading term.
func (p Polynomial[C, R, E]) LMonomial() []E {
	if p.IsZero() {
		return make([]E, p.NVars)
	}
	return p.row(len(p.Coeffs) - 1)
}

// Degree returns the highest exponent of variable v appearing in any
// term (0 for the zero polynomial).
func (p Polynomial[C, R, E]) Degree(v int) E {
	var max E
	for i := 0; i < len(p.Coeffs); i++ {
		if e := p.row(i)[v]; e > max {
			max = e
		}
	}
	return max
}

// LDegree returns the exponent of variable v in the leading monomial.
func (p Polynomial[C, R, E]) LDegree(v int) E {
	if p.IsZero() {
		return 0
	}
	return p.LMonomial()[v]
}

// LDegreeMax returns the highest single-variable exponent appearing in
// the leading monomial, used by the division routines to pick a pivot
// variable cheaply.
func (p Polynomial[C, R, E]) LDegreeMax() E {
	var max E
	for _, e := range p.LMonomial() {
		if e > max {
			max = e
		}
	}
	return max
}

// AppendMonomialBack appends a term directly to the back of the term
// list without checking or restoring sorted order; callers must
// guarantee the new row strictly exceeds the current leading monomial
// (the fast path used by the heap-based algorithms, which already
// produce output in increasing order). A zero coefficient is silently
// dropped rather than appended.
func (p *Polynomial[C, R, E]) AppendMonomialBack(c C, exps []E) {
	if len(exps) != p.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "AppendMonomialBack: %d exponents for %d variables", len(exps), p.NVars)
	}
	if p.Ring.IsZero(c) {
		return
	}
	p.Coeffs = append(p.Coeffs, c)
	p.Exps = append(p.Exps, exps...)
}

// AppendMonomial inserts a term at its sorted position, located by
// binary search, merging with an existing term of the same monomial
// (adding coefficients, and dropping the term entirely if the sum is
// zero) rather than assuming the caller already placed it correctly.
func (p *Polynomial[C, R, E]) AppendMonomial(c C, exps []E) {
	if len(exps) != p.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "AppendMonomial: %d exponents for %d variables", len(exps), p.NVars)
	}
	if p.Ring.IsZero(c) {
		return
	}
	lo, hi := 0, len(p.Coeffs)
	for lo < hi {
		mid := (lo + hi) / 2
		cmp := compareRows(p.row(mid), exps)
		if cmp == 0 {
			sum := p.Ring.Add(p.Coeffs[mid], c)
			if p.Ring.IsZero(sum) {
				p.removeTerm(mid)
			} else {
				p.Coeffs[mid] = sum
			}
			return
		}
		if cmp < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	p.insertTermAt(lo, c, exps)
}

func (p *Polynomial[C, R, E]) insertTermAt(idx int, c C, exps []E) {
	p.Coeffs = append(p.Coeffs, c)
	copy(p.Coeffs[idx+1:], p.Coeffs[idx:len(p.Coeffs)-1])
	p.Coeffs[idx] = c

	old := p.Exps
	p.Exps = make([]E, len(old)+p.NVars)
	copy(p.Exps, old[:idx*p.NVars])
	copy(p.Exps[idx*p.NVars:], exps)
	copy(p.Exps[(idx+1)*p.NVars:], old[idx*p.NVars:])
}

func (p *Polynomial[C, R, E]) removeTerm(idx int) {
	p.Coeffs = append(p.Coeffs[:idx], p.Coeffs[idx+1:]...)
	p.Exps = append(p.Exps[:idx*p.NVars], p.Exps[(idx+1)*p.NVars:]...)
}

// UnifyVarMap returns p and o rebuilt over the union of their variable
// maps, in the order p's names already appear followed by o's novel
// names. p's own columns are widened in place: appending new,
// always-zero columns to the right of the existing ones cannot disturb
// the strictly increasing order its terms already have, so the fast
// AppendMonomialBack-style copy below needs no re-sort. o's term order
// generally does change once its columns move to their unified
// positions, so o is rebuilt term-by-term through AppendMonomial
// instead. Both p and o must already carry a non-nil VarMap.
func (p Polynomial[C, R, E]) UnifyVarMap(o Polynomial[C, R, E]) (Polynomial[C, R, E], Polynomial[C, R, E]) {
	if p.VarMap == nil || o.VarMap == nil {
		polyerr.Raise(polyerr.OpVarMapMismatch, "UnifyVarMap: both operands must carry a variable map")
	}
	if p.Ring.Handle() != o.Ring.Handle() {
		polyerr.Raise(polyerr.OpRingMismatch, "operands belong to different rings")
	}

	union := append([]string(nil), p.VarMap...)
	pos := make(map[string]int, len(union)+len(o.VarMap))
	for i, name := range union {
		pos[name] = i
	}
	for _, name := range o.VarMap {
		if _, ok := pos[name]; !ok {
			pos[name] = len(union)
			union = append(union, name)
		}
	}

	widenedP := New[C, R, E](p.Ring, len(union))
	widenedP.VarMap = union
	widenedP.Coeffs = append([]C(nil), p.Coeffs...)
	widenedP.Exps = make([]E, len(p.Coeffs)*len(union))
	for i := 0; i < len(p.Coeffs); i++ {
		copy(widenedP.Exps[i*len(union):i*len(union)+p.NVars], p.row(i))
	}

	widenedO := New[C, R, E](o.Ring, len(union))
	widenedO.VarMap = union
	row := make([]E, len(union))
	for i := 0; i < len(o.Coeffs); i++ {
		oldRow := o.row(i)
		for v, name := range o.VarMap {
			row[pos[name]] = oldRow[v]
		}
		widenedO.AppendMonomial(o.Coeffs[i], row)
		for j := range row {
			row[j] = 0
		}
	}

	return widenedP, widenedO
}

// LCoeffVarOrder returns the leading coefficient under the variable
// priority vars instead of the natural column order: vars lists
// variable indices from highest to lowest priority, and a term "wins"
// over the current candidate when its exponent first strictly exceeds
// the candidate's at some priority position without having been
// strictly less at an earlier one. If vars is already increasing this
// collapses to the ordinary LCoeff.
func (p Polynomial[C, R, E]) LCoeffVarOrder(vars []int) C {
	increasing := true
	for i := 1; i < len(vars); i++ {
		if vars[i-1] >= vars[i] {
			increasing = false
			break
		}
	}
	if increasing {
		return p.LCoeff()
	}

	highest := make([]E, p.NVars)
	var highestC C

nextmon:
	for i := 0; i < len(p.Coeffs); i++ {
		row := p.row(i)
		more := false
		for _, v := range vars {
			if more {
				highest[v] = row[v]
				continue
			}
			switch {
			case row[v] < highest[v]:
				continue nextmon
			case row[v] > highest[v]:
				highest[v] = row[v]
				more = true
			}
		}
		highestC = p.Coeffs[i]
	}
	return highestC
}

// LCoeffLast returns the leading coefficient viewed as a polynomial in
// every variable except n, by walking backward from the leading term
// while every other column (save the very last column position, which
// this scan deliberately leaves unconstrained, matching the caller
// convention that n is ordinarily nvars-1) still agrees with the
// leading monomial.
func (p Polynomial[C, R, E]) LCoeffLast(n int) Polynomial[C, R, E] {
	res := p.NewFrom()
	if p.IsZero() {
		return res
	}
	last := p.LMonomial()
	e := make([]E, p.NVars)
	for t := len(p.Coeffs) - 1; t >= 0; t-- {
		row := p.row(t)
		match := true
		for i := 0; i < p.NVars-1; i++ {
			if row[i] != last[i] && i != n {
				match = false
				break
			}
		}
		if !match {
			break
		}
		e[n] = row[n]
		res.AppendMonomial(p.Coeffs[t], e)
		e[n] = 0
	}
	return res
}

// LCoeffLastVarOrder generalizes LCoeffLast to an explicit variable
// priority vars, treating vars[len(vars)-1] the way LCoeffLast treats
// n and the rest of vars as the priority order used to find the
// leading terms.
func (p Polynomial[C, R, E]) LCoeffLastVarOrder(vars []int) Polynomial[C, R, E] {
	res := p.NewFrom()
	if p.IsZero() {
		return res
	}
	increasing := true
	for i := 1; i < len(vars); i++ {
		if vars[i-1] >= vars[i] {
			increasing = false
			break
		}
	}
	if increasing {
		return p.LCoeffLast(vars[len(vars)-1])
	}

	priority := vars[:len(vars)-1]
	lastVar := vars[len(vars)-1]

	highest := make([]E, p.NVars)
	var indices []int

nextmon:
	for i := 0; i < len(p.Coeffs); i++ {
		row := p.row(i)
		more := false
		for _, v := range priority {
			if more {
				highest[v] = row[v]
				continue
			}
			switch {
			case row[v] < highest[v]:
				continue nextmon
			case row[v] > highest[v]:
				highest[v] = row[v]
				more = true
				indices = indices[:0]
			}
		}
		indices = append(indices, i)
	}

	e := make([]E, p.NVars)
	for _, i := range indices {
		e[lastVar] = p.row(i)[lastVar]
		res.AppendMonomial(p.Coeffs[i], e)
		e[lastVar] = 0
	}
	return res
}

// checkCompatible panics with OpNVarsMismatch or OpRingMismatch unless
// p and o share a variable count and ring handle, the precondition
// every binary operation in this package requires.
func (p Polynomial[C, R, E]) checkCompatible(o Polynomial[C, R, E]) {
	if p.NVars != o.NVars {
		polyerr.Raise(polyerr.OpNVarsMismatch, "%d vs %d variables", p.NVars, o.NVars)
	}
	if p.Ring.Handle() != o.Ring.Handle() {
		polyerr.Raise(polyerr.OpRingMismatch, "operands belong to different rings")
	}
}

// CheckConsistency audits the invariants AppendMonomial/AppendMonomialBack
// are supposed to maintain: Coeffs and Exps agree in length, no stored
// coefficient is zero, and the exponent rows are in strictly increasing
// lexicographic order. It is a debug-time audit, not part of normal
// control flow, and panics with OpInconsistent on the first violation
// found.
func (p Polynomial[C, R, E]) CheckConsistency() {
	if len(p.Exps) != len(p.Coeffs)*p.NVars {
		polyerr.Raise(polyerr.OpInconsistent, "exponent matrix has %d entries, want %d", len(p.Exps), len(p.Coeffs)*p.NVars)
	}
	for i, c := range p.Coeffs {
		if p.Ring.IsZero(c) {
			polyerr.Raise(polyerr.OpInconsistent, "term %d has zero coefficient", i)
		}
		if i > 0 && compareRows(p.row(i-1), p.row(i)) >= 0 {
			polyerr.Raise(polyerr.OpInconsistent, "term %d is not strictly greater than term %d", i, i-1)
		}
	}
}

// String renders p as a sum of monomials c*x{i}^e, following the
// teacher's Format convention of delegating %v and %s to a shared
// textual renderer (see num/quat.Quat.Format).
func (p Polynomial[C, R, E]) String() string {
	if p.IsZero() {
		return "0"
	}
	s := ""
	for i := 0; i < len(p.Coeffs); i++ {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("%v", p.Coeffs[i])
		row := p.row(i)
		for v, e := range row {
			if e == 0 {
				continue
			}
			name := fmt.Sprintf("x%d", v)
			if p.VarMap != nil && v < len(p.VarMap) {
				name = p.VarMap[v]
			}
			if e == 1 {
				s += fmt.Sprintf("*%s", name)
			} else {
				s += fmt.Sprintf("*%s^%d", name, e)
			}
		}
	}
	return s
}

func (p Polynomial[C, R, E]) Format(fs fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(fs, p.String())
	default:
		fmt.Fprintf(fs, "%%!%c(poly.Polynomial)", verb)
	}
}
