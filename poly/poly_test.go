// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"testing"

	"github.com/symcore/polycas/numeric"
	"github.com/symcore/polycas/numeric/scalar"
	"github.com/symcore/polycas/poly"
	"github.com/symcore/polycas/ring"
)

type P = poly.Polynomial[numeric.Float64, ring.Reals, uint32]

// build constructs a polynomial in nvars variables from a list of terms.
func build(nvars int, terms ...struct {
	c    numeric.Float64
	exps []uint32
}) P {
	p := poly.New[numeric.Float64, ring.Reals, uint32](ring.Reals{}, nvars)
	for _, term := range terms {
		p.AppendMonomial(term.c, term.exps)
	}
	return p
}

func term(c float64, exps ...uint32) struct {
	c    numeric.Float64
	exps []uint32
} {
	return struct {
		c    numeric.Float64
		exps []uint32
	}{numeric.Float64(c), exps}
}

func TestAddCommutesAndAssociates(t *testing.T) {
	t.Parallel()
	a := build(2, term(2, 1, 0), term(3, 0, 2))
	b := build(2, term(-1, 1, 0), term(5, 2, 1))
	c := build(2, term(4, 0, 0), term(1, 1, 1))

	if !polyEqual(t, a.Add(b), b.Add(a)) {
		t.Fatal("addition is not commutative")
	}
	if !polyEqual(t, a.Add(b).Add(c), a.Add(b.Add(c))) {
		t.Fatal("addition is not associative")
	}
}

func TestAddCancelsToZero(t *testing.T) {
	t.Parallel()
	a := build(2, term(2, 1, 0), term(3, 0, 2))
	zero := a.Add(a.Neg())
	if !zero.IsZero() {
		t.Fatalf("p + (-p) should be zero, got %v", zero)
	}
}

func TestHeapMulMatchesDistributiveExpansion(t *testing.T) {
	t.Parallel()
	// (x + y) * (x - y) == x^2 - y^2
	a := build(2, term(1, 1, 0), term(1, 0, 1))
	b := build(2, term(1, 1, 0), term(-1, 0, 1))
	got := a.HeapMul(b)
	want := build(2, term(1, 2, 0), term(-1, 0, 2))
	if !polyEqual(t, got, want) {
		t.Fatalf("(x+y)(x-y) = %v, want %v", got, want)
	}
}

func TestHeapMulDistributesOverAdd(t *testing.T) {
	t.Parallel()
	a := build(2, term(2, 1, 0), term(1, 0, 1))
	b := build(2, term(1, 0, 0))
	c := build(2, term(-3, 1, 1))

	lhs := a.HeapMul(b.Add(c))
	rhs := a.HeapMul(b).Add(a.HeapMul(c))
	if !polyEqual(t, lhs, rhs) {
		t.Fatalf("multiplication does not distribute over addition: %v != %v", lhs, rhs)
	}
}

func TestQuotRemRoundTrips(t *testing.T) {
	t.Parallel()
	// p = x^3 + x^2 + x + 1, divide by (x + 1): exact, remainder 0.
	p := build(1, term(1, 3), term(1, 2), term(1, 1), term(1, 0))
	divisor := build(1, term(1, 1), term(1, 0))

	q, r := poly.QuotRem(p, divisor)
	recon := q.HeapMul(divisor).Add(r)
	if !polyEqual(t, recon, p) {
		t.Fatalf("q*divisor+r = %v, want %v", recon, p)
	}
}

func TestQuotRemWithNonzeroRemainder(t *testing.T) {
	t.Parallel()
	// p = x^2 + 1, divide by x: quotient x, remainder 1.
	p := build(1, term(1, 2), term(1, 0))
	divisor := build(1, term(1, 1))

	q, r := poly.QuotRem(p, divisor)
	recon := q.HeapMul(divisor).Add(r)
	if !polyEqual(t, recon, p) {
		t.Fatalf("q*divisor+r = %v, want %v", recon, p)
	}
	if r.NTerms() != 1 {
		t.Fatalf("expected a single-term remainder, got %d terms", r.NTerms())
	}
}

func TestDivideByZeroPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dividing by the zero polynomial")
		}
	}()
	p := build(1, term(1, 1))
	zero := poly.New[numeric.Float64, ring.Reals, uint32](ring.Reals{}, 1)
	poly.QuotRem(p, zero)
}

func TestCheckConsistency(t *testing.T) {
	t.Parallel()
	p := build(2, term(1, 1, 0), term(2, 0, 1))
	p.CheckConsistency() // must not panic
}

func TestNVarsMismatchPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic mismatching nvars")
		}
	}()
	a := build(2, term(1, 1, 0))
	b := build(3, term(1, 1, 0, 0))
	a.Add(b)
}

func polyEqual(t *testing.T, a, b P) bool {
	t.Helper()
	diff := a.Sub(b)
	for _, c := range diff.Coeffs {
		if !scalar.EqualWithinAbsOrRel(float64(c), 0, 1e-9, 1e-9) {
			return false
		}
	}
	return true
}
