// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"testing"

	"github.com/symcore/polycas/field"
	"github.com/symcore/polycas/numeric"
	"github.com/symcore/polycas/poly"
	"github.com/symcore/polycas/ring"
)

type GF7 = poly.Polynomial[uint64, field.FiniteField, uint32]

func buildGF7(nvars int, terms ...struct {
	c    uint64
	exps []uint32
}) GF7 {
	f := field.NewFiniteField(7)
	p := poly.New[uint64, field.FiniteField, uint32](f, nvars)
	for _, term := range terms {
		p.AppendMonomial(term.c, term.exps)
	}
	return p
}

func gf7term(c uint64, exps ...uint32) struct {
	c    uint64
	exps []uint32
} {
	return struct {
		c    uint64
		exps []uint32
	}{c, exps}
}

func gf7Equal(t *testing.T, a, b GF7) bool {
	t.Helper()
	diff := a.Sub(b)
	return diff.IsZero()
}

// TestSyntheticDivisionOverFiniteField checks the spec's worked
// example: (x^2 + 3x + 2) / (x + 1) mod 7 = x + 2, remainder 0.
func TestSyntheticDivisionOverFiniteField(t *testing.T) {
	t.Parallel()
	p := buildGF7(1, gf7term(1, 2), gf7term(3, 1), gf7term(2, 0))
	divisor := buildGF7(1, gf7term(1, 1), gf7term(1, 0))

	q, r := poly.SyntheticDivision(p, divisor)
	want := buildGF7(1, gf7term(1, 1), gf7term(2, 0))
	if !gf7Equal(t, q, want) {
		t.Fatalf("quotient = %v, want %v", q, want)
	}
	if !r.IsZero() {
		t.Fatalf("expected zero remainder, got %v", r)
	}
}

// TestFastSyntheticDivisionMatchesSyntheticDivision checks the
// FiniteField-specialized fast path against a non-monic divisor,
// reusing the same worked example scaled by 2: (2x^2 + 6x + 4) /
// (2x + 2) mod 7 must still equal x + 2 with a zero remainder.
func TestFastSyntheticDivisionMatchesSyntheticDivision(t *testing.T) {
	t.Parallel()
	p := buildGF7(1, gf7term(2, 2), gf7term(6, 1), gf7term(4, 0))
	divisor := buildGF7(1, gf7term(2, 1), gf7term(2, 0))

	q, r := poly.FastSyntheticDivision(p, divisor)
	want := buildGF7(1, gf7term(1, 1), gf7term(2, 0))
	if !gf7Equal(t, q, want) {
		t.Fatalf("quotient = %v, want %v", q, want)
	}
	if !r.IsZero() {
		t.Fatalf("expected zero remainder, got %v", r)
	}
}

// TestHeapDivisionMatchesSyntheticDivision exercises HeapDivision and
// SyntheticDivision against the same non-trivial dividend/divisor pair
// and checks they agree, since both are expected to compute the same
// quotient and remainder via entirely different internal bookkeeping.
func TestHeapDivisionMatchesSyntheticDivision(t *testing.T) {
	t.Parallel()
	p := buildGF7(1, gf7term(1, 3), gf7term(1, 2), gf7term(1, 1), gf7term(1, 0))
	divisor := buildGF7(1, gf7term(1, 1), gf7term(1, 0))

	sq, sr := poly.SyntheticDivision(p, divisor)
	hq, hr := poly.HeapDivision(p, divisor)
	if !gf7Equal(t, sq, hq) {
		t.Fatalf("HeapDivision quotient %v != SyntheticDivision quotient %v", hq, sq)
	}
	if !gf7Equal(t, sr, hr) {
		t.Fatalf("HeapDivision remainder %v != SyntheticDivision remainder %v", hr, sr)
	}
}

// TestQuotRemOverIntegersFailsGracefully checks that dividing x by the
// constant 2 over the non-Field EuclideanDomain ring.Integers cannot
// divide cleanly and reports the graceful-failure contract: an empty
// quotient and the original dividend as remainder.
func TestQuotRemOverIntegersFailsGracefully(t *testing.T) {
	t.Parallel()
	p := poly.New[int64, ring.Integers, uint32](ring.Integers{}, 1)
	p.AppendMonomial(1, []uint32{1})
	divisor := poly.New[int64, ring.Integers, uint32](ring.Integers{}, 1)
	divisor.AppendMonomial(2, []uint32{0})

	q, r := poly.QuotRem[int64, ring.Integers, uint32](p, divisor)
	if !q.IsZero() {
		t.Fatalf("expected empty quotient on clean-division failure, got %v", q)
	}
	if r.NTerms() != 1 || r.Coeffs[0] != 1 {
		t.Fatalf("expected the original dividend back as remainder, got %v", r)
	}
}

// TestQuotRemOverRationalsDividesCleanly checks that the same division
// x/2 that fails over ring.Integers above succeeds cleanly over
// ring.Rationals, the field extension a caller is expected to retry
// over on a ring.Integers failure.
func TestQuotRemOverRationalsDividesCleanly(t *testing.T) {
	t.Parallel()
	rs := ring.Rationals{}
	half := numeric.Rational{}.FromUint(1).Div(numeric.Rational{}.FromUint(2))

	p := poly.New[numeric.Rational, ring.Rationals, uint32](rs, 1)
	p.AppendMonomial(rs.One(), []uint32{1})
	divisor := poly.New[numeric.Rational, ring.Rationals, uint32](rs, 1)
	divisor.AppendMonomial(numeric.Rational{}.FromUint(2), []uint32{0})

	q, r := poly.QuotRem(p, divisor)
	if !r.IsZero() {
		t.Fatalf("expected zero remainder, got %v", r)
	}
	if q.NTerms() != 1 || !rs.Equal(q.Coeffs[0], half) {
		t.Fatalf("expected quotient (1/2)x, got %v", q)
	}
}

// TestContentOverIntegersFoldsGCD checks Content over ring.Integers
// reduces 6x^2 + 9x + 15 to its coefficient GCD, 3.
func TestContentOverIntegersFoldsGCD(t *testing.T) {
	t.Parallel()
	p := poly.New[int64, ring.Integers, uint32](ring.Integers{}, 1)
	p.AppendMonomial(6, []uint32{2})
	p.AppendMonomial(9, []uint32{1})
	p.AppendMonomial(15, []uint32{0})

	if got := poly.Content[int64, ring.Integers, uint32](p); got != 3 {
		t.Fatalf("Content = %d, want 3", got)
	}
}

// TestUnifyVarMapMergesVariables checks the spec's union scenario:
// a = 2x + y over {x,y}, b = y + 3z over {y,z}; unifying and adding
// must produce 2x + 2y + 3z over {x,y,z}.
func TestUnifyVarMapMergesVariables(t *testing.T) {
	t.Parallel()
	a := poly.New[numeric.Float64, ring.Reals, uint32](ring.Reals{}, 2)
	a.VarMap = []string{"x", "y"}
	a.AppendMonomial(2, []uint32{1, 0})
	a.AppendMonomial(1, []uint32{0, 1})

	b := poly.New[numeric.Float64, ring.Reals, uint32](ring.Reals{}, 2)
	b.VarMap = []string{"y", "z"}
	b.AppendMonomial(1, []uint32{1, 0})
	b.AppendMonomial(3, []uint32{0, 1})

	ua, ub := a.UnifyVarMap(b)
	if got := []string{"x", "y", "z"}; !equalStrings(ua.VarMap, got) {
		t.Fatalf("unified VarMap = %v, want %v", ua.VarMap, got)
	}
	sum := ua.Add(ub)

	want := poly.New[numeric.Float64, ring.Reals, uint32](ring.Reals{}, 3)
	want.VarMap = []string{"x", "y", "z"}
	want.AppendMonomial(2, []uint32{1, 0, 0})
	want.AppendMonomial(2, []uint32{0, 1, 0})
	want.AppendMonomial(3, []uint32{0, 0, 1})

	diff := sum.Sub(want)
	for _, c := range diff.Coeffs {
		if float64(c) != 0 {
			t.Fatalf("a.UnifyVarMap(b) summed = %v, want %v", sum, want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
