// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/symcore/polycas/numeric"
)

func TestReplaceEvaluatesVariable(t *testing.T) {
	t.Parallel()
	// p = x^2*y + 3*y, replace x with 2: 4*y + 3*y = 7*y.
	p := build(2, term(1, 2, 1), term(3, 0, 1))
	got := p.Replace(0, numeric.Float64(2))
	want := build(1, term(7, 1))
	if !polyEqual(t, got, want) {
		t.Fatalf("Replace(x=2) = %v, want %v", got, want)
	}
}

func TestToUnivariatePolynomialListGroupsByPower(t *testing.T) {
	t.Parallel()
	// p = x^2*y + x^2*2 + x*3 = x^2*(y+2) + x*3
	p := build(2, term(1, 2, 1), term(2, 2, 0), term(3, 1, 0))
	groups := p.ToUnivariatePolynomialList(0)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Power != 1 || groups[1].Power != 2 {
		t.Fatalf("unexpected powers: %v, %v", groups[0].Power, groups[1].Power)
	}
}

func TestRearrangePreservesValue(t *testing.T) {
	t.Parallel()
	p := build(2, term(2, 1, 0), term(3, 0, 2))
	swapped := p.Rearrange([]int{1, 0})
	back := swapped.Rearrange([]int{1, 0})
	if !polyEqual(t, p, back) {
		t.Fatalf("double swap should be identity, got %v from %v", back, p)
	}
}

func TestRearrangePermutesVarMap(t *testing.T) {
	t.Parallel()
	p := build(2, term(2, 1, 0), term(3, 0, 2))
	p.VarMap = []string{"x", "y"}
	swapped := p.Rearrange([]int{1, 0})
	if diff := cmp.Diff([]string{"y", "x"}, swapped.VarMap); diff != "" {
		t.Fatalf("VarMap permutation mismatch (-want +got):\n%s", diff)
	}
}
