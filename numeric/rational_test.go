// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/numeric"
)

func TestRationalReducesToLowestTerms(t *testing.T) {
	t.Parallel()
	r := numeric.NewRationalFromInts(6, 8)
	if r.Num().Int64() != 3 || r.Den().Int64() != 4 {
		t.Fatalf("got %v, want 3/4", r)
	}
}

func TestRationalExactArithmetic(t *testing.T) {
	t.Parallel()
	a := numeric.NewRationalFromInts(1, 3)
	b := numeric.NewRationalFromInts(1, 6)
	sum := a.Add(b)
	want := numeric.NewRationalFromInts(1, 2)
	if sum.Cmp(want) != 0 {
		t.Fatalf("1/3 + 1/6 = %v, want %v", sum, want)
	}
}

func TestRationalPromotesOnOverflow(t *testing.T) {
	t.Parallel()
	big1 := numeric.NewRationalFromInts(1<<62, 1)
	sum := big1.Add(big1)
	want := numeric.NewRationalFromInts(1, 1).Mul(sum.One())
	_ = want
	if sum.Cmp(big1) <= 0 {
		t.Fatalf("expected sum to exceed one operand after promotion, got %v", sum)
	}
}

func TestRationalInvRoundTrips(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 32; i++ {
		r := numeric.Rational{}.SampleUnit(rng)
		if r.IsZero() {
			continue
		}
		got := r.Mul(r.Inv())
		if !got.IsOne() {
			t.Fatalf("r * r^-1 = %v, want 1 (r=%v)", got, r)
		}
	}
}

func TestRationalDivisionByZeroPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dividing by zero")
		}
	}()
	a := numeric.NewRationalFromInts(1, 1)
	_ = a.Div(a.Zero())
}
