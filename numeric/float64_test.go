// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/numeric"
	"github.com/symcore/polycas/numeric/scalar"
)

func TestFloat64FieldAxioms(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		a := numeric.NewSampleUnit[numeric.Float64](rng).Add(numeric.Float64(0.1))
		b := numeric.NewSampleUnit[numeric.Float64](rng).Add(numeric.Float64(0.1))
		c := numeric.NewSampleUnit[numeric.Float64](rng).Add(numeric.Float64(0.1))

		lhs := a.Add(b).Add(c)
		rhs := a.Add(b.Add(c))
		if !scalar.EqualWithinAbsOrRel(float64(lhs), float64(rhs), 1e-9, 1e-9) {
			t.Fatalf("associativity violated: %v != %v", lhs, rhs)
		}

		if !scalar.EqualWithinAbsOrRel(float64(a.Add(b)), float64(b.Add(a)), 1e-12, 1e-12) {
			t.Fatalf("commutativity violated")
		}

		inv := a.Mul(a.Inv())
		if !scalar.EqualWithinAbsOrRel(float64(inv), 1, 1e-9, 1e-9) {
			t.Fatalf("a*a^-1 != 1, got %v", inv)
		}
	}
}

func TestFloat64PowMatchesRepeatedMul(t *testing.T) {
	t.Parallel()
	a := numeric.Float64(1.5)
	got := a.Pow(5)
	want := a.Mul(a).Mul(a).Mul(a).Mul(a)
	if !scalar.EqualWithinAbsOrRel(float64(got), float64(want), 1e-9, 1e-9) {
		t.Fatalf("Pow(5) = %v, want %v", got, want)
	}
}

func TestFloat64PowOverflowPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for exponent exceeding int32 range")
		}
	}()
	numeric.Float64(2).Pow(1 << 40)
}
