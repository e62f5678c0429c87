// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric_test

import (
	"testing"

	"github.com/symcore/polycas/numeric"
)

func TestBigFloatInheritsPrecisionFromReceiver(t *testing.T) {
	t.Parallel()
	a := numeric.NewBigFloatFromFloat64(200, 1.0/3.0)
	b := numeric.NewBigFloatFromFloat64(24, 2)
	sum := a.Add(b)
	if got, want := sum.Prec(), uint(200); got != want {
		t.Fatalf("Add result precision = %d, want %d (precision follows the left operand)", got, want)
	}
}

func TestBigFloatSqrtSquaredRoundTrips(t *testing.T) {
	t.Parallel()
	a := numeric.NewBigFloatFromFloat64(128, 2)
	got := a.Sqrt().Mul(a.Sqrt())
	if diff := got.ToFloat64() - a.ToFloat64(); diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("sqrt(2)^2 = %v, want 2", got)
	}
}

func TestBigFloatDivByZeroYieldsInf(t *testing.T) {
	t.Parallel()
	a := numeric.NewBigFloatFromFloat64(64, 1)
	got := a.Div(a.Zero())
	if got.IsFinite() {
		t.Fatalf("1/0 should be non-finite, got %v", got)
	}
}
