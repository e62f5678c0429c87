// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx_test

import (
	"testing"

	"github.com/symcore/polycas/numeric"
	"github.com/symcore/polycas/numeric/cmplx"
	"github.com/symcore/polycas/numeric/scalar"
)

func approxEqual(t *testing.T, a, b cmplx.Complex[numeric.Float64]) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(float64(a.Re), float64(b.Re), 1e-9, 1e-9) ||
		!scalar.EqualWithinAbsOrRel(float64(a.Im), float64(b.Im), 1e-9, 1e-9) {
		t.Fatalf("got %v, want %v", a, b)
	}
}

func TestExpLogRoundTrips(t *testing.T) {
	t.Parallel()
	z := cmplx.New[numeric.Float64](1.3, -0.7)
	got := z.Log().Exp()
	approxEqual(t, got, z)
}

func TestMulDivRoundTrips(t *testing.T) {
	t.Parallel()
	a := cmplx.New[numeric.Float64](2, 3)
	b := cmplx.New[numeric.Float64](-1, 4)
	got := a.Mul(b).Div(b)
	approxEqual(t, got, a)
}

func TestSinSquaredPlusCosSquaredIsOne(t *testing.T) {
	t.Parallel()
	z := cmplx.New[numeric.Float64](0.4, 0.9)
	s := z.Sin()
	c := z.Cos()
	sum := s.Mul(s).Add(c.Mul(c))
	approxEqual(t, sum, cmplx.New[numeric.Float64](1, 0))
}

func TestSqrtSquaredRoundTrips(t *testing.T) {
	t.Parallel()
	z := cmplx.New[numeric.Float64](5, -2)
	got := z.Sqrt().Pow(2)
	approxEqual(t, got, z)
}

func TestAsinSinRoundTrips(t *testing.T) {
	t.Parallel()
	z := cmplx.New[numeric.Float64](0.2, 0.1)
	got := z.Sin().Asin()
	approxEqual(t, got, z)
}
