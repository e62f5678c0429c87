// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import (
	"github.com/symcore/polycas/numeric"
	"github.com/symcore/polycas/numeric/cmplx"
)

type handleComplex struct{ inner any }

// Complexes is the Field[cmplx.Complex[T]] coefficient context built
// over any real scalar domain T that already has its own Ring (Reals,
// MultiPrecisionReals, ...). Wrapping an existing Ring rather than
// duplicating its precision/modulus bookkeeping keeps the compatibility
// check (Handle) correct for free: two Complexes values are compatible
// exactly when their Inner rings are.
type Complexes[T numeric.Real[T]] struct {
	Inner Ring[T]
}

func (c Complexes[T]) zero() cmplx.Complex[T] {
	return cmplx.New(c.Inner.Zero(), c.Inner.Zero())
}

func (c Complexes[T]) Zero() cmplx.Complex[T] { return c.zero() }
func (c Complexes[T]) One() cmplx.Complex[T] {
	return cmplx.New(c.Inner.One(), c.Inner.Zero())
}
func (c Complexes[T]) Add(a, b cmplx.Complex[T]) cmplx.Complex[T] { return a.Add(b) }
func (c Complexes[T]) Sub(a, b cmplx.Complex[T]) cmplx.Complex[T] { return a.Sub(b) }
func (c Complexes[T]) Neg(a cmplx.Complex[T]) cmplx.Complex[T]    { return a.Neg() }
func (c Complexes[T]) Mul(a, b cmplx.Complex[T]) cmplx.Complex[T] { return a.Mul(b) }
func (c Complexes[T]) IsZero(a cmplx.Complex[T]) bool {
	return c.Inner.IsZero(a.Re) && c.Inner.IsZero(a.Im)
}
func (c Complexes[T]) IsOne(a cmplx.Complex[T]) bool {
	return c.Inner.IsOne(a.Re) && c.Inner.IsZero(a.Im)
}
func (c Complexes[T]) Equal(a, b cmplx.Complex[T]) bool {
	return c.Inner.Equal(a.Re, b.Re) && c.Inner.Equal(a.Im, b.Im)
}
func (c Complexes[T]) Handle() any { return handleComplex{inner: c.Inner.Handle()} }

func (c Complexes[T]) QuoRem(a, b cmplx.Complex[T]) (cmplx.Complex[T], cmplx.Complex[T]) {
	return a.Div(b), c.zero()
}
func (c Complexes[T]) IsUnit(a cmplx.Complex[T]) bool { return !c.IsZero(a) }
func (c Complexes[T]) Inv(a cmplx.Complex[T]) cmplx.Complex[T]    { return a.Inv() }
func (c Complexes[T]) Div(a, b cmplx.Complex[T]) cmplx.Complex[T] { return a.Div(b) }

// GCD is the trivial field GCD: every nonzero element is a unit.
func (c Complexes[T]) GCD(a, b cmplx.Complex[T]) cmplx.Complex[T] {
	if c.IsZero(a) && c.IsZero(b) {
		return c.zero()
	}
	return c.One()
}

var (
	_ Ring[cmplx.Complex[numeric.Float64]]            = Complexes[numeric.Float64]{}
	_ EuclideanDomain[cmplx.Complex[numeric.Float64]] = Complexes[numeric.Float64]{}
	_ Field[cmplx.Complex[numeric.Float64]]           = Complexes[numeric.Float64]{}
)
