// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "github.com/symcore/polycas/numeric"

type handleBigReal struct{ prec uint }

// MultiPrecisionReals is the Field[numeric.BigFloat] coefficient context
// at a fixed precision. Two MultiPrecisionReals values at different
// precisions report different handles, so mixing a 64-bit-precision
// polynomial with a 256-bit-precision one panics with OpRingMismatch
// instead of silently rounding.
type MultiPrecisionReals struct {
	Prec uint
}

func (r MultiPrecisionReals) Zero() numeric.BigFloat { return numeric.NewBigFloat(r.Prec) }
func (r MultiPrecisionReals) One() numeric.BigFloat {
	return numeric.NewBigFloatFromFloat64(r.Prec, 1)
}
func (MultiPrecisionReals) Add(a, b numeric.BigFloat) numeric.BigFloat { return a.Add(b) }
func (MultiPrecisionReals) Sub(a, b numeric.BigFloat) numeric.BigFloat { return a.Sub(b) }
func (MultiPrecisionReals) Neg(a numeric.BigFloat) numeric.BigFloat    { return a.Neg() }
func (MultiPrecisionReals) Mul(a, b numeric.BigFloat) numeric.BigFloat { return a.Mul(b) }
func (MultiPrecisionReals) IsZero(a numeric.BigFloat) bool             { return a.IsZero() }
func (MultiPrecisionReals) IsOne(a numeric.BigFloat) bool              { return a.IsOne() }
func (MultiPrecisionReals) Equal(a, b numeric.BigFloat) bool {
	return a.ToFloat64() == b.ToFloat64()
}
func (r MultiPrecisionReals) Handle() any { return handleBigReal{prec: r.Prec} }

func (MultiPrecisionReals) QuoRem(a, b numeric.BigFloat) (numeric.BigFloat, numeric.BigFloat) {
	return a.Div(b), a.Zero()
}
func (MultiPrecisionReals) IsUnit(a numeric.BigFloat) bool { return !a.IsZero() }
func (MultiPrecisionReals) Inv(a numeric.BigFloat) numeric.BigFloat { return a.Inv() }
func (MultiPrecisionReals) Div(a, b numeric.BigFloat) numeric.BigFloat { return a.Div(b) }

// GCD is the trivial field GCD: every nonzero element is a unit.
func (r MultiPrecisionReals) GCD(a, b numeric.BigFloat) numeric.BigFloat {
	if a.IsZero() && b.IsZero() {
		return r.Zero()
	}
	return r.One()
}

var (
	_ Ring[numeric.BigFloat]            = MultiPrecisionReals{}
	_ EuclideanDomain[numeric.BigFloat] = MultiPrecisionReals{}
	_ Field[numeric.BigFloat]           = MultiPrecisionReals{}
)
