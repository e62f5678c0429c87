// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "github.com/symcore/polycas/numeric"

type handleReals struct{}

// Reals is the Field[numeric.Float64] coefficient context: ordinary
// machine-precision arithmetic. Every Reals value is interchangeable
// with every other, so Handle is a fixed empty-struct singleton.
type Reals struct{}

func (Reals) Zero() numeric.Float64 { return 0 }
func (Reals) One() numeric.Float64  { return 1 }
func (Reals) Add(a, b numeric.Float64) numeric.Float64 { return a.Add(b) }
func (Reals) Sub(a, b numeric.Float64) numeric.Float64 { return a.Sub(b) }
func (Reals) Neg(a numeric.Float64) numeric.Float64    { return a.Neg() }
func (Reals) Mul(a, b numeric.Float64) numeric.Float64 { return a.Mul(b) }
func (Reals) IsZero(a numeric.Float64) bool            { return a.IsZero() }
func (Reals) IsOne(a numeric.Float64) bool             { return a.IsOne() }
func (Reals) Equal(a, b numeric.Float64) bool          { return a == b }
func (Reals) Handle() any                              { return handleReals{} }

func (Reals) QuoRem(a, b numeric.Float64) (numeric.Float64, numeric.Float64) {
	return a.Div(b), 0
}
func (Reals) IsUnit(a numeric.Float64) bool { return !a.IsZero() }
func (Reals) Inv(a numeric.Float64) numeric.Float64 { return a.Inv() }
func (Reals) Div(a, b numeric.Float64) numeric.Float64 { return a.Div(b) }

// GCD is the trivial field GCD: every nonzero element is a unit, so the
// only information worth reporting is whether both operands vanish.
func (r Reals) GCD(a, b numeric.Float64) numeric.Float64 {
	if a.IsZero() && b.IsZero() {
		return r.Zero()
	}
	return r.One()
}

var (
	_ Ring[numeric.Float64]            = Reals{}
	_ EuclideanDomain[numeric.Float64] = Reals{}
	_ Field[numeric.Float64]           = Reals{}
)
