// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "github.com/symcore/polycas/numeric"

type handleRationals struct{}

// Rationals is the Field[numeric.Rational] coefficient context: exact
// arithmetic over the rationals, used when rounding error cannot be
// tolerated (GCD computations, canonical-form comparisons in tests).
type Rationals struct{}

func (Rationals) Zero() numeric.Rational { return numeric.Rational{}.NewZero() }
func (Rationals) One() numeric.Rational  { return numeric.Rational{}.NewOne() }
func (Rationals) Add(a, b numeric.Rational) numeric.Rational { return a.Add(b) }
func (Rationals) Sub(a, b numeric.Rational) numeric.Rational { return a.Sub(b) }
func (Rationals) Neg(a numeric.Rational) numeric.Rational    { return a.Neg() }
func (Rationals) Mul(a, b numeric.Rational) numeric.Rational { return a.Mul(b) }
func (Rationals) IsZero(a numeric.Rational) bool             { return a.IsZero() }
func (Rationals) IsOne(a numeric.Rational) bool              { return a.IsOne() }
func (Rationals) Equal(a, b numeric.Rational) bool           { return a.Cmp(b) == 0 }
func (Rationals) Handle() any                                { return handleRationals{} }

func (Rationals) QuoRem(a, b numeric.Rational) (numeric.Rational, numeric.Rational) {
	return a.Div(b), numeric.Rational{}.NewZero()
}
func (Rationals) IsUnit(a numeric.Rational) bool           { return !a.IsZero() }
func (Rationals) Inv(a numeric.Rational) numeric.Rational  { return a.Inv() }
func (Rationals) Div(a, b numeric.Rational) numeric.Rational { return a.Div(b) }

// GCD is the trivial field GCD: every nonzero element is a unit.
func (r Rationals) GCD(a, b numeric.Rational) numeric.Rational {
	if a.IsZero() && b.IsZero() {
		return r.Zero()
	}
	return r.One()
}

var (
	_ Ring[numeric.Rational]            = Rationals{}
	_ EuclideanDomain[numeric.Rational] = Rationals{}
	_ Field[numeric.Rational]           = Rationals{}
)
