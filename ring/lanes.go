// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "github.com/symcore/polycas/numeric"

type handleVec2 struct{}
type handleVec4 struct{}

// Vec2Ring and Vec4Ring are the Field coefficient contexts for the
// SIMD-packed lane domains, used to back polynomials whose coefficients
// are processed two or four at a time.
type Vec2Ring struct{}
type Vec4Ring struct{}

func (Vec2Ring) Zero() numeric.Vec2 { return numeric.Vec2{} }
func (Vec2Ring) One() numeric.Vec2  { return numeric.Vec2{1, 1} }
func (Vec2Ring) Add(a, b numeric.Vec2) numeric.Vec2 { return a.Add(b) }
func (Vec2Ring) Sub(a, b numeric.Vec2) numeric.Vec2 { return a.Sub(b) }
func (Vec2Ring) Neg(a numeric.Vec2) numeric.Vec2    { return a.Neg() }
func (Vec2Ring) Mul(a, b numeric.Vec2) numeric.Vec2 { return a.Mul(b) }
func (Vec2Ring) IsZero(a numeric.Vec2) bool         { return a.IsZero() }
func (Vec2Ring) IsOne(a numeric.Vec2) bool          { return a.IsOne() }
func (Vec2Ring) Equal(a, b numeric.Vec2) bool       { return a == b }
func (Vec2Ring) Handle() any                        { return handleVec2{} }
func (Vec2Ring) QuoRem(a, b numeric.Vec2) (numeric.Vec2, numeric.Vec2) {
	return a.Div(b), numeric.Vec2{}
}
func (Vec2Ring) IsUnit(a numeric.Vec2) bool       { return !a.IsZero() }
func (Vec2Ring) Inv(a numeric.Vec2) numeric.Vec2  { return a.Inv() }
func (Vec2Ring) Div(a, b numeric.Vec2) numeric.Vec2 { return a.Div(b) }

// GCD is the trivial field GCD: every nonzero element is a unit.
func (r Vec2Ring) GCD(a, b numeric.Vec2) numeric.Vec2 {
	if a.IsZero() && b.IsZero() {
		return r.Zero()
	}
	return r.One()
}

func (Vec4Ring) Zero() numeric.Vec4 { return numeric.Vec4{} }
func (Vec4Ring) One() numeric.Vec4  { return numeric.Vec4{1, 1, 1, 1} }
func (Vec4Ring) Add(a, b numeric.Vec4) numeric.Vec4 { return a.Add(b) }
func (Vec4Ring) Sub(a, b numeric.Vec4) numeric.Vec4 { return a.Sub(b) }
func (Vec4Ring) Neg(a numeric.Vec4) numeric.Vec4    { return a.Neg() }
func (Vec4Ring) Mul(a, b numeric.Vec4) numeric.Vec4 { return a.Mul(b) }
func (Vec4Ring) IsZero(a numeric.Vec4) bool         { return a.IsZero() }
func (Vec4Ring) IsOne(a numeric.Vec4) bool          { return a.IsOne() }
func (Vec4Ring) Equal(a, b numeric.Vec4) bool       { return a == b }
func (Vec4Ring) Handle() any                        { return handleVec4{} }
func (Vec4Ring) QuoRem(a, b numeric.Vec4) (numeric.Vec4, numeric.Vec4) {
	return a.Div(b), numeric.Vec4{}
}
func (Vec4Ring) IsUnit(a numeric.Vec4) bool       { return !a.IsZero() }
func (Vec4Ring) Inv(a numeric.Vec4) numeric.Vec4  { return a.Inv() }
func (Vec4Ring) Div(a, b numeric.Vec4) numeric.Vec4 { return a.Div(b) }

// GCD is the trivial field GCD: every nonzero element is a unit.
func (r Vec4Ring) GCD(a, b numeric.Vec4) numeric.Vec4 {
	if a.IsZero() && b.IsZero() {
		return r.Zero()
	}
	return r.One()
}

var (
	_ Field[numeric.Vec2] = Vec2Ring{}
	_ Field[numeric.Vec4] = Vec4Ring{}
)
