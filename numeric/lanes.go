// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/polyerr"
)

// Vec2 and Vec4 are lanewise float64 packs standing in for the teacher's
// SIMD-width coefficient domains. No stable, non-experimental SIMD
// library surfaced in the retrieved corpus (the one candidate gates
// its API behind goexperiment.simd and is not an ordinarily importable
// dependency; see DESIGN.md), so lanes are plain fixed-size arrays
// operated on with explicit per-lane loops, following the fallback loop
// shape gonum's asm/f64 stub package uses when no assembly kernel is
// available for a platform.
type Vec2 [2]float64
type Vec4 [4]float64

func (v Vec2) Neg() Vec2 { return Vec2{-v[0], -v[1]} }
func (v Vec2) Add(o Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}
func (v Vec2) Sub(o Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}
func (v Vec2) Mul(o Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}
func (v Vec2) Div(o Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}
func (v Vec2) FMA(a, b Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = math.FMA(v[i], a[i], b[i])
	}
	return r
}
func (v Vec2) Pow(e uint64) Vec2 {
	r := v.One()
	base := v
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return r
}
func (v Vec2) Inv() Vec2 {
	var r Vec2
	for i := range v {
		r[i] = 1 / v[i]
	}
	return r
}
func (v Vec2) Norm() Vec2 {
	var r Vec2
	for i := range v {
		r[i] = math.Abs(v[i])
	}
	return r
}
func (v Vec2) Zero() Vec2                        { return Vec2{} }
func (v Vec2) One() Vec2                          { return Vec2{1, 1} }
func (v Vec2) FromUint(a uint64) Vec2             { return Vec2{float64(a), float64(a)} }
func (v Vec2) FromInt(a int64) Vec2               { return Vec2{float64(a), float64(a)} }
func (v Vec2) SampleUnit(rng *rand.Rand) Vec2     { return Vec2{rng.Float64(), rng.Float64()} }

func (Vec2) NewZero() Vec2                    { return Vec2{} }
func (Vec2) NewOne() Vec2                     { return Vec2{1, 1} }
func (Vec2) NewFromUint(a uint64) Vec2        { return Vec2{float64(a), float64(a)} }
func (Vec2) NewFromInt(a int64) Vec2          { return Vec2{float64(a), float64(a)} }
func (Vec2) NewSampleUnit(rng *rand.Rand) Vec2 { return Vec2{rng.Float64(), rng.Float64()} }

// Sqrt, Log, Exp, the circular trig functions, and Powf apply lanewise;
// the hyperbolic functions are not meaningfully vectorizable in this
// representation and panic descriptively instead of returning a
// silently wrong per-lane result (spec-mandated: a SIMD lane domain
// must refuse hyperbolics rather than approximate them).
func (v Vec2) Sqrt() Vec2 { return v.lanewise(math.Sqrt) }
func (v Vec2) Log() Vec2  { return v.lanewise(math.Log) }
func (v Vec2) Exp() Vec2  { return v.lanewise(math.Exp) }
func (v Vec2) Sin() Vec2  { return v.lanewise(math.Sin) }
func (v Vec2) Cos() Vec2  { return v.lanewise(math.Cos) }
func (v Vec2) Tan() Vec2  { return v.lanewise(math.Tan) }
func (v Vec2) Asin() Vec2 { return v.lanewise(math.Asin) }
func (v Vec2) Acos() Vec2 { return v.lanewise(math.Acos) }
func (v Vec2) Atan2(x Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = math.Atan2(v[i], x[i])
	}
	return r
}
func (v Vec2) Sinh() Vec2 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec2.Sinh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec2) Cosh() Vec2 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec2.Cosh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec2) Tanh() Vec2 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec2.Tanh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec2) Asinh() Vec2 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec2.Asinh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec2) Acosh() Vec2 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec2.Acosh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec2) Atanh() Vec2 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec2.Atanh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec2) Powf(e Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = math.Pow(v[i], e[i])
	}
	return r
}

func (v Vec2) lanewise(fn func(float64) float64) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = fn(v[i])
	}
	return r
}

func (v Vec2) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
func (v Vec2) IsOne() bool {
	for _, x := range v {
		if x != 1 {
			return false
		}
	}
	return true
}
func (v Vec2) IsFinite() bool {
	for _, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}
func (v Vec2) Max(o Vec2) Vec2 {
	var r Vec2
	for i := range v {
		r[i] = math.Max(v[i], o[i])
	}
	return r
}

// ToFloat64 and ToUintClamped project lane 0, following the teacher's
// convention of treating lane 0 as the representative scalar for
// display purposes.
func (v Vec2) ToFloat64() float64 { return v[0] }
func (v Vec2) ToUintClamped() uint64 {
	if v[0] <= 0 {
		return 0
	}
	if v[0] >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v[0])
}

var (
	_ FieldLike[Vec2]     = Vec2{}
	_ OrderedField[Vec2]  = Vec2{}
	_ Constructible[Vec2] = Vec2{}
	_ Real[Vec2]          = Vec2{}
)

// Vec4 repeats the Vec2 shape at 4 lanes; see Vec2 for documentation.

func (v Vec4) Neg() Vec4 {
	var r Vec4
	for i := range v {
		r[i] = -v[i]
	}
	return r
}
func (v Vec4) Add(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] + o[i]
	}
	return r
}
func (v Vec4) Sub(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] - o[i]
	}
	return r
}
func (v Vec4) Mul(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] * o[i]
	}
	return r
}
func (v Vec4) Div(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = v[i] / o[i]
	}
	return r
}
func (v Vec4) FMA(a, b Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = math.FMA(v[i], a[i], b[i])
	}
	return r
}
func (v Vec4) Pow(e uint64) Vec4 {
	r := v.One()
	base := v
	for e > 0 {
		if e&1 == 1 {
			r = r.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return r
}
func (v Vec4) Inv() Vec4 {
	var r Vec4
	for i := range v {
		r[i] = 1 / v[i]
	}
	return r
}
func (v Vec4) Norm() Vec4 {
	var r Vec4
	for i := range v {
		r[i] = math.Abs(v[i])
	}
	return r
}
func (v Vec4) Zero() Vec4                    { return Vec4{} }
func (v Vec4) One() Vec4                     { return Vec4{1, 1, 1, 1} }
func (v Vec4) FromUint(a uint64) Vec4 {
	x := float64(a)
	return Vec4{x, x, x, x}
}
func (v Vec4) FromInt(a int64) Vec4 {
	x := float64(a)
	return Vec4{x, x, x, x}
}
func (v Vec4) SampleUnit(rng *rand.Rand) Vec4 {
	return Vec4{rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()}
}

func (Vec4) NewZero() Vec4 { return Vec4{} }
func (Vec4) NewOne() Vec4  { return Vec4{1, 1, 1, 1} }
func (Vec4) NewFromUint(a uint64) Vec4 {
	x := float64(a)
	return Vec4{x, x, x, x}
}
func (Vec4) NewFromInt(a int64) Vec4 {
	x := float64(a)
	return Vec4{x, x, x, x}
}
func (Vec4) NewSampleUnit(rng *rand.Rand) Vec4 {
	return Vec4{rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()}
}

func (v Vec4) lanewise(fn func(float64) float64) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = fn(v[i])
	}
	return r
}

func (v Vec4) Sqrt() Vec4 { return v.lanewise(math.Sqrt) }
func (v Vec4) Log() Vec4  { return v.lanewise(math.Log) }
func (v Vec4) Exp() Vec4  { return v.lanewise(math.Exp) }
func (v Vec4) Sin() Vec4  { return v.lanewise(math.Sin) }
func (v Vec4) Cos() Vec4  { return v.lanewise(math.Cos) }
func (v Vec4) Tan() Vec4  { return v.lanewise(math.Tan) }
func (v Vec4) Asin() Vec4 { return v.lanewise(math.Asin) }
func (v Vec4) Acos() Vec4 { return v.lanewise(math.Acos) }
func (v Vec4) Atan2(x Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = math.Atan2(v[i], x[i])
	}
	return r
}
func (v Vec4) Sinh() Vec4 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec4.Sinh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec4) Cosh() Vec4 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec4.Cosh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec4) Tanh() Vec4 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec4.Tanh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec4) Asinh() Vec4 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec4.Asinh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec4) Acosh() Vec4 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec4.Acosh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec4) Atanh() Vec4 {
	polyerr.Raise(polyerr.OpSIMDHyperbolic, "Vec4.Atanh: hyperbolic functions are not supported on SIMD lane domains")
	panic("unreachable")
}
func (v Vec4) Powf(e Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = math.Pow(v[i], e[i])
	}
	return r
}

func (v Vec4) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
func (v Vec4) IsOne() bool {
	for _, x := range v {
		if x != 1 {
			return false
		}
	}
	return true
}
func (v Vec4) IsFinite() bool {
	for _, x := range v {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}
func (v Vec4) Max(o Vec4) Vec4 {
	var r Vec4
	for i := range v {
		r[i] = math.Max(v[i], o[i])
	}
	return r
}
func (v Vec4) ToFloat64() float64 { return v[0] }
func (v Vec4) ToUintClamped() uint64 {
	if v[0] <= 0 {
		return 0
	}
	if v[0] >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v[0])
}

var (
	_ FieldLike[Vec4]     = Vec4{}
	_ OrderedField[Vec4]  = Vec4{}
	_ Constructible[Vec4] = Vec4{}
	_ Real[Vec4]          = Vec4{}
)
