// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/polyerr"
)

// Float64 is the machine-precision double implementation of FieldLike,
// OrderedField, Constructible, and Real. Every operation delegates to
// hardware/stdlib math.
type Float64 float64

func (f Float64) Neg() Float64     { return -f }
func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }

func (f Float64) FMA(a, b Float64) Float64 {
	return Float64(math.FMA(float64(f), float64(a), float64(b)))
}

// Pow raises f to the e'th power. e is checked to fit a signed 32-bit
// integer before delegating to math.Pow, mirroring the teacher's
// debug_assert!(e <= i32::MAX) precondition.
func (f Float64) Pow(e uint64) Float64 {
	if e > math.MaxInt32 {
		polyerr.Raise(polyerr.OpExponentOverflow, "Float64.Pow: exponent %d exceeds int32 range", e)
	}
	return Float64(math.Pow(float64(f), float64(e)))
}

func (f Float64) Inv() Float64  { return 1 / f }
func (f Float64) Norm() Float64 { return Float64(math.Abs(float64(f))) }
func (f Float64) Zero() Float64 { return 0 }
func (f Float64) One() Float64  { return 1 }

func (f Float64) FromUint(a uint64) Float64 { return Float64(a) }
func (f Float64) FromInt(a int64) Float64   { return Float64(a) }

func (f Float64) SampleUnit(rng *rand.Rand) Float64 { return Float64(rng.Float64()) }

func (f Float64) IsZero() bool    { return f == 0 }
func (f Float64) IsOne() bool     { return f == 1 }
func (f Float64) IsFinite() bool  { return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f)) }
func (f Float64) Max(o Float64) Float64 {
	return Float64(math.Max(float64(f), float64(o)))
}
func (f Float64) ToFloat64() float64     { return float64(f) }
func (f Float64) ToUintClamped() uint64 {
	if f <= 0 {
		return 0
	}
	if float64(f) >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(f)
}

func (Float64) NewZero() Float64                        { return 0 }
func (Float64) NewOne() Float64                         { return 1 }
func (Float64) NewFromUint(a uint64) Float64            { return Float64(a) }
func (Float64) NewFromInt(a int64) Float64              { return Float64(a) }
func (Float64) NewSampleUnit(rng *rand.Rand) Float64 { return Float64(rng.Float64()) }

func (f Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(f))) }
func (f Float64) Log() Float64  { return Float64(math.Log(float64(f))) }
func (f Float64) Exp() Float64  { return Float64(math.Exp(float64(f))) }
func (f Float64) Sin() Float64  { return Float64(math.Sin(float64(f))) }
func (f Float64) Cos() Float64  { return Float64(math.Cos(float64(f))) }
func (f Float64) Tan() Float64  { return Float64(math.Tan(float64(f))) }
func (f Float64) Asin() Float64 { return Float64(math.Asin(float64(f))) }
func (f Float64) Acos() Float64 { return Float64(math.Acos(float64(f))) }
func (f Float64) Atan2(x Float64) Float64 {
	return Float64(math.Atan2(float64(f), float64(x)))
}
func (f Float64) Sinh() Float64  { return Float64(math.Sinh(float64(f))) }
func (f Float64) Cosh() Float64  { return Float64(math.Cosh(float64(f))) }
func (f Float64) Tanh() Float64  { return Float64(math.Tanh(float64(f))) }
func (f Float64) Asinh() Float64 { return Float64(math.Asinh(float64(f))) }
func (f Float64) Acosh() Float64 { return Float64(math.Acosh(float64(f))) }
func (f Float64) Atanh() Float64 { return Float64(math.Atanh(float64(f))) }
func (f Float64) Powf(e Float64) Float64 {
	return Float64(math.Pow(float64(f), float64(e)))
}

var (
	_ FieldLike[Float64]     = Float64(0)
	_ OrderedField[Float64]  = Float64(0)
	_ Constructible[Float64] = Float64(0)
	_ Real[Float64]          = Float64(0)
)
