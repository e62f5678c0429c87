// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric defines the algebraic contract shared by every
// coefficient domain in the numeric tower: machine float (Float64),
// arbitrary-precision float (BigFloat), exact rational (Rational), and
// the lanewise SIMD-style packs (Vec2, Vec4). Complex numbers built over
// any of these live in the sibling package numeric/cmplx.
//
// Operations whose result depends on runtime precision (BigFloat) take
// their precision from the receiver ("self" in the teacher's Rust
// vocabulary); operations that don't (Float64, Vec2, Vec4) ignore it.
// Constructible marks the domains that additionally admit
// precision-free, receiver-independent constructors.
package numeric

import "golang.org/x/exp/rand"

// FieldLike is the contract every coefficient domain satisfies: the
// field operations, plus the handful of auxiliary constructors that a
// polynomial engine needs (zero/one that inherit precision from a
// prototype value, conversion from small integers, and uniform
// sampling for randomized testing).
type FieldLike[T any] interface {
	Neg() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T

	// FMA returns self*a + b, fused where the underlying domain supports
	// it (Float64 delegates to math.FMA).
	FMA(a, b T) T

	// Pow raises the value to a non-negative integer power. Each domain
	// supplies its own implementation (Float64 delegates to math.Pow; the
	// other domains in this module use binary exponentiation).
	Pow(e uint64) T

	Inv() T

	// Norm is absolute value for ordered reals and magnitude for
	// anything built over them (see numeric/cmplx).
	Norm() T

	// Zero and One inherit precision/modulus context from the receiver.
	Zero() T
	One() T

	FromUint(a uint64) T
	FromInt(a int64) T

	// SampleUnit draws a value uniformly on [0, 1] using the injected
	// random source; it never reads from a package-level global.
	SampleUnit(rng *rand.Rand) T
}

// OrderedField adds the predicates and lossy projections available only
// on totally-ordered domains (every scalar domain in this package except
// Complex, which lives in numeric/cmplx and does not implement it).
type OrderedField[T any] interface {
	FieldLike[T]
	IsZero() bool
	IsOne() bool
	IsFinite() bool
	Max(other T) T

	// ToFloat64 is a lossy projection used for display and tolerance
	// comparisons.
	ToFloat64() float64

	// ToUintClamped projects to uint64, clamping out-of-range values
	// instead of overflowing.
	ToUintClamped() uint64
}

// Constructible marks domains that admit a precision-free constructor
// set, usable without an existing prototype value. Float64, Rational,
// Vec2, and Vec4 satisfy it; BigFloat does not, since a BigFloat needs a
// precision to be constructed meaningfully (see precisionFreeZero in
// bigfloat.go, which callers must treat as a placeholder only).
type Constructible[T any] interface {
	NewZero() T
	NewOne() T
	NewFromUint(a uint64) T
	NewFromInt(a int64) T
	NewSampleUnit(rng *rand.Rand) T
}

// Real extends FieldLike with the transcendental functions a coefficient
// domain needs to back numeric/cmplx.Complex. SIMD-packed domains
// (Vec2, Vec4) implement the full interface but panic on the hyperbolic
// methods instead of silently producing a wrong per-lane answer.
type Real[T any] interface {
	FieldLike[T]
	Sqrt() T
	Log() T
	Exp() T
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan2(x T) T
	Sinh() T
	Cosh() T
	Tanh() T
	Asinh() T
	Acosh() T
	Atanh() T
	Powf(e T) T
}

// NewZero calls T's precision-free zero constructor without requiring a
// prototype instance.
func NewZero[T Constructible[T]]() T {
	var z T
	return z.NewZero()
}

// NewOne calls T's precision-free one constructor.
func NewOne[T Constructible[T]]() T {
	var z T
	return z.NewOne()
}

// NewFromInt calls T's precision-free integer constructor.
func NewFromInt[T Constructible[T]](a int64) T {
	var z T
	return z.NewFromInt(a)
}

// NewSampleUnit calls T's precision-free uniform sampler.
func NewSampleUnit[T Constructible[T]](rng *rand.Rand) T {
	var z T
	return z.NewSampleUnit(rng)
}
