// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmplx implements complex numbers generic over any real scalar
// domain from the sibling numeric package (Float64, numeric.BigFloat,
// numeric.Vec2, numeric.Vec4), following the teacher's per-type-per-file
// layout for its own num/quat package: one file, one concrete numeric
// type, with Format/String living alongside the arithmetic.
package cmplx

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/numeric"
)

// Complex is a Cartesian complex number Re + Im*i built over any real
// scalar domain T. It implements numeric.FieldLike and numeric.Real so
// that polynomials can be instantiated over Complex[Float64],
// Complex[numeric.BigFloat], and so on without a separate code path.
//
// Branch-cut placement for Asin, Acos, Atan2, Asinh, Acosh, and Atanh
// follows the textbook principal-value formulas below but is not
// independently verified against a reference library across every
// quadrant; this mirrors an explicitly open question in the original
// specification and is left as-is rather than guessed at further.
type Complex[T numeric.Real[T]] struct {
	Re, Im T
}

// New constructs a Complex from its real and imaginary parts.
func New[T numeric.Real[T]](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

func (c Complex[T]) zeroT() T { return c.Re.Zero() }
func (c Complex[T]) oneT() T  { return c.Re.One() }

// imagUnit returns 0+1i over the same scalar domain as c.
func (c Complex[T]) imagUnit() Complex[T] {
	return Complex[T]{Re: c.zeroT(), Im: c.oneT()}
}

func (c Complex[T]) Neg() Complex[T] {
	return Complex[T]{Re: c.Re.Neg(), Im: c.Im.Neg()}
}

func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re.Add(o.Re), Im: c.Im.Add(o.Im)}
}

func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return Complex[T]{Re: c.Re.Sub(o.Re), Im: c.Im.Sub(o.Im)}
}

// Mul uses the standard four-multiplication Cartesian formula rather
// than the three-multiplication Karatsuba-style trick, matching the
// teacher's num/quat multiplication, which also favors the direct
// formula for clarity over micro-optimization.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	re := c.Re.Mul(o.Re).Sub(c.Im.Mul(o.Im))
	im := c.Re.Mul(o.Im).Add(c.Im.Mul(o.Re))
	return Complex[T]{Re: re, Im: im}
}

func (c Complex[T]) Div(o Complex[T]) Complex[T] {
	denom := o.Re.Mul(o.Re).Add(o.Im.Mul(o.Im))
	re := c.Re.Mul(o.Re).Add(c.Im.Mul(o.Im)).Div(denom)
	im := c.Im.Mul(o.Re).Sub(c.Re.Mul(o.Im)).Div(denom)
	return Complex[T]{Re: re, Im: im}
}

func (c Complex[T]) FMA(a, b Complex[T]) Complex[T] {
	return c.Mul(a).Add(b)
}

// Pow raises c to a non-negative integer power by binary exponentiation.
// TODO: special-case small e (0,1,2) to avoid the loop overhead once a
// benchmark shows it matters for polynomial evaluation hot paths.
func (c Complex[T]) Pow(e uint64) Complex[T] {
	result := c.One()
	base := c
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

func (c Complex[T]) Inv() Complex[T] {
	denom := c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
	return Complex[T]{Re: c.Re.Div(denom), Im: c.Im.Neg().Div(denom)}
}

// Norm returns |c| embedded back on the real axis, following the
// FieldLike contract that Norm's return type matches the receiver's.
func (c Complex[T]) Norm() Complex[T] {
	mag := c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im)).Sqrt()
	return Complex[T]{Re: mag, Im: c.zeroT()}
}

func (c Complex[T]) Zero() Complex[T] {
	return Complex[T]{Re: c.Re.Zero(), Im: c.Re.Zero()}
}

func (c Complex[T]) One() Complex[T] {
	return Complex[T]{Re: c.Re.One(), Im: c.Re.Zero()}
}

func (c Complex[T]) FromUint(a uint64) Complex[T] {
	return Complex[T]{Re: c.Re.FromUint(a), Im: c.Re.Zero()}
}

func (c Complex[T]) FromInt(a int64) Complex[T] {
	return Complex[T]{Re: c.Re.FromInt(a), Im: c.Re.Zero()}
}

func (c Complex[T]) SampleUnit(rng *rand.Rand) Complex[T] {
	return Complex[T]{Re: c.Re.SampleUnit(rng), Im: c.Re.SampleUnit(rng)}
}

// Sqrt uses the polar-form identity sqrt(z) = sqrt(|z|) * e^(i*arg(z)/2).
func (c Complex[T]) Sqrt() Complex[T] {
	r := c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im)).Sqrt()
	theta := c.Im.Atan2(c.Re)
	half := theta.Div(c.Re.One().Add(c.Re.One()))
	sr := r.Sqrt()
	return Complex[T]{Re: sr.Mul(half.Cos()), Im: sr.Mul(half.Sin())}
}

// Log returns the principal branch: ln|z| + i*arg(z).
func (c Complex[T]) Log() Complex[T] {
	r := c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im)).Sqrt()
	return Complex[T]{Re: r.Log(), Im: c.Im.Atan2(c.Re)}
}

// Exp returns e^Re * (cos(Im) + i sin(Im)).
func (c Complex[T]) Exp() Complex[T] {
	ea := c.Re.Exp()
	return Complex[T]{Re: ea.Mul(c.Im.Cos()), Im: ea.Mul(c.Im.Sin())}
}

func (c Complex[T]) Sin() Complex[T] {
	return Complex[T]{
		Re: c.Re.Sin().Mul(c.Im.Cosh()),
		Im: c.Re.Cos().Mul(c.Im.Sinh()),
	}
}

func (c Complex[T]) Cos() Complex[T] {
	return Complex[T]{
		Re: c.Re.Cos().Mul(c.Im.Cosh()),
		Im: c.Re.Sin().Mul(c.Im.Sinh()).Neg(),
	}
}

func (c Complex[T]) Tan() Complex[T] {
	return c.Sin().Div(c.Cos())
}

// Asin returns -i * log(iz + sqrt(1-z^2)).
func (c Complex[T]) Asin() Complex[T] {
	i := c.imagUnit()
	one := c.One()
	inner := one.Sub(c.Mul(c)).Sqrt().Add(i.Mul(c))
	return i.Neg().Mul(inner.Log())
}

// Acos returns -i * log(z + i*sqrt(1-z^2)).
func (c Complex[T]) Acos() Complex[T] {
	i := c.imagUnit()
	one := c.One()
	inner := c.Add(i.Mul(one.Sub(c.Mul(c)).Sqrt()))
	return i.Neg().Mul(inner.Log())
}

// Atan2 over complex domains is not a well-defined two-quadrant
// arctangent; it is implemented as the one-argument complex arctangent
// of c/x, matching the shape the teacher expects from the Real
// interface without claiming quadrant correctness for complex inputs.
func (c Complex[T]) Atan2(x Complex[T]) Complex[T] {
	z := c.Div(x)
	i := c.imagUnit()
	one := c.One()
	num := one.Sub(i.Mul(z))
	den := one.Add(i.Mul(z))
	half := i.Div(c.FromInt(2))
	return half.Mul(num.Log().Sub(den.Log()))
}

func (c Complex[T]) Sinh() Complex[T] {
	return Complex[T]{
		Re: c.Re.Sinh().Mul(c.Im.Cos()),
		Im: c.Re.Cosh().Mul(c.Im.Sin()),
	}
}

func (c Complex[T]) Cosh() Complex[T] {
	return Complex[T]{
		Re: c.Re.Cosh().Mul(c.Im.Cos()),
		Im: c.Re.Sinh().Mul(c.Im.Sin()),
	}
}

func (c Complex[T]) Tanh() Complex[T] {
	return c.Sinh().Div(c.Cosh())
}

// Asinh returns log(z + sqrt(z^2+1)).
func (c Complex[T]) Asinh() Complex[T] {
	one := c.One()
	return c.Add(c.Mul(c).Add(one).Sqrt()).Log()
}

// Acosh returns log(z + sqrt(z-1)*sqrt(z+1)).
func (c Complex[T]) Acosh() Complex[T] {
	one := c.One()
	return c.Add(c.Sub(one).Sqrt().Mul(c.Add(one).Sqrt())).Log()
}

// Atanh returns (1/2)(log(1+z) - log(1-z)).
func (c Complex[T]) Atanh() Complex[T] {
	one := c.One()
	half := one.Div(c.FromInt(2))
	return half.Mul(one.Add(c).Log().Sub(one.Sub(c).Log()))
}

// Powf returns c^e via exp(e * log(c)).
func (c Complex[T]) Powf(e Complex[T]) Complex[T] {
	return e.Mul(c.Log()).Exp()
}

func (c Complex[T]) String() string {
	return fmt.Sprintf("(%v+%vi)", c.Re, c.Im)
}

// Format implements fmt.Formatter the way the teacher's num/quat.Quat
// does, delegating to String for %v and %s and falling back to the
// default verb handling otherwise.
func (c Complex[T]) Format(fs fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprint(fs, c.String())
	default:
		fmt.Fprintf(fs, "%%!%c(cmplx.Complex)", verb)
	}
}

var (
	_ numeric.FieldLike[Complex[numeric.Float64]] = Complex[numeric.Float64]{}
	_ numeric.Real[Complex[numeric.Float64]]      = Complex[numeric.Float64]{}
)
