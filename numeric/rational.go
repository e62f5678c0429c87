// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/polyerr"
)

// Rational is an exact rational number held in one of two forms: a small
// form backed by two int64s (numerator, denominator > 0, reduced to
// lowest terms) that avoids any heap allocation for the common case, and
// a large form backed by *big.Rat once an operation would overflow the
// small form. The tagged-union shape follows robpike-ivy's value package,
// which wraps math/big behind a named type (BigRat{*big.Rat}) rather
// than reimplementing rational arithmetic from scratch; Rational goes
// one step further and keeps the no-allocation fast path the teacher's
// numeric code favors elsewhere (see Float64, which never allocates).
type Rational struct {
	small    bool
	num, den int64 // valid iff small
	big      *big.Rat
}

// NewRationalFromInts constructs a reduced Rational equal to num/den,
// raising OpDivideByZero if den is zero.
func NewRationalFromInts(num, den int64) Rational {
	if den == 0 {
		polyerr.Raise(polyerr.OpDivideByZero, "Rational: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcdInt64(absInt64(num), den)
	if g != 0 {
		num, den = num/g, den/g
	}
	return Rational{small: true, num: num, den: den}
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absInt64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func (r Rational) toBig() *big.Rat {
	if !r.small {
		return r.big
	}
	return new(big.Rat).SetFrac64(r.num, r.den)
}

func fromBig(b *big.Rat) Rational {
	n, d := b.Num(), b.Denom()
	if n.IsInt64() && d.IsInt64() {
		nn, dd := n.Int64(), d.Int64()
		// guard against the multiply-back overflowing int64 on a later op
		if nn > -1<<62 && nn < 1<<62 && dd < 1<<62 {
			return Rational{small: true, num: nn, den: dd}
		}
	}
	return Rational{big: new(big.Rat).Set(b)}
}

func addOverflows64(a, b int64) bool {
	s := a + b
	return ((a ^ s) & (b ^ s)) < 0
}

func mulOverflows64(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b
	return p/b != a
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.small {
		if r.num == math.MinInt64 {
			return fromBig(new(big.Rat).Neg(r.toBig()))
		}
		return Rational{small: true, num: -r.num, den: r.den}
	}
	return fromBig(new(big.Rat).Neg(r.big))
}

// Add returns r+o, promoting to the big form if the small-form addition
// would overflow int64.
func (r Rational) Add(o Rational) Rational {
	if r.small && o.small {
		if !mulOverflows64(r.num, o.den) && !mulOverflows64(o.num, r.den) &&
			!mulOverflows64(r.den, o.den) {
			n1, n2 := r.num*o.den, o.num*r.den
			if !addOverflows64(n1, n2) {
				return NewRationalFromInts(n1+n2, r.den*o.den)
			}
		}
	}
	return fromBig(new(big.Rat).Add(r.toBig(), o.toBig()))
}

func (r Rational) Sub(o Rational) Rational { return r.Add(o.Neg()) }

// Mul returns r*o, promoting to the big form on overflow.
func (r Rational) Mul(o Rational) Rational {
	if r.small && o.small {
		if !mulOverflows64(r.num, o.num) && !mulOverflows64(r.den, o.den) {
			return NewRationalFromInts(r.num*o.num, r.den*o.den)
		}
	}
	return fromBig(new(big.Rat).Mul(r.toBig(), o.toBig()))
}

func (r Rational) Div(o Rational) Rational {
	if o.IsZero() {
		polyerr.Raise(polyerr.OpDivideByZero, "Rational.Div: division by zero")
	}
	return r.Mul(o.Inv())
}

func (r Rational) FMA(a, b Rational) Rational { return r.Mul(a).Add(b) }

func (r Rational) Pow(e uint64) Rational {
	result := r.One()
	base := r
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

func (r Rational) Inv() Rational {
	if r.small {
		if r.num == 0 {
			polyerr.Raise(polyerr.OpDivideByZero, "Rational.Inv: inverse of zero")
		}
		if r.num < 0 {
			return Rational{small: true, num: -r.den, den: -r.num}
		}
		return Rational{small: true, num: r.den, den: r.num}
	}
	return fromBig(new(big.Rat).Inv(r.big))
}

func (r Rational) Norm() Rational {
	if r.small {
		return Rational{small: true, num: absInt64(r.num), den: r.den}
	}
	return fromBig(new(big.Rat).Abs(r.big))
}

func (r Rational) Zero() Rational { return Rational{small: true, num: 0, den: 1} }
func (r Rational) One() Rational  { return Rational{small: true, num: 1, den: 1} }

func (r Rational) FromUint(a uint64) Rational {
	if a <= math.MaxInt64 {
		return Rational{small: true, num: int64(a), den: 1}
	}
	return fromBig(new(big.Rat).SetInt(new(big.Int).SetUint64(a)))
}

func (r Rational) FromInt(a int64) Rational { return Rational{small: true, num: a, den: 1} }

// SampleUnit draws two non-negative 63-bit integers from rng, orders
// them so that p <= q, and returns the reduced fraction p/q, a value in
// [0, 1]. Two zero draws yield zero.
func (r Rational) SampleUnit(rng *rand.Rand) Rational {
	p, q := rng.Int63(), rng.Int63()
	if p > q {
		p, q = q, p
	}
	if q == 0 {
		return r.Zero()
	}
	return NewRationalFromInts(p, q)
}

func (r Rational) IsZero() bool {
	if r.small {
		return r.num == 0
	}
	return r.big.Sign() == 0
}

func (r Rational) IsOne() bool {
	if r.small {
		return r.num == 1 && r.den == 1
	}
	return r.big.Cmp(big.NewRat(1, 1)) == 0
}

func (r Rational) IsFinite() bool { return true }

func (r Rational) Max(o Rational) Rational {
	if r.Cmp(o) >= 0 {
		return r
	}
	return o
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than o.
func (r Rational) Cmp(o Rational) int {
	if r.small && o.small {
		lhs, rhs := r.num*o.den, o.num*r.den
		if !mulOverflows64(r.num, o.den) && !mulOverflows64(o.num, r.den) {
			switch {
			case lhs < rhs:
				return -1
			case lhs > rhs:
				return 1
			default:
				return 0
			}
		}
	}
	return r.toBig().Cmp(o.toBig())
}

func (r Rational) ToFloat64() float64 {
	if r.small {
		return float64(r.num) / float64(r.den)
	}
	f, _ := r.big.Float64()
	return f
}

func (r Rational) ToUintClamped() uint64 {
	v := r.ToFloat64()
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}

// Num and Den expose the reduced numerator and denominator as big.Int,
// regardless of internal form.
func (r Rational) Num() *big.Int {
	if r.small {
		return big.NewInt(r.num)
	}
	return new(big.Int).Set(r.big.Num())
}

func (r Rational) Den() *big.Int {
	if r.small {
		return big.NewInt(r.den)
	}
	return new(big.Int).Set(r.big.Denom())
}

func (r Rational) String() string {
	if r.small {
		if r.den == 1 {
			return fmt.Sprintf("%d", r.num)
		}
		return fmt.Sprintf("%d/%d", r.num, r.den)
	}
	return r.big.RatString()
}

var (
	_ FieldLike[Rational]     = Rational{}
	_ OrderedField[Rational]  = Rational{}
	_ Constructible[Rational] = Rational{}
)

func (Rational) NewZero() Rational                    { return Rational{small: true, num: 0, den: 1} }
func (Rational) NewOne() Rational                      { return Rational{small: true, num: 1, den: 1} }
func (Rational) NewFromUint(a uint64) Rational         { return Rational{}.FromUint(a) }
func (Rational) NewFromInt(a int64) Rational           { return Rational{small: true, num: a, den: 1} }
func (Rational) NewSampleUnit(rng *rand.Rand) Rational { return Rational{}.SampleUnit(rng) }
