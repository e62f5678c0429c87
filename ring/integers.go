// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring

import "github.com/symcore/polycas/polyerr"

type handleIntegers struct{}

// Integers is the EuclideanDomain[int64] coefficient context: ordinary
// truncating integer arithmetic. Unlike every other ring in this
// package, Integers is not a Field: QuoRem can leave a genuine nonzero
// remainder, which is what gives poly.QuotRem's clean-division-failure
// path (see poly/div.go) a real ring to fail against instead of a
// Field where the check is forever trivially satisfied.
type Integers struct{}

func (Integers) Zero() int64            { return 0 }
func (Integers) One() int64             { return 1 }
func (Integers) Add(a, b int64) int64   { return a + b }
func (Integers) Sub(a, b int64) int64   { return a - b }
func (Integers) Neg(a int64) int64      { return -a }
func (Integers) Mul(a, b int64) int64   { return a * b }
func (Integers) IsZero(a int64) bool    { return a == 0 }
func (Integers) IsOne(a int64) bool     { return a == 1 }
func (Integers) Equal(a, b int64) bool  { return a == b }
func (Integers) Handle() any            { return handleIntegers{} }

// QuoRem is truncating integer division: q*b+r == a with |r| < |b|,
// following Go's native / and % rather than a floored division.
func (Integers) QuoRem(a, b int64) (int64, int64) {
	if b == 0 {
		polyerr.Raise(polyerr.OpDivideByZero, "Integers.QuoRem: division by zero")
	}
	return a / b, a % b
}

func (Integers) IsUnit(a int64) bool { return a == 1 || a == -1 }

// GCD returns the nonnegative Euclidean-algorithm GCD of a and b.
func (Integers) GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

var (
	_ Ring[int64]            = Integers{}
	_ EuclideanDomain[int64] = Integers{}
)
