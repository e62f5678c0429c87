// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the finite-field coefficient domain used by
// the polynomial engine's modular-arithmetic fast path for synthetic
// division (poly.FastSyntheticDivision). It is kept separate from
// package ring's other concrete
// domains because a finite field needs a runtime modulus, an extended
// Euclidean inversion routine, and a divide fast path the plain
// EuclideanDomain.QuoRem contract does not express.
package field

import (
	"math/big"

	"golang.org/x/exp/rand"

	"github.com/symcore/polycas/polyerr"
	"github.com/symcore/polycas/ring"
)

type handleFiniteField struct{ modulus uint64 }

// FiniteField is Z/pZ for a runtime modulus p, represented with plain
// uint64 elements reduced modulo p. Multiplication goes through
// math/big to avoid uint64 overflow for moduli near 2^64, mirroring the
// teacher's own preference (see mat/pool.go) for correctness-first
// scratch allocation over hand-rolled 128-bit arithmetic tricks.
type FiniteField struct {
	Modulus uint64
}

// NewFiniteField constructs a FiniteField over the given modulus, which
// callers are responsible for ensuring is prime: this package does not
// run a primality test, matching the teacher's policy of trusting
// caller-supplied configuration rather than validating it at every call
// site.
func NewFiniteField(modulus uint64) FiniteField {
	if modulus == 0 {
		polyerr.Raise(polyerr.OpDivideByZero, "finite field modulus must be nonzero")
	}
	return FiniteField{Modulus: modulus}
}

func (f FiniteField) reduce(v *big.Int) uint64 {
	m := new(big.Int).SetUint64(f.Modulus)
	v.Mod(v, m)
	return v.Uint64()
}

func (f FiniteField) Zero() uint64 { return 0 }
func (f FiniteField) One() uint64 {
	if f.Modulus == 1 {
		return 0
	}
	return 1
}

func (f FiniteField) Add(a, b uint64) uint64 {
	s := new(big.Int).Add(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return f.reduce(s)
}

func (f FiniteField) Sub(a, b uint64) uint64 {
	s := new(big.Int).Sub(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return f.reduce(s)
}

func (f FiniteField) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.Modulus - a
}

func (f FiniteField) Mul(a, b uint64) uint64 {
	p := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return f.reduce(p)
}

func (f FiniteField) IsZero(a uint64) bool { return a == 0 }
func (f FiniteField) IsOne(a uint64) bool  { return a == f.One() }
func (f FiniteField) Equal(a, b uint64) bool { return a == b }
func (f FiniteField) Handle() any           { return handleFiniteField{modulus: f.Modulus} }

// extgcd returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func extgcd(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g1, x1, y1 := extgcd(b, a%b)
	return g1, y1, x1 - (a/b)*y1
}

// Inv returns the modular inverse of a via the extended Euclidean
// algorithm; it panics with OpDivideByZero if a is not invertible
// (shares a nontrivial factor with the modulus, which for a non-prime
// modulus includes more than just zero).
func (f FiniteField) Inv(a uint64) uint64 {
	if a == 0 {
		polyerr.Raise(polyerr.OpDivideByZero, "no inverse of 0 in finite field mod %d", f.Modulus)
	}
	g, x, _ := extgcd(int64(a%f.Modulus), int64(f.Modulus))
	if g != 1 && g != -1 {
		polyerr.Raise(polyerr.OpDivideByZero, "%d is not invertible mod %d", a, f.Modulus)
	}
	m := int64(f.Modulus)
	x %= m
	if x < 0 {
		x += m
	}
	return uint64(x)
}

// Div computes a/b via the extended-Euclidean inverse. FastDivMod below
// is the preferred entry point from package poly's division routines,
// since it reuses a single inverse across an entire synthetic-division
// pass instead of recomputing it per coefficient.
func (f FiniteField) Div(a, b uint64) uint64 {
	return f.Mul(a, f.Inv(b))
}

func (f FiniteField) QuoRem(a, b uint64) (uint64, uint64) {
	return f.Div(a, b), 0
}

func (f FiniteField) IsUnit(a uint64) bool {
	g, _, _ := extgcd(int64(a%f.Modulus), int64(f.Modulus))
	return g == 1 || g == -1
}

// GCD is the trivial field GCD: every nonzero element is a unit.
func (f FiniteField) GCD(a, b uint64) uint64 {
	if f.IsZero(a) && f.IsZero(b) {
		return f.Zero()
	}
	return f.One()
}

func (f FiniteField) FromUint(a uint64) uint64 { return a % f.Modulus }
func (f FiniteField) FromInt(a int64) uint64 {
	m := int64(f.Modulus)
	a %= m
	if a < 0 {
		a += m
	}
	return uint64(a)
}

func (f FiniteField) SampleUnit(rng *rand.Rand) uint64 {
	if f.Modulus == 0 {
		return 0
	}
	return uint64(rng.Int63n(int64(f.Modulus)))
}

// FastDivMod multiplies every element of row in place by inv, the
// precomputed inverse of some divisor b, so the whole row is divided by
// b with a single Inv call instead of one per element. poly's
// FastSyntheticDivision uses it to rescale the quotient after dividing
// by a divisor normalized to a monic leading coefficient, where
// recomputing an extended-Euclidean inverse per coefficient would
// dominate the running time.
func (f FiniteField) FastDivMod(row []uint64, inv uint64) {
	for i, v := range row {
		row[i] = f.Mul(v, inv)
	}
}

var (
	_ ring.Ring[uint64]            = FiniteField{}
	_ ring.EuclideanDomain[uint64] = FiniteField{}
	_ ring.Field[uint64]           = FiniteField{}
)
