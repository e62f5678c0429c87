// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring is the coupling point between the polynomial engine in
// package poly and a concrete coefficient domain from numeric or
// numeric/cmplx. A poly.Polynomial never operates on a bare numeric type
// directly; it goes through a Ring (or the stronger EuclideanDomain and
// Field refinements) so that binary operations between two polynomials
// can cheaply verify the operands came from compatible coefficient
// contexts (the same modulus, the same float precision) before touching
// any coefficient.
package ring

import "github.com/symcore/polycas/polyerr"

// Ring is the minimal coefficient-domain contract a polynomial needs:
// the additive and multiplicative structure, equality, and a Handle
// identifying this particular ring instance.
//
// Handle exists because two rings can share a Go type yet disagree on
// runtime configuration — two ring.MultiPrecisionReals values at
// different precisions, or two field.FiniteField values over different
// moduli — and a caller must never silently mix coefficients from one
// into an operation expecting the other.
type Ring[E any] interface {
	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	IsZero(a E) bool
	IsOne(a E) bool
	Equal(a, b E) bool
	Handle() any
}

// EuclideanDomain is a Ring that additionally supports division with
// remainder and a GCD, the operations package poly's division routines
// and poly.Content are built around.
type EuclideanDomain[E any] interface {
	Ring[E]
	QuoRem(a, b E) (q, r E)
	IsUnit(a E) bool
	GCD(a, b E) E
}

// Field is a EuclideanDomain in which every nonzero element is
// invertible, so division never leaves a remainder.
type Field[E any] interface {
	EuclideanDomain[E]
	Inv(a E) E
	Div(a, b E) E
}

// CheckSameRing panics with a polyerr.Fatal tagged OpRingMismatch unless
// a and b report the same Handle; values without a Handle method are not
// checked. Package poly does not call it: its binary operations compare
// Handle values directly in Polynomial.checkCompatible.
func CheckSameRing(a, b any) {
	type handled interface{ Handle() any }
	ha, oka := a.(handled)
	hb, okb := b.(handled)
	if !oka || !okb {
		return
	}
	if ha.Handle() != hb.Handle() {
		polyerr.Raise(polyerr.OpRingMismatch, "operands belong to different rings (%v vs %v)", ha.Handle(), hb.Handle())
	}
}
