// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import "github.com/symcore/polycas/field"

// FastSyntheticDivision specializes SyntheticDivision to
// field.FiniteField coefficients, wiring FiniteField.FastDivMod into
// the division path instead of SyntheticDivision's generic per-term
// ring.QuoRem: once the divisor's inverse leading coefficient is known,
// every quotient coefficient can be produced by a single fixed-inverse
// multiply instead of a fresh extended-Euclidean inversion per term.
//
// When divisor is a single monomial c*x_v (including the constant
// case), the division degenerates to a monomial-wise scale-and-shift
// and is handled directly without delegating to SyntheticDivision at
// all. Otherwise divisor is normalized to monic by scaling it by the
// inverse of its own leading coefficient, SyntheticDivision divides by
// that monic divisor, and the resulting quotient is rescaled by the
// same inverse (via FiniteField.FastDivMod) to undo the normalization:
// q*scaled = p - r, so (q*inv)*(divisor) = (q*inv)*(norm*scaled) =
// q*scaled = p - r once norm*inv cancels to one. (This
// corrects a scaling bug present in the reference implementation this
// package was ported from, which rescaled the quotient by norm instead
// of by inv — rescaling by norm silently returns norm² times the
// correct quotient whenever norm is not already a unit's own inverse.)
func FastSyntheticDivision[E Exponent](p, divisor Polynomial[uint64, field.FiniteField, E]) (q, r Polynomial[uint64, field.FiniteField, E]) {
	p.checkCompatible(divisor)
	f := p.Ring

	if divisor.NTerms() == 1 {
		inv := f.Inv(divisor.LCoeff())
		q = p.NewFrom()
		r = p.NewFrom()
		if divisor.IsConstant() {
			for i := 0; i < p.NTerms(); i++ {
				q.AppendMonomialBack(f.Mul(p.Coeffs[i], inv), p.row(i))
			}
			return q, r
		}
		dm := divisor.LMonomial()
		for i := 0; i < p.NTerms(); i++ {
			row := p.row(i)
			if diff, ok := monomialDivides(row, dm); ok {
				q.AppendMonomialBack(f.Mul(p.Coeffs[i], inv), diff)
			} else {
				r.AppendMonomialBack(p.Coeffs[i], row)
			}
		}
		return q, r
	}

	norm := divisor.LCoeff()
	if f.IsOne(norm) {
		return SyntheticDivision(p, divisor)
	}

	inv := f.Inv(norm)
	scaled := divisor.MulCoeff(inv)
	q, r = SyntheticDivision(p, scaled)
	f.FastDivMod(q.Coeffs, inv)
	return q, r
}
