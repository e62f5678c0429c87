// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

// Neg returns -p, negating every coefficient.
func (p Polynomial[C, R, E]) Neg() Polynomial[C, R, E] {
	out := p.NewFrom()
	out.Coeffs = make([]C, len(p.Coeffs))
	out.Exps = append([]E(nil), p.Exps...)
	for i, c := range p.Coeffs {
		out.Coeffs[i] = p.Ring.Neg(c)
	}
	return out
}

// Add returns p+o via a linear merge of the two sorted term lists,
// the same two-pointer shape the teacher uses for merging sorted runs
// elsewhere in the corpus rather than falling back to a generic
// insert-one-at-a-time loop.
func (p Polynomial[C, R, E]) Add(o Polynomial[C, R, E]) Polynomial[C, R, E] {
	p.checkCompatible(o)
	out := p.NewFrom()
	i, j := 0, 0
	for i < len(p.Coeffs) && j < len(o.Coeffs) {
		cmp := compareRows(p.row(i), o.row(j))
		switch {
		case cmp < 0:
			out.AppendMonomialBack(p.Coeffs[i], p.row(i))
			i++
		case cmp > 0:
			out.AppendMonomialBack(o.Coeffs[j], o.row(j))
			j++
		default:
			sum := p.Ring.Add(p.Coeffs[i], o.Coeffs[j])
			if !p.Ring.IsZero(sum) {
				out.AppendMonomialBack(sum, p.row(i))
			}
			i++
			j++
		}
	}
	for ; i < len(p.Coeffs); i++ {
		out.AppendMonomialBack(p.Coeffs[i], p.row(i))
	}
	for ; j < len(o.Coeffs); j++ {
		out.AppendMonomialBack(o.Coeffs[j], o.row(j))
	}
	return out
}

// Sub returns p-o.
func (p Polynomial[C, R, E]) Sub(o Polynomial[C, R, E]) Polynomial[C, R, E] {
	return p.Add(o.Neg())
}
