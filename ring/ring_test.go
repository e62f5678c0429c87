// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"testing"

	"github.com/symcore/polycas/numeric"
	"github.com/symcore/polycas/ring"
)

func TestMultiPrecisionRealsHandleDiffersByPrecision(t *testing.T) {
	t.Parallel()
	a := ring.MultiPrecisionReals{Prec: 64}
	b := ring.MultiPrecisionReals{Prec: 128}
	if a.Handle() == b.Handle() {
		t.Fatal("rings at different precisions must not share a handle")
	}
	if a.Handle() != (ring.MultiPrecisionReals{Prec: 64}).Handle() {
		t.Fatal("rings at the same precision must share a handle")
	}
}

func TestRealsFieldAxioms(t *testing.T) {
	t.Parallel()
	r := ring.Reals{}
	a, b := numeric.Float64(3), numeric.Float64(4)
	if r.Add(a, b) != 7 {
		t.Fatalf("Add(3,4) = %v, want 7", r.Add(a, b))
	}
	if !r.IsUnit(a) {
		t.Fatal("nonzero reals must be units")
	}
	if r.IsUnit(r.Zero()) {
		t.Fatal("zero must not be a unit")
	}
}

func TestComplexesHandleNestsInnerRing(t *testing.T) {
	t.Parallel()
	c1 := ring.Complexes[numeric.Float64]{Inner: ring.Reals{}}
	c2 := ring.Complexes[numeric.Float64]{Inner: ring.Reals{}}
	if c1.Handle() != c2.Handle() {
		t.Fatal("two Complexes wrapping the same inner ring must share a handle")
	}
}
