// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field_test

import (
	"testing"

	"github.com/symcore/polycas/field"
)

func TestFiniteFieldInverseRoundTrips(t *testing.T) {
	t.Parallel()
	f := field.NewFiniteField(101)
	for a := uint64(1); a < 101; a++ {
		inv := f.Inv(a)
		if f.Mul(a, inv) != 1 {
			t.Fatalf("%d * inv(%d) = %d, want 1", a, a, f.Mul(a, inv))
		}
	}
}

func TestFiniteFieldFastDivModMatchesDiv(t *testing.T) {
	t.Parallel()
	f := field.NewFiniteField(97)
	row := []uint64{1, 2, 3, 4, 5}
	want := make([]uint64, len(row))
	for i, v := range row {
		want[i] = f.Div(v, 7)
	}
	inv := f.Inv(7)
	f.FastDivMod(row, inv)
	for i := range row {
		if row[i] != want[i] {
			t.Fatalf("FastDivMod[%d] = %d, want %d", i, row[i], want[i])
		}
	}
}

func TestFiniteFieldZeroModulusPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a zero-modulus field")
		}
	}()
	field.NewFiniteField(0)
}

func TestFiniteFieldInverseOfZeroPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic inverting zero")
		}
	}()
	field.NewFiniteField(13).Inv(0)
}
