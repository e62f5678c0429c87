// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric_test

import (
	"testing"

	"github.com/symcore/polycas/numeric"
)

func TestVec2LanewiseArithmetic(t *testing.T) {
	t.Parallel()
	a := numeric.Vec2{1, 2}
	b := numeric.Vec2{3, 4}
	got := a.Add(b)
	want := numeric.Vec2{4, 6}
	if got != want {
		t.Fatalf("Vec2.Add = %v, want %v", got, want)
	}
}

func TestVec4SinhPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Vec4.Sinh to panic: hyperbolics are unsupported on SIMD lanes")
		}
	}()
	numeric.Vec4{1, 2, 3, 4}.Sinh()
}

func TestVec2CoshPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Vec2.Cosh to panic: hyperbolics are unsupported on SIMD lanes")
		}
	}()
	numeric.Vec2{1, 2}.Cosh()
}

func TestVec4FMAMatchesMulAdd(t *testing.T) {
	t.Parallel()
	a := numeric.Vec4{1, 2, 3, 4}
	b := numeric.Vec4{2, 2, 2, 2}
	c := numeric.Vec4{1, 1, 1, 1}
	got := a.FMA(b, c)
	want := a.Mul(b).Add(c)
	if got != want {
		t.Fatalf("FMA = %v, want %v", got, want)
	}
}
