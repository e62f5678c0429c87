// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar provides tolerance-based floating point comparisons for
// tests, mirroring gonum's floats/scalar package.
package scalar

import "math"

// EqualWithinAbsOrRel returns true if a and b are equal to within the
// absolute or relative tolerance: |a-b| <= absTol, or
// |a-b| / max(|a|,|b|) <= relTol.
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	if EqualWithinAbs(a, b, absTol) {
		return true
	}
	return EqualWithinRel(a, b, relTol)
}

// EqualWithinAbs returns true if a and b are within absTol of each other.
func EqualWithinAbs(a, b, absTol float64) bool {
	return a == b || math.Abs(a-b) <= absTol
}

// EqualWithinRel returns true if the difference between a and b is not
// greater than relTol times the larger absolute value of a and b.
func EqualWithinRel(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	delta := math.Abs(a - b)
	if delta <= 0 {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return delta/largest <= relTol
}

// Same returns true when a and b are identical under IEEE 754, treating
// all NaNs as equal to each other (unlike ==).
func Same(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
