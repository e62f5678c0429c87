// Copyright ©2024 The Polycas Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyerr defines the fatal-precondition error type shared by the
// numeric, ring, field, and poly packages. A Fatal value is only ever
// reached through panic: the core never recovers from a programmer-error
// precondition violation itself, but a caller built on top of it (a REPL,
// a test harness) can recover and inspect the value with errors.As.
package polyerr

import "fmt"

// Op names the operation that detected the fatal precondition.
type Op string

const (
	OpRingMismatch     Op = "ring mismatch"
	OpVarMapMismatch   Op = "var map mismatch"
	OpNVarsMismatch    Op = "nvars mismatch"
	OpDivideByZero     Op = "division by zero polynomial"
	OpExponentOverflow Op = "exponent overflow"
	OpSIMDHyperbolic   Op = "SIMD hyperbolic call"
	OpInconsistent     Op = "inconsistent polynomial"
)

// Fatal is the value panicked for every precondition violation that
// indicates programmer error rather than an algebraic failure. It
// implements the error interface so that code that recovers a panic (a
// REPL built atop this engine, for instance) can errors.As into it.
type Fatal struct {
	Op      Op
	Message string
}

func (e *Fatal) Error() string {
	return fmt.Sprintf("poly: %s: %s", e.Op, e.Message)
}

// Raise panics with a *Fatal built from op and a formatted message,
// following the teacher's "panic(pkg: message)" convention but as a typed
// value instead of a bare string.
func Raise(op Op, format string, args ...any) {
	panic(&Fatal{Op: op, Message: fmt.Sprintf(format, args...)})
}
