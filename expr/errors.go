// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "github.com/cpmech/gosl/io"

// DomainError reports a mathematical domain violation discovered while
// evaluating an expression at a point: a negative base raised to a
// non-integer exponent, or a division by zero.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return io.Sf("domain error: %s", e.Reason)
}

// newDomainError builds a DomainError with a formatted reason.
func newDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{Reason: io.Sf(format, args...)}
}

// ArithmeticError reports an algebraic operation that is undefined
// regardless of the point of evaluation, e.g. dividing by the zero
// expression or raising it to a negative power. A constructor that
// meets an infinite coefficient does not return this error: it panics.
type ArithmeticError struct {
	Reason string
}

func (e *ArithmeticError) Error() string {
	return io.Sf("arithmetic error: %s", e.Reason)
}

func newArithmeticError(format string, args ...interface{}) *ArithmeticError {
	return &ArithmeticError{Reason: io.Sf(format, args...)}
}
