// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "github.com/cpmech/gosl/io"

// InvalidInputError reports a malformed system: mismatched array
// lengths, or a matrix that is not square.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return io.Sf("invalid input: %s", e.Reason)
}

func newInvalidInputError(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Reason: io.Sf(format, args...)}
}

// InstabilityError reports that the tridiagonal diagonal-dominance
// guard tripped at the given row. The PDE solver
// catches this internally and falls back to the Gaussian solver; it is
// never surfaced past that point.
type InstabilityError struct {
	Row int
}

func (e *InstabilityError) Error() string {
	return io.Sf("tridiagonal system is not diagonally dominant at row %d", e.Row)
}

// IndeterminateError reports that the Gaussian solver could not find a
// pivot for some column.
type IndeterminateError struct {
	Column int
}

func (e *IndeterminateError) Error() string {
	return io.Sf("gaussian elimination found no usable pivot at column %d", e.Column)
}
