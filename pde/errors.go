// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import "github.com/cpmech/gosl/io"

// InvalidInputError reports an out-of-contract constructor argument:
// reversed spatial bounds, θ outside [0,1].
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return io.Sf("invalid input: %s", e.Reason)
}

func newInvalidInputError(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Reason: io.Sf(format, args...)}
}

// NotImplementedError reports a request this solver does not support;
// the only instance in this package is reverse time stepping.
type NotImplementedError struct {
	Reason string
}

func (e *NotImplementedError) Error() string {
	return io.Sf("not implemented: %s", e.Reason)
}

func newNotImplementedError(format string, args ...interface{}) *NotImplementedError {
	return &NotImplementedError{Reason: io.Sf(format, args...)}
}
