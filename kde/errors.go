// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kde

import "github.com/cpmech/gosl/io"

// InvalidInputError reports mismatched sample/weight slices, a
// reversed [lower,upper] support, or a support with zero samples.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return io.Sf("invalid input: %s", e.Reason)
}

func newInvalidInputError(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Reason: io.Sf(format, args...)}
}
