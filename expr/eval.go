// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// Evaluate computes e(x). A negative base raised to a non-integer
// Monomial exponent fails with a *DomainError whose reason says a
// complex result is required; a zero base raised to a negative
// exponent (the only form division takes in this algebra) fails with a
// *DomainError whose reason says division by zero.
func (e Expression) Evaluate(x float64) (float64, error) {
	switch e.kind {
	case KindConstant:
		return e.a, nil

	case KindMonomial:
		base := x
		if e.inner != nil {
			v, err := e.inner.Evaluate(x)
			if err != nil {
				return 0, err
			}
			base = v
		}
		if base < 0 && !isInt(e.p) {
			return 0, newDomainError("%v^%v requires a complex result (negative base, non-integer exponent)", base, e.p)
		}
		if base == 0 && e.p < 0 {
			return 0, newDomainError("0^%v is a division by zero", e.p)
		}
		return e.a * math.Pow(base, e.p), nil

	case KindNaturalExponent:
		base := x
		if e.inner != nil {
			v, err := e.inner.Evaluate(x)
			if err != nil {
				return 0, err
			}
			base = v
		}
		return e.a * math.Exp(base), nil

	case KindSum:
		sum := 0.0
		for _, t := range e.terms {
			v, err := t.Evaluate(x)
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return e.a * sum, nil

	case KindProduct:
		prod := 1.0
		for _, t := range e.terms {
			v, err := t.Evaluate(x)
			if err != nil {
				return 0, err
			}
			prod *= v
		}
		return e.a * prod, nil
	}
	return 0, newDomainError("unknown expression kind")
}
