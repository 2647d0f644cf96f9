// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// addCleanly implements the "clean addition" protocol: it
// succeeds, returning a value no more complex than either operand, only
// when x and y share the same shape (kind, exponent, inner, or factor
// multiset). Sum/Sum combination is not attempted here — Sum's own
// builder already flattens nested sums before aggregation reaches this
// point.
func addCleanly(x, y Expression) (Expression, bool) {
	if x.kind != y.kind {
		return Expression{}, false
	}
	switch x.kind {
	case KindConstant:
		return Constant(x.a + y.a), true
	case KindMonomial:
		if x.p == y.p && identityOrInner(x.inner).Equal(identityOrInner(y.inner)) {
			return Monomial(x.a+y.a, x.p, x.inner), true
		}
		return Expression{}, false
	case KindNaturalExponent:
		if identityOrInner(x.inner).Equal(identityOrInner(y.inner)) {
			return NaturalExponent(x.a+y.a, x.inner), true
		}
		return Expression{}, false
	case KindProduct:
		if sameFactorMultiset(x, y) {
			return Product(x.a+y.a, x.terms), true
		}
		return Expression{}, false
	}
	return Expression{}, false
}

// multiplyCleanly implements the "clean multiplication" protocol: a
// Constant absorbs into the other operand's coefficient; two Monomials
// sharing an inner expression combine by adding exponents; two
// NaturalExponents always combine by summing their inner expressions;
// anything else fails to combine cleanly.
func multiplyCleanly(x, y Expression) (Expression, bool) {
	if x.kind == KindConstant {
		return scaleBy(y, x.a), true
	}
	if y.kind == KindConstant {
		return scaleBy(x, y.a), true
	}
	if x.kind != y.kind {
		return Expression{}, false
	}
	switch x.kind {
	case KindMonomial:
		if identityOrInner(x.inner).Equal(identityOrInner(y.inner)) {
			return Monomial(x.a*y.a, x.p+y.p, x.inner), true
		}
		return Expression{}, false
	case KindNaturalExponent:
		sum := Sum(1, []Expression{identityOrInner(x.inner), identityOrInner(y.inner)})
		return NaturalExponent(x.a*y.a, &sum), true
	}
	return Expression{}, false
}

// sameFactorMultiset reports whether two Products carry exactly the same
// (already canonically sorted) list of factors.
func sameFactorMultiset(x, y Expression) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for i := range x.terms {
		if !x.terms[i].Equal(y.terms[i]) {
			return false
		}
	}
	return true
}

func isZeroExpression(e Expression) bool {
	return e.kind == KindConstant && e.a == 0
}

// Add returns e + o.
func (e Expression) Add(o Expression) Expression {
	return Sum(1, []Expression{e, o})
}

// AddScalar returns e + c.
func (e Expression) AddScalar(c float64) Expression {
	return e.Add(Constant(c))
}

// Subtract returns e - o.
func (e Expression) Subtract(o Expression) Expression {
	return Sum(1, []Expression{e, scaleBy(o, -1)})
}

// SubtractScalar returns e - c.
func (e Expression) SubtractScalar(c float64) Expression {
	return e.Subtract(Constant(c))
}

// Multiply returns e·o.
func (e Expression) Multiply(o Expression) Expression {
	return Product(1, []Expression{e, o})
}

// MultiplyScalar returns c·e.
func (e Expression) MultiplyScalar(c float64) Expression {
	return scaleBy(e, c)
}

// Divide returns e/o. Division by the zero expression fails with
// ArithmeticError; domain violations at particular points
// (e.g. o evaluating to zero at a specific x) surface later, from
// Evaluate, as DomainError.
func (e Expression) Divide(o Expression) (Expression, error) {
	if isZeroExpression(o) {
		return Expression{}, newArithmeticError("division by the zero expression")
	}
	inv := Monomial(1, -1, &o)
	return e.Multiply(inv), nil
}

// DivideScalar returns e/c.
func (e Expression) DivideScalar(c float64) (Expression, error) {
	if c == 0 {
		return Expression{}, newArithmeticError("division by zero")
	}
	return scaleBy(e, 1/c), nil
}

// Compose substitutes x ↦ inner(x) into e, re-canonicalising every
// rewritten node. Compose on a Constant is the identity; composition
// terminates because inner expressions strictly shrink after
// canonicalisation.
func (e Expression) Compose(inner Expression) Expression {
	switch e.kind {
	case KindConstant:
		return e
	case KindMonomial:
		if e.inner == nil {
			return Monomial(e.a, e.p, &inner)
		}
		g := e.inner.Compose(inner)
		return Monomial(e.a, e.p, &g)
	case KindNaturalExponent:
		if e.inner == nil {
			return NaturalExponent(e.a, &inner)
		}
		g := e.inner.Compose(inner)
		return NaturalExponent(e.a, &g)
	case KindSum:
		terms := make([]Expression, len(e.terms))
		for i, t := range e.terms {
			terms[i] = t.Compose(inner)
		}
		return Sum(e.a, terms)
	case KindProduct:
		terms := make([]Expression, len(e.terms))
		for i, t := range e.terms {
			terms[i] = t.Compose(inner)
		}
		return Product(e.a, terms)
	}
	return e
}

// Pow raises e to the integer power n by repeated multiplication (spec
// §4.1); n==0 returns Constant(1); negative n wraps the positive power
// in a Monomial(1,-1,·); raising the zero expression to a negative power
// fails with ArithmeticError.
func (e Expression) Pow(n int) (Expression, error) {
	if n == 0 {
		return Constant(1), nil
	}
	if n > 0 {
		result := e
		for i := 1; i < n; i++ {
			result = result.Multiply(e)
		}
		return result, nil
	}
	if isZeroExpression(e) {
		return Expression{}, newArithmeticError("cannot raise the zero expression to a negative power")
	}
	pos, err := e.Pow(-n)
	if err != nil {
		return Expression{}, err
	}
	return Monomial(1, -1, &pos), nil
}
