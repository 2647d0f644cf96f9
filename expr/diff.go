// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "sync"

// memoEntry pairs a shape (outer coefficient normalised to 1) with its
// already-computed derivative.
type memoEntry struct {
	shape Expression
	deriv Expression
}

var (
	memoMu      sync.Mutex
	derivMemo   = make(map[uint64][]memoEntry)
)

// Differentiate returns the derivative of e. Differentiation is
// memoised by shape: each distinct shape — the expression
// with its outer coefficient normalised to 1 — is explicitly
// differentiated at most once per process; the cached result is then
// rescaled by e's actual coefficient on every call. The memo is guarded
// by a single mutex; concurrent callers computing the same shape may
// each differentiate it once; the first completed write wins, and a
// later write appends a structurally equal entry that lookups, which
// return the first match, never reach.
func (e Expression) Differentiate() Expression {
	shape := WithCoefficient(e, 1)
	key := shapeHash(shape)

	memoMu.Lock()
	for _, entry := range derivMemo[key] {
		if entry.shape.Equal(shape) {
			memoMu.Unlock()
			return scaleBy(entry.deriv, e.a)
		}
	}
	memoMu.Unlock()

	deriv := differentiateShape(shape)

	memoMu.Lock()
	derivMemo[key] = append(derivMemo[key], memoEntry{shape: shape, deriv: deriv})
	memoMu.Unlock()

	return scaleBy(deriv, e.a)
}

// DifferentiateN applies Differentiate n times; n<=0 returns e
// unchanged (not an error).
func (e Expression) DifferentiateN(n int) Expression {
	result := e
	for i := 0; i < n; i++ {
		result = result.Differentiate()
	}
	return result
}

// derivativeOfInner returns g' where g is the inner slot of a
// Monomial/NaturalExponent (nil meaning the identity, whose derivative
// is the constant 1). Using this instead of always recursing through
// Differentiate avoids re-entering the identity's own differentiation
// rule, which would otherwise recurse forever.
func derivativeOfInner(inner *Expression) Expression {
	if inner == nil {
		return Constant(1)
	}
	return inner.Differentiate()
}

// differentiateShape computes the derivative of a shape (a shape always
// has outer coefficient 1):
// constant → 0; monomial a·g^p → a·p·g^(p-1)·g'; natural-exponent
// a·exp(g) → a·exp(g)·g'; sum → sum of derivatives; product → product
// rule applied pairwise against the rest as a subproduct.
func differentiateShape(shape Expression) Expression {
	switch shape.kind {
	case KindConstant:
		return Constant(0)

	case KindMonomial:
		gPrime := derivativeOfInner(shape.inner)
		base := Monomial(shape.p, shape.p-1, shape.inner)
		return Product(1, []Expression{base, gPrime})

	case KindNaturalExponent:
		gPrime := derivativeOfInner(shape.inner)
		original := NaturalExponent(1, shape.inner)
		return Product(1, []Expression{original, gPrime})

	case KindSum:
		derivs := make([]Expression, len(shape.terms))
		for i, t := range shape.terms {
			derivs[i] = t.Differentiate()
		}
		return Sum(1, derivs)

	case KindProduct:
		n := len(shape.terms)
		summands := make([]Expression, n)
		for i := 0; i < n; i++ {
			factors := make([]Expression, 0, n)
			factors = append(factors, shape.terms[i].Differentiate())
			for j := 0; j < n; j++ {
				if j != i {
					factors = append(factors, shape.terms[j])
				}
			}
			summands[i] = Product(1, factors)
		}
		return Sum(1, summands)
	}
	return Constant(0)
}
