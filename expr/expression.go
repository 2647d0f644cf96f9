// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements a small, closed algebra of real-valued,
// single-variable functions: constants, monomials, natural exponentials,
// and their sums and products. Every constructor returns a value already
// reduced to a canonical form, so structurally equal values are
// always mathematically equal and vice versa (within the algebra's own
// equivalence classes).
package expr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kind selects the tag of an Expression's underlying variant.
type Kind int

// The five closed-algebra kinds.
const (
	KindConstant Kind = iota
	KindMonomial
	KindNaturalExponent
	KindSum
	KindProduct
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindMonomial:
		return "Monomial"
	case KindNaturalExponent:
		return "NaturalExponent"
	case KindSum:
		return "Sum"
	case KindProduct:
		return "Product"
	}
	return "Unknown"
}

// Expression is an immutable value in the algebra. The zero value is not
// meaningful; use the constructors below. a is the outer coefficient; p
// is meaningful only for Monomial (the real exponent); inner is the
// "g" of a·g(x)^p or a·exp(g(x)) — nil means the identity g(x)=x; terms
// holds the children of a Sum or Product.
type Expression struct {
	kind  Kind
	a     float64
	p     float64
	inner *Expression
	terms []Expression
}

// Kind reports the top-level variant of this expression.
func (e Expression) Kind() Kind { return e.kind }

// Coefficient reports the outer coefficient a.
func (e Expression) Coefficient() float64 { return e.a }

func mustFinite(a float64, who string) {
	if math.IsInf(a, 0) {
		chk.Panic("%s: infinite coefficient is not representable (a=%v)", who, a)
	}
}

// identityOrInner returns the inner expression, substituting the
// identity g(x)=x when inner is absent.
func identityOrInner(inner *Expression) Expression {
	if inner == nil {
		return identity()
	}
	return *inner
}

// identity is the canonical representation of g(x) = x.
func identity() Expression {
	return Expression{kind: KindMonomial, a: 1, p: 1, inner: nil}
}

func isZero(a float64) bool { return a == 0 }

func isInt(p float64) bool { return p == math.Trunc(p) }

// Constant builds the constant function x ↦ a. Constant(0) is the
// unique zero of the algebra.
func Constant(a float64) Expression {
	mustFinite(a, "Constant")
	return Expression{kind: KindConstant, a: a}
}

// Monomial builds a·g(x)^p, with g(x)=x when inner is nil. The result is
// reduced on construction: zero coefficient or zero exponent collapse to a
// Constant, exponent 1 collapses into the (rescaled) inner expression,
// nested Monomials/NaturalExponents/Products in the inner slot are
// absorbed rather than nested. A Sum in the inner slot is expanded in
// full when p is a positive integer; under any other exponent it stays
// nested.
func Monomial(a, p float64, inner *Expression) Expression {
	mustFinite(a, "Monomial")
	if isZero(a) {
		return Constant(0)
	}
	if p == 0 {
		return Constant(a)
	}
	if inner == nil {
		return Expression{kind: KindMonomial, a: a, p: p, inner: nil}
	}
	if p == 1 {
		return WithCoefficient(*inner, inner.a*a)
	}
	g := *inner
	switch g.kind {
	case KindConstant:
		return Constant(a * math.Pow(g.a, p))
	case KindMonomial:
		// (b·h^q)^p = b^p · h^(p·q)
		return Monomial(a*math.Pow(g.a, p), p*g.p, g.inner)
	case KindNaturalExponent:
		// (b·exp(h))^p = b^p · exp(p·h)
		scaledInner := Monomial(p, 1, g.inner)
		return NaturalExponent(a*math.Pow(g.a, p), &scaledInner)
	case KindSum:
		if p > 0 && isInt(p) {
			factors := make([]Expression, int(p))
			for i := range factors {
				factors[i] = g
			}
			return scaleBy(Product(1, factors), a)
		}
		return Expression{kind: KindMonomial, a: a, p: p, inner: inner}
	case KindProduct:
		factors := make([]Expression, len(g.terms))
		for i := range g.terms {
			f := g.terms[i]
			factors[i] = Monomial(1, p, &f)
		}
		return Product(a*math.Pow(g.a, p), factors)
	}
	return Expression{kind: KindMonomial, a: a, p: p, inner: inner}
}

// NaturalExponent builds a·exp(g(x)), with g(x)=x when inner is nil.
// Constant terms found in a Sum inner are absorbed into the outer
// coefficient: exp(c + h) = exp(c)·exp(h).
func NaturalExponent(a float64, inner *Expression) Expression {
	mustFinite(a, "NaturalExponent")
	if isZero(a) {
		return Constant(0)
	}
	if inner == nil {
		return Expression{kind: KindNaturalExponent, a: a, inner: nil}
	}
	g := *inner
	if g.kind == KindConstant {
		return Constant(a * math.Exp(g.a))
	}
	if g.kind == KindSum {
		rest := make([]Expression, 0, len(g.terms))
		outer := a
		for _, t := range g.terms {
			if t.kind == KindConstant {
				outer *= math.Exp(t.a)
				continue
			}
			rest = append(rest, t)
		}
		if len(rest) != len(g.terms) {
			newInner := Sum(1, rest)
			return NaturalExponent(outer, &newInner)
		}
	}
	return Expression{kind: KindNaturalExponent, a: a, inner: inner}
}

// Sum builds a·Σ terms. The outer coefficient is distributed into every
// term; nested sums are flattened; terms of identical shape are merged
// by adding coefficients; zero terms are dropped. Zero terms collapse
// to Constant(0); a single surviving term is returned directly.
func Sum(a float64, terms []Expression) Expression {
	mustFinite(a, "Sum")
	if isZero(a) {
		return Constant(0)
	}

	// distribute the outer coefficient and flatten nested sums
	flat := make([]Expression, 0, len(terms))
	var flatten func(t Expression, factor float64)
	flatten = func(t Expression, factor float64) {
		scaled := scaleBy(t, factor)
		if scaled.kind == KindSum {
			for _, sub := range scaled.terms {
				flat = append(flat, sub)
			}
			return
		}
		if scaled.kind == KindConstant && scaled.a == 0 {
			return
		}
		flat = append(flat, scaled)
	}
	for _, t := range terms {
		flatten(t, a)
	}

	// aggregate terms of identical shape
	agg := make([]Expression, 0, len(flat))
	for _, t := range flat {
		merged := false
		for i, existing := range agg {
			if combined, ok := addCleanly(existing, t); ok {
				if combined.kind == KindConstant && combined.a == 0 {
					agg = append(agg[:i], agg[i+1:]...)
				} else {
					agg[i] = combined
				}
				merged = true
				break
			}
		}
		if !merged {
			agg = append(agg, t)
		}
	}

	switch len(agg) {
	case 0:
		return Constant(0)
	case 1:
		return agg[0]
	default:
		sortByShape(agg)
		return Expression{kind: KindSum, a: 1, terms: agg}
	}
}

// Product builds a·Π factors. Any sum among the (top-level) factors
// forces full distribution, so the result becomes a Sum rather than a
// Product. Nested products are flattened, constant factors and each
// factor's own coefficient are folded into the outer coefficient, and
// factors of identical shape are merged (exponents add for Monomials
// sharing the same inner, inner expressions add for NaturalExponents).
func Product(a float64, factors []Expression) Expression {
	mustFinite(a, "Product")
	if isZero(a) {
		return Constant(0)
	}
	for _, f := range factors {
		if f.kind == KindConstant && f.a == 0 {
			return Constant(0)
		}
	}

	// distribute over the first sum factor found, if any
	for i, f := range factors {
		if f.kind == KindSum {
			rest := make([]Expression, 0, len(factors)-1)
			rest = append(rest, factors[:i]...)
			rest = append(rest, factors[i+1:]...)
			summands := make([]Expression, len(f.terms))
			for j, term := range f.terms {
				combo := append(append([]Expression{}, rest...), term)
				summands[j] = Product(1, combo)
			}
			return Sum(a, summands)
		}
	}

	// flatten nested products and fold constants/per-factor coefficients
	outer := a
	flat := make([]Expression, 0, len(factors))
	var flatten func(f Expression)
	flatten = func(f Expression) {
		switch f.kind {
		case KindConstant:
			outer *= f.a
		case KindProduct:
			outer *= f.a
			for _, sub := range f.terms {
				flatten(sub)
			}
		default:
			outer *= f.a
			flat = append(flat, WithCoefficient(f, 1))
		}
	}
	for _, f := range factors {
		flatten(f)
	}
	if outer == 0 {
		return Constant(0)
	}

	// aggregate factors of identical shape
	agg := make([]Expression, 0, len(flat))
	for _, f := range flat {
		merged := false
		for i, existing := range agg {
			if combined, ok := multiplyCleanly(existing, f); ok {
				outer *= combined.a
				agg[i] = WithCoefficient(combined, 1)
				merged = true
				break
			}
		}
		if !merged {
			agg = append(agg, f)
		}
	}
	// drop any factor that degenerated to a trivial Monomial(1,0,_)/Constant
	pruned := agg[:0]
	for _, f := range agg {
		if f.kind == KindConstant {
			outer *= f.a
			continue
		}
		pruned = append(pruned, f)
	}
	agg = pruned

	switch len(agg) {
	case 0:
		return Constant(outer)
	case 1:
		return WithCoefficient(agg[0], agg[0].a*outer)
	default:
		sortByShape(agg)
		return Expression{kind: KindProduct, a: outer, terms: agg}
	}
}

// WithCoefficient returns the same shape as e with its outer coefficient
// replaced by a.
func WithCoefficient(e Expression, a float64) Expression {
	switch e.kind {
	case KindConstant:
		return Constant(a)
	case KindMonomial:
		return Monomial(a, e.p, e.inner)
	case KindNaturalExponent:
		return NaturalExponent(a, e.inner)
	case KindSum:
		return Sum(a, e.terms)
	case KindProduct:
		return Product(a, e.terms)
	}
	return e
}

// scaleBy multiplies the whole value of e by factor, i.e. it is
// WithCoefficient(e, e.a*factor).
func scaleBy(e Expression, factor float64) Expression {
	return WithCoefficient(e, e.a*factor)
}

// GaussianPDF builds the Gaussian probability density with standard
// deviation σ and mean μ:
//
//	gaussian(σ, μ) = (1/(σ·√(2π))) · exp(−(x−μ)²/(2σ²))
//
// expressed by composing a Monomial-expanded quadratic inside a
// NaturalExponent. Integrates to 1 over ℝ.
func GaussianPDF(sigma, mu float64) Expression {
	coeff := 1.0 / (sigma * math.Sqrt(2*math.Pi))
	shifted := Sum(1, []Expression{identity(), Constant(-mu)}) // x - μ
	quad := Monomial(1, 2, &shifted)                           // (x-μ)²
	inner := Monomial(-1.0/(2*sigma*sigma), 1, &quad)           // -(x-μ)²/(2σ²)
	return NaturalExponent(coeff, &inner)
}
