// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Factorise extracts common factors out of a Sum's terms and rewraps
// the result as a Product. Non-Sum expressions are returned
// unchanged. Only symbolic common factors are pulled out (a shared
// monomial base raised to the smallest exponent present in every term,
// or a shared natural-exponent factor); numeric GCD factoring across
// term coefficients is not attempted.
func (e Expression) Factorise() Expression {
	if e.kind != KindSum || len(e.terms) == 0 {
		return e
	}

	common := commonFactors(e.terms[0])
	for _, t := range e.terms[1:] {
		common = intersectFactors(common, commonFactors(t))
		if len(common) == 0 {
			return e
		}
	}

	commonProduct := Product(1, common)
	if isZeroExpression(commonProduct) {
		return e
	}
	if commonProduct.kind == KindConstant {
		// nothing structural in common (e.g. all terms are plain
		// constants); not worth rewrapping as a product.
		return e
	}

	quotients := make([]Expression, len(e.terms))
	for i, t := range e.terms {
		q, err := t.Divide(commonProduct)
		if err != nil {
			return e
		}
		quotients[i] = q
	}

	// Product() always distributes a literal Sum factor back out (that
	// is how e.g. x*(x+2) canonicalises to x^2+2x), which would undo
	// the factoring on the spot. The whole point of Factorise is to
	// hand back the un-distributed form, so this one assembly
	// deliberately builds the KindProduct node directly instead of
	// going through Product().
	terms := []Expression{WithCoefficient(commonProduct, 1), WithCoefficient(Sum(1, quotients), 1)}
	sortByShape(terms)
	return Expression{kind: KindProduct, a: e.a, terms: terms}
}

// commonFactors decomposes a single (non-Sum) term into its atomic
// multiplicative factors, each normalised to coefficient 1.
func commonFactors(t Expression) []Expression {
	switch t.kind {
	case KindProduct:
		factors := make([]Expression, len(t.terms))
		copy(factors, t.terms)
		return factors
	case KindMonomial, KindNaturalExponent:
		return []Expression{WithCoefficient(t, 1)}
	default:
		return nil
	}
}

// intersectFactors keeps only the factors shared by both lists: an
// exact shape match is kept as-is; two Monomials sharing an inner
// expression but differing exponents are kept at their smaller
// exponent (the largest power common to both terms).
func intersectFactors(a, b []Expression) []Expression {
	var out []Expression
	used := make([]bool, len(b))
	for _, fa := range a {
		for i, fb := range b {
			if used[i] {
				continue
			}
			if fa.Equal(fb) {
				out = append(out, fa)
				used[i] = true
				break
			}
			if fa.kind == KindMonomial && fb.kind == KindMonomial &&
				identityOrInner(fa.inner).Equal(identityOrInner(fb.inner)) {
				p := fa.p
				if fb.p < p {
					p = fb.p
				}
				out = append(out, Monomial(1, p, fa.inner))
				used[i] = true
				break
			}
		}
	}
	return out
}
