// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// checkFactorisation asserts that got is a 2-factor Product, that one
// of its factors equals wantFactor, and that got evaluates to the same
// values as the original sum at the given sample points — Factorise
// deliberately returns an un-distributed Product, so structural Equal
// against the original Sum does not hold; only evaluation does.
func checkFactorisation(tst *testing.T, got, original, wantFactor Expression, samples []float64) {
	tst.Helper()
	if got.kind != KindProduct || len(got.terms) != 2 {
		tst.Fatalf("expected a 2-factor product, got %v", got)
	}
	if !got.terms[0].Equal(wantFactor) && !got.terms[1].Equal(wantFactor) {
		tst.Errorf("expected one factor to be %v, got %v", wantFactor, got)
	}
	for _, x := range samples {
		want, err := original.Evaluate(x)
		if err != nil {
			tst.Fatalf("unexpected error evaluating the original sum: %v", err)
		}
		have, err := got.Evaluate(x)
		if err != nil {
			tst.Fatalf("unexpected error evaluating the factored form: %v", err)
		}
		chk.Scalar(tst, "factored(x)", 1e-12, have, want)
	}
}

func Test_factor01_common_monomial(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor01. 2x^3+4x^2 factors to x^2*(2x+4)")

	x := Monomial(1, 1, nil)
	sum := Sum(1, []Expression{
		Monomial(2, 3, &x),
		Monomial(4, 2, &x),
	})

	got := sum.Factorise()
	checkFactorisation(tst, got, sum, Monomial(1, 2, nil), []float64{-2, 0, 1, 3})
}

func Test_factor02_common_exponential(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor02. x*e^x+3*e^x factors to e^x*(x+3)")

	x := Monomial(1, 1, nil)
	ex := NaturalExponent(1, &x)
	sum := Sum(1, []Expression{
		Product(1, []Expression{x, ex}),
		Monomial(3, 1, &ex),
	})

	got := sum.Factorise()
	checkFactorisation(tst, got, sum, ex, []float64{-1, 0, 2})
}

func Test_factor03_no_common_factor(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor03. terms sharing nothing structural are returned unchanged")

	x := Monomial(1, 1, nil)
	sum := Sum(1, []Expression{Constant(5), Monomial(1, 2, &x)})

	got := sum.Factorise()
	if !got.Equal(sum) {
		tst.Errorf("expected Factorise to leave an un-factorable sum unchanged, got %v", got)
	}
}

func Test_factor04_non_sum_unchanged(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factor04. Factorise is the identity on non-Sum expressions")

	m := Monomial(2, 3, nil)
	if got := m.Factorise(); !got.Equal(m) {
		tst.Errorf("expected a non-Sum expression to pass through unchanged, got %v", got)
	}
}
