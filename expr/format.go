// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
)

// String renders e with 6 significant figures, e.g. "3x^2", "6e^(2x)",
// "a + b", "3(a + b)".
func (e Expression) String() string {
	return e.StringSig(6)
}

// StringSig renders e with the given number of significant figures for
// every numeric coefficient/exponent.
func (e Expression) StringSig(sigFigs int) string {
	return render(e, sigFigs)
}

func formatNum(a float64, sigFigs int) string {
	return strconv.FormatFloat(a, 'g', sigFigs, 64)
}

// render renders the full value of e, coefficient included.
func render(e Expression, sig int) string {
	switch e.kind {
	case KindConstant:
		return formatNum(e.a, sig)

	case KindMonomial:
		base := "x"
		if e.inner != nil {
			base = renderAtom(*e.inner, sig)
		}
		body := base
		if e.p != 1 {
			body = io.Sf("%s^%s", base, formatNum(e.p, sig))
		}
		return prefixCoefficient(e.a, body, sig)

	case KindNaturalExponent:
		inner := "x"
		if e.inner != nil {
			inner = renderAtom(*e.inner, sig)
		}
		return prefixCoefficient(e.a, io.Sf("e^%s", inner), sig)

	case KindSum:
		parts := make([]string, len(e.terms))
		for i, t := range e.terms {
			parts[i] = render(t, sig)
		}
		body := strings.Join(parts, " + ")
		body = strings.ReplaceAll(body, "+ -", "- ")
		if e.a == 1 {
			return body
		}
		return io.Sf("%s(%s)", formatNum(e.a, sig), body)

	case KindProduct:
		parts := make([]string, len(e.terms))
		for i, t := range e.terms {
			parts[i] = renderFactor(t, sig)
		}
		return prefixCoefficient(e.a, strings.Join(parts, "·"), sig)
	}
	return ""
}

// renderAtom renders e for use as the "g" slot inside ^ or e^, wrapping
// it in parentheses unless it is the bare identity or a constant.
func renderAtom(e Expression, sig int) string {
	if e.kind == KindMonomial && e.inner == nil && e.p == 1 && e.a == 1 {
		return "x"
	}
	s := render(e, sig)
	if e.kind == KindConstant {
		return s
	}
	return io.Sf("(%s)", s)
}

// renderFactor renders one factor of a Product, parenthesising Sums.
func renderFactor(e Expression, sig int) string {
	s := render(e, sig)
	if e.kind == KindSum {
		return io.Sf("(%s)", s)
	}
	return s
}

func prefixCoefficient(a float64, body string, sig int) string {
	if a == 1 {
		return body
	}
	if a == -1 {
		return "-" + body
	}
	return formatNum(a, sig) + body
}
