// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kde

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_kde01_smoke is a loose smoke test, not an asymptotic guarantee:
// the estimator built from samples of a known standard normal density
// integrates to 1 and tracks the true density to a coarse tolerance
// over the sampled support.
func Test_kde01_smoke(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kde01. gaussian KDE integrates to 1 and tracks a known density")

	rng := rand.New(rand.NewSource(1))
	n := 500
	samples := make([]float64, n)
	weights := make([]float64, n)
	for i := range samples {
		samples[i] = rng.NormFloat64()
		weights[i] = 1
	}

	lower, upper := -6.0, 6.0
	f, err := GaussianKDE(samples, weights, lower, upper)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	area := integrateTrapezoid(f, lower, upper, 4000)
	chk.Scalar(tst, "area", 5e-2, area, 1)

	trueDensity := func(x float64) float64 { return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi) }
	maxErr := 0.0
	for _, x := range []float64{-1.5, -0.5, 0, 0.5, 1.5} {
		got := f(x)
		want := trueDensity(x)
		if d := math.Abs(got - want); d > maxErr {
			maxErr = d
		}
	}
	if maxErr > 0.2 {
		tst.Errorf("KDE deviates too far from the true density: maxErr=%v", maxErr)
	}
}

func integrateTrapezoid(f func(float64) float64, lo, hi float64, n int) float64 {
	h := (hi - lo) / float64(n)
	sum := 0.0
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*h
		w := 1.0
		if i == 0 || i == n {
			w = 0.5
		}
		sum += w * f(x)
	}
	return sum * h
}

func Test_kde02_rejects_mismatched_weights(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kde02. mismatched samples/weights are rejected")

	if _, err := GaussianKDE([]float64{1, 2}, []float64{1}, 0, 3); err == nil {
		tst.Errorf("expected an InvalidInputError for mismatched lengths")
	}
}
