// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kde

import (
	"math"

	"github.com/Areteos/arete-maths/expr"
)

// stages is the recursion depth `l` of the Improved Sheather-Jones
// fixed point, the recommended default.
const stages = 5

// isjXi is the fixed constant ((6*sqrt(2)-3)/7)^0.4 used to map the
// stage-1 functional estimate into the next squared-bandwidth iterate.
var isjXi = math.Pow((6*math.Sqrt2-3)/7, 0.4)

// selectBandwidth runs the Improved Sheather-Jones fixed point on
// samples remapped to [0,1] and returns the selected standard
// deviation sqrt(z).
func selectBandwidth(samples, weights []float64) float64 {
	w := normaliseWeights(weights)
	n := len(samples)

	spread := sampleSpread(samples)
	z := spread * spread / 64 // a modest plug-in seed, refined below

	const maxIter = 200
	for iter := 0; iter < maxIter; iter++ {
		zNew := isjXi * gammaStage(1, z, samples, w, float64(n))
		converged := iter >= 10 && math.Abs(zNew-z) < 1e-12
		z = zNew
		if converged {
			break
		}
	}
	if z <= 0 || math.IsNaN(z) {
		z = spread * spread / 64
	}
	return math.Sqrt(z)
}

// gammaStage implements gamma_j(z) from the ISJ recursion: it needs
// the squared functional ||f^(j+1)||^2 at a bandwidth obtained either
// by recursing to stage j+1 (for j<stages) or, at the deepest stage,
// by evaluating the functional directly at the current iterate z.
func gammaStage(j int, z float64, samples, weights []float64, n float64) float64 {
	var fNext float64
	if j == stages {
		fNext = functional(j+1, z, samples, weights)
	} else {
		zNext := gammaStage(j+1, z, samples, weights, n)
		fNext = functional(j+1, zNext, samples, weights)
	}
	if fNext <= 0 {
		fNext = 1e-300
	}

	numerator := (1 + math.Pow(2, -(float64(j)+0.5))) / 3 * doubleFactorial(2*j-1)
	denom := n * math.Sqrt(math.Pi/2) * fNext
	return math.Pow(numerator/denom, 2.0/(3.0+2.0*float64(j)))
}

// functional estimates ||f^(j)||^2(z), the squared L2 norm of the j-th
// derivative of the kernel density at bandwidth sqrt(z), from the
// closed-form 2j-th derivative of a standard Gaussian evaluated
// pairwise over every pair of (weighted) samples. Integrating by parts
// gives ||f^(j)||^2 = (-1)^j * integral(f * f^(2j)), and the pairwise
// product of two kernels of variance z is a Gaussian of variance 2z.
func functional(j int, z float64, samples, weights []float64) float64 {
	sigma := math.Sqrt(2 * z)
	if sigma <= 0 {
		sigma = 1e-12
	}
	deriv := expr.GaussianPDF(1, 0).DifferentiateN(2 * j)

	total := 0.0
	for i := range samples {
		for l := range samples {
			d := (samples[i] - samples[l]) / sigma
			v, err := deriv.Evaluate(d)
			if err != nil {
				continue
			}
			// rescale the standard-normal derivative to bandwidth sigma:
			// d^(2j)/dx^(2j) N(x;0,sigma) = sigma^-(2j+1) * phi^(2j)((x)/sigma)
			scaled := v / math.Pow(sigma, float64(2*j+1))
			total += weights[i] * weights[l] * scaled
		}
	}
	if j%2 == 1 {
		total = -total
	}
	return total
}

func doubleFactorial(n int) float64 {
	result := 1.0
	for k := n; k > 1; k -= 2 {
		result *= float64(k)
	}
	return result
}

func normaliseWeights(weights []float64) []float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	if sum == 0 {
		return out
	}
	for i, w := range weights {
		out[i] = w / sum
	}
	return out
}

func sampleSpread(samples []float64) float64 {
	if len(samples) == 0 {
		return 1
	}
	lo, hi := samples[0], samples[0]
	for _, s := range samples {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if hi == lo {
		return 1
	}
	return hi - lo
}
