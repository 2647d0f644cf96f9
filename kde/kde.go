// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kde assembles a Gaussian kernel density estimator with an
// automatically selected bandwidth, via the Improved Sheather-Jones
// fixed point. The experimental diffusion-bandwidth variant is out of
// scope and has no entry point here.
package kde

import "github.com/Areteos/arete-maths/expr"

// GaussianKDE builds a Gaussian KDE over samples (each carrying the
// corresponding weight) supported on [lower, upper], with its
// bandwidth chosen automatically. Samples are remapped to [0,1]
// internally; the weights are normalised to sum to 1 and the returned
// density is divided by upper-lower, so it integrates to 1 over the
// real line.
func GaussianKDE(samples, weights []float64, lower, upper float64) (func(x float64) float64, error) {
	if len(samples) == 0 {
		return nil, newInvalidInputError("no samples supplied")
	}
	if len(samples) != len(weights) {
		return nil, newInvalidInputError("len(samples)=%d does not match len(weights)=%d", len(samples), len(weights))
	}
	if lower >= upper {
		return nil, newInvalidInputError("lower=%v must be strictly less than upper=%v", lower, upper)
	}

	span := upper - lower
	remapped := make([]float64, len(samples))
	for i, s := range samples {
		remapped[i] = (s - lower) / span
	}
	w := normaliseWeights(weights)

	h := selectBandwidth(remapped, weights)

	kernels := make([]expr.Expression, len(remapped))
	for i, mu := range remapped {
		kernels[i] = expr.GaussianPDF(h, mu)
	}

	density := func(x float64) float64 {
		u := (x - lower) / span
		sum := 0.0
		for i, k := range kernels {
			v, err := k.Evaluate(u)
			if err != nil {
				continue
			}
			sum += w[i] * v
		}
		return sum / span
	}

	return density, nil
}
