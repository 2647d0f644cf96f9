// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pde discretises the 1-D second-order linear parabolic
// equation f_t = A(t,x)*f_xx + B(t,x)*f_x + C(t,x)*f with a θ-method
// finite-difference scheme, reducing every time step to a tridiagonal
// solve handed to package linalg.
package pde

import (
	"sort"

	"github.com/Areteos/arete-maths/bc"
)

// Problem collects the coefficient functions, boundary conditions and
// discretisation parameters that define a single PDE instance.
type Problem struct {
	Theta      float64
	A, B, C    func(t, x float64) float64
	Lower      bc.BoundaryCondition
	Upper      bc.BoundaryCondition
	HMax       float64
	Tau        float64
}

// WeightedSample is one (location, weight) pair used to build an
// initial condition out of point masses rather than a closed-form
// function, e.g. when seeding a solver from empirical data.
type WeightedSample struct {
	Location float64
	Weight   float64
}

// Initial supplies the grid-sampled initial condition u(0,x) once the
// solver knows its spatial grid.
type Initial interface {
	sample(grid []float64, h float64) []float64
}

type initialFunc struct {
	f func(x float64) float64
}

func (i initialFunc) sample(grid []float64, h float64) []float64 {
	u := make([]float64, len(grid))
	for k, x := range grid {
		u[k] = i.f(x)
	}
	return u
}

// InitialFunc builds an initial condition by sampling f at every grid node.
func InitialFunc(f func(x float64) float64) Initial {
	return initialFunc{f: f}
}

type initialSamples struct {
	samples []WeightedSample
}

// sample deposits each sample's weight into every node within ±h of
// its location, consuming the samples in sorted-by-location order.
func (i initialSamples) sample(grid []float64, h float64) []float64 {
	ordered := append([]WeightedSample(nil), i.samples...)
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].Location < ordered[b].Location })

	u := make([]float64, len(grid))
	for _, s := range ordered {
		for k, x := range grid {
			if absFloat(s.Location-x) <= h {
				u[k] += s.Weight
			}
		}
	}
	return u
}

// InitialSamples builds an initial condition from weighted point masses.
func InitialSamples(samples []WeightedSample) Initial {
	return initialSamples{samples: samples}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
