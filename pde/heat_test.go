// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/Areteos/arete-maths/bc"
)

// Test_heat01_dirichlet_zero compares the θ-method solution of the
// heat equation u_t = k*u_xx on [0,L] with zero Dirichlet boundaries
// and u(0,x) = 6*sin(pi*x/L) against its closed-form analytic solution
// 6*sin(pi*x/L)*exp(-k*(pi/L)^2*t).
func Test_heat01_dirichlet_zero(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat01. theta-method matches the analytic heat-equation solution")

	type params struct{ k, L float64 }
	cases := []params{{3, 4}, {0, 1}, {10, 10}}
	thetas := []float64{0, 0.5, 1}

	for _, c := range cases {
		for _, theta := range thetas {
			k, L := c.k, c.L

			problem := Problem{
				Theta: theta,
				A:     func(t, x float64) float64 { return k },
				B:     func(t, x float64) float64 { return 0 },
				C:     func(t, x float64) float64 { return 0 },
				Lower: bc.DirichletConstant(0, 0),
				Upper: bc.DirichletConstant(L, 0),
				HMax:  L / 1000.0,
				Tau:   0.001,
			}

			u0 := func(x float64) float64 { return 6 * math.Sin(math.Pi*x/L) }
			solver, err := NewSolver(problem, InitialFunc(u0))
			if err != nil {
				tst.Fatalf("k=%v L=%v theta=%v: unexpected error: %v", k, L, theta, err)
			}

			tEnd := 10.0
			xMid := L / 2.0
			got, err := solver.Evaluate(tEnd, xMid)
			if err != nil {
				tst.Fatalf("k=%v L=%v theta=%v: unexpected error: %v", k, L, theta, err)
			}

			want := 6 * math.Sin(math.Pi*xMid/L) * math.Exp(-k*math.Pow(math.Pi/L, 2)*tEnd)
			chk.AnaNum(tst, "u(t,x/2)", 1e-2, want, got, false)
		}
	}
}

// manufactured builds an exact travelling-wave solution u(t,x) =
// exp(k*x + r*t) of f_t = A*f_xx + B*f_x for the given A, B and k,
// returning the growth rate r = A*k^2 + B*k and the solution/derivative
// themselves so Neumann and Robin boundary values can be derived from
// them exactly.
func manufactured(a, b, k float64) (r float64, u, ux func(t, x float64) float64) {
	r = a*k*k + b*k
	u = func(t, x float64) float64 { return math.Exp(k*x + r*t) }
	ux = func(t, x float64) float64 { return k * u(t, x) }
	return r, u, ux
}

// Test_heat04_neumann_manufactured drives a Neumann boundary, first at
// the lower end and then at the upper end, against the exact
// travelling-wave solution manufactured above; the Dirichlet end of
// each case is pinned to the exact value so any error is attributable
// to the Neumann row assembly alone.
func Test_heat04_neumann_manufactured(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat04. theta-method matches a manufactured solution under Neumann boundaries")

	const a, b, k, L = 1.0, 0.5, 1.0, 1.0
	_, u, ux := manufactured(a, b, k)

	problem := Problem{
		Theta: 0.5,
		A:     func(t, x float64) float64 { return a },
		B:     func(t, x float64) float64 { return b },
		C:     func(t, x float64) float64 { return 0 },
		HMax:  L / 50.0,
		Tau:   0.005,
	}

	tEnd, xMid := 0.2, L/2.0
	want := u(tEnd, xMid)

	tst.Run("lower", func(tst *testing.T) {
		p := problem
		p.Lower = bc.Neumann(0, func(t float64) float64 { return ux(t, 0) })
		p.Upper = bc.Dirichlet(L, func(t float64) float64 { return u(t, L) })
		solver, err := NewSolver(p, InitialFunc(func(x float64) float64 { return u(0, x) }))
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		got, err := solver.Evaluate(tEnd, xMid)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		chk.AnaNum(tst, "u(t,x/2)", 1e-2, want, got, false)
	})

	tst.Run("upper", func(tst *testing.T) {
		p := problem
		p.Lower = bc.Dirichlet(0, func(t float64) float64 { return u(t, 0) })
		p.Upper = bc.Neumann(L, func(t float64) float64 { return ux(t, L) })
		solver, err := NewSolver(p, InitialFunc(func(x float64) float64 { return u(0, x) }))
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		got, err := solver.Evaluate(tEnd, xMid)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		chk.AnaNum(tst, "u(t,x/2)", 1e-2, want, got, false)
	})
}

// Test_heat05_robin_manufactured mirrors Test_heat04_neumann_manufactured
// for a Robin boundary alpha*u + beta*u_x = v with constant alpha, beta.
func Test_heat05_robin_manufactured(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat05. theta-method matches a manufactured solution under Robin boundaries")

	const a, b, k, L = 1.0, 0.5, 1.0, 1.0
	const alpha, beta = 1.0, 1.0
	_, u, ux := manufactured(a, b, k)
	robinValue := func(t, x float64) float64 { return alpha*u(t, x) + beta*ux(t, x) }

	problem := Problem{
		Theta: 0.5,
		A:     func(t, x float64) float64 { return a },
		B:     func(t, x float64) float64 { return b },
		C:     func(t, x float64) float64 { return 0 },
		HMax:  L / 50.0,
		Tau:   0.005,
	}

	tEnd, xMid := 0.2, L/2.0
	want := u(tEnd, xMid)

	constAlpha := func(float64) float64 { return alpha }
	constBeta := func(float64) float64 { return beta }

	tst.Run("lower", func(tst *testing.T) {
		p := problem
		p.Lower = bc.Robin(0, func(t float64) float64 { return robinValue(t, 0) }, constAlpha, constBeta)
		p.Upper = bc.Dirichlet(L, func(t float64) float64 { return u(t, L) })
		solver, err := NewSolver(p, InitialFunc(func(x float64) float64 { return u(0, x) }))
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		got, err := solver.Evaluate(tEnd, xMid)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		chk.AnaNum(tst, "u(t,x/2)", 1e-2, want, got, false)
	})

	tst.Run("upper", func(tst *testing.T) {
		p := problem
		p.Lower = bc.Dirichlet(0, func(t float64) float64 { return u(t, 0) })
		p.Upper = bc.Robin(L, func(t float64) float64 { return robinValue(t, L) }, constAlpha, constBeta)
		solver, err := NewSolver(p, InitialFunc(func(x float64) float64 { return u(0, x) }))
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		got, err := solver.Evaluate(tEnd, xMid)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		chk.AnaNum(tst, "u(t,x/2)", 1e-2, want, got, false)
	})
}

func Test_heat02_invalid_input(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat02. reversed bounds and out-of-range theta are rejected")

	base := Problem{
		Theta: 0.5,
		A:     func(t, x float64) float64 { return 1 },
		B:     func(t, x float64) float64 { return 0 },
		C:     func(t, x float64) float64 { return 0 },
		Lower: bc.DirichletConstant(1, 0),
		Upper: bc.DirichletConstant(0, 0),
		HMax:  0.1,
		Tau:   0.01,
	}
	if _, err := NewSolver(base, InitialFunc(func(float64) float64 { return 0 })); err == nil {
		tst.Errorf("expected an InvalidInputError for reversed bounds")
	}

	base.Lower, base.Upper = bc.DirichletConstant(0, 0), bc.DirichletConstant(1, 0)
	base.Theta = 1.5
	if _, err := NewSolver(base, InitialFunc(func(float64) float64 { return 0 })); err == nil {
		tst.Errorf("expected an InvalidInputError for theta outside [0,1]")
	}
}

func Test_heat03_reverse_time_rejected(tst *testing.T) {

	//verbose()
	chk.PrintTitle("heat03. negative time is rejected as not implemented")

	problem := Problem{
		Theta: 0.5,
		A:     func(t, x float64) float64 { return 1 },
		B:     func(t, x float64) float64 { return 0 },
		C:     func(t, x float64) float64 { return 0 },
		Lower: bc.DirichletConstant(0, 0),
		Upper: bc.DirichletConstant(1, 0),
		HMax:  0.1,
		Tau:   0.01,
	}
	solver, err := NewSolver(problem, InitialFunc(func(x float64) float64 { return x * (1 - x) }))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if _, err := solver.Evaluate(-1, 0.5); err == nil {
		tst.Errorf("expected a NotImplementedError for negative time")
	}
}
