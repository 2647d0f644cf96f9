// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/Areteos/arete-maths/bc"
	"github.com/Areteos/arete-maths/linalg"
)

// Solver owns a growing history of time levels for a single Problem.
// AdvanceTo mutates that history; Evaluate reads it. A Solver is not
// safe for concurrent AdvanceTo calls, but concurrent read-only
// Evaluate calls are safe once the relevant time levels have been
// written (happens-before from AdvanceTo to
// the read).
type Solver struct {
	problem Problem
	grid    []float64
	h       float64

	times  []float64
	levels [][]float64

	// Verbose prints one line per accepted step, in the style of
	// fem.DynCoefs.Print; off by default, never required for correctness.
	Verbose bool
}

// NewSolver builds a Solver over a uniform grid spanning
// [problem.Lower.Location, problem.Upper.Location] with spacing no
// larger than problem.HMax, seeded with the given initial condition.
func NewSolver(problem Problem, initial Initial) (*Solver, error) {
	lo, hi := problem.Lower.Location, problem.Upper.Location
	if lo > hi {
		return nil, newInvalidInputError("lower bound location %v exceeds upper bound location %v", lo, hi)
	}
	if problem.Theta < 0 || problem.Theta > 1 {
		return nil, newInvalidInputError("theta=%v must lie in [0,1]", problem.Theta)
	}
	if problem.HMax <= 0 {
		return nil, newInvalidInputError("HMax=%v must be positive", problem.HMax)
	}
	if problem.Tau <= 0 {
		return nil, newInvalidInputError("Tau=%v must be positive", problem.Tau)
	}

	rng := hi - lo
	n := 1
	if rng > 0 {
		n = int(math.Ceil(rng / problem.HMax))
	}
	h := rng / float64(n)
	grid := utl.LinSpace(lo, hi, n+1)

	u0 := initial.sample(grid, h)

	return &Solver{
		problem: problem,
		grid:    grid,
		h:       h,
		times:   []float64{0},
		levels:  [][]float64{u0},
	}, nil
}

// Time returns the current simulated time, the end of the history.
func (s *Solver) Time() float64 {
	return s.times[len(s.times)-1]
}

// AdvanceTo grows the time-level history until it covers t, stepping
// by problem.Tau. As documented for the source this is modelled on,
// the loop condition overshoots by up to one step: after AdvanceTo(t)
// the history covers [0, t+Tau].
func (s *Solver) AdvanceTo(t float64) error {
	for s.Time() <= t {
		if err := s.step(); err != nil {
			return err
		}
	}
	return nil
}

// step advances the solver by one time step of size problem.Tau.
func (s *Solver) step() error {
	p := s.problem
	tau := p.Tau
	theta := p.Theta
	n := len(s.grid) - 1 // number of intervals; N+1 nodes

	curT := s.Time()
	newT := curT + tau
	opT := newT + tau*theta

	prev := s.levels[len(s.levels)-1]

	lowerFixed := p.Lower.Kind == bc.KindDirichlet
	upperFixed := p.Upper.Kind == bc.KindDirichlet

	// unknown[i] is the position of node i in the reduced system, or -1 if fixed.
	unknown := make([]int, n+1)
	k := 0
	for i := 0; i <= n; i++ {
		if (i == 0 && lowerFixed) || (i == n && upperFixed) {
			unknown[i] = -1
			continue
		}
		unknown[i] = k
		k++
	}
	size := k

	sub := make([]float64, 0, size)
	diag := make([]float64, size)
	super := make([]float64, 0, size)
	rhs := make([]float64, size)

	for i := 0; i <= n; i++ {
		if unknown[i] < 0 {
			continue
		}
		row := unknown[i]
		switch {
		case i > 0 && i < n:
			s.assembleInterior(row, i, opT, theta, tau, prev, unknown, &sub, diag, &super, rhs)
		case i == 0:
			s.assembleLower(row, curT, opT, theta, tau, prev, &super, diag, rhs)
		default: // i == n
			s.assembleUpper(row, curT, opT, theta, tau, prev, &sub, diag, rhs)
		}
	}

	x, err := linalg.Tridiagonal{A: sub, B: diag, C: super, D: rhs, CheckDominance: true}.Solve()
	if err != nil {
		if _, ok := err.(*linalg.InstabilityError); !ok {
			return err
		}
		if s.Verbose {
			io.Pfgrey("pde: tridiagonal guard tripped at t=%v, falling back to Gaussian\n", newT)
		}
		aug := denseFromBands(sub, diag, super, rhs)
		x, err = linalg.SolveGaussian(aug)
		if err != nil {
			return err
		}
	}

	next := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		if unknown[i] < 0 {
			if i == 0 {
				next[i] = p.Lower.Value(newT)
			} else {
				next[i] = p.Upper.Value(newT)
			}
			continue
		}
		next[i] = x[unknown[i]]
	}

	s.times = append(s.times, newT)
	s.levels = append(s.levels, next)

	if s.Verbose {
		io.Pfgrey("pde: accepted step to t=%v\n", newT)
	}
	return nil
}

// nodeCoeffs evaluates the per-node (sub, diag, super) triple such
// that sub*u[i-1] + diag*u[i] + super*u[i+1] == -(A*D2+B*D1+C)*u[i].
func (s *Solver) nodeCoeffs(t, x float64) (sub, diag, super float64) {
	a := s.problem.A(t, x)
	b := s.problem.B(t, x)
	c := s.problem.C(t, x)
	h := s.h
	sub = b/(2*h) - a/(h*h)
	diag = 2*a/(h*h) - c
	super = -a/(h*h) - b/(2*h)
	return
}

func (s *Solver) assembleInterior(row, i int, opT, theta, tau float64, prev []float64, unknown []int, sub *[]float64, diag []float64, super *[]float64, rhs []float64) {
	x := s.grid[i]
	cSub, cDiag, cSuper := s.nodeCoeffs(opT, x)

	diag[row] = 1/tau + theta*cDiag
	rhs[row] = prev[i]/tau - (1-theta)*(cSub*prev[i-1]+cDiag*prev[i]+cSuper*prev[i+1])

	if unknown[i-1] < 0 {
		v := s.boundaryValueAt(i-1, opT)
		rhs[row] -= theta * cSub * v
	} else {
		*sub = append(*sub, theta*cSub)
	}
	if unknown[i+1] < 0 {
		v := s.boundaryValueAt(i+1, opT)
		rhs[row] -= theta * cSuper * v
	} else {
		*super = append(*super, theta*cSuper)
	}
}

// boundaryValueAt returns the pinned Dirichlet value at node i (which
// must be an endpoint) evaluated at time t.
func (s *Solver) boundaryValueAt(i int, t float64) float64 {
	if i == 0 {
		return s.problem.Lower.Value(t)
	}
	return s.problem.Upper.Value(t)
}

// assembleLower folds the ghost node outside the lower boundary into the
// row for node 0. For Neumann/Robin, the ghost value u[-1] is eliminated
// via the centred derivative alpha(t)*u0 + beta(t)*u_x = v(t), which
// substitutes into the usual sub*u[-1]+diag*u0+super*u1 row to fuse
// sub and super into a single coefficient on u1 and turns the boundary
// condition into a diagonal correction plus a forcing term on the RHS.
// The forcing term is evaluated at curT (the explicit, (1-theta) share)
// and opT (the implicit, theta share), mirroring how fused itself is
// split between the two time levels below.
func (s *Solver) assembleLower(row int, curT, opT, theta, tau float64, prev []float64, super *[]float64, diag []float64, rhs []float64) {
	p := s.problem
	x0 := s.grid[0]
	cSub, cDiag, cSuper := s.nodeCoeffs(opT, x0)
	fused := cSub + cSuper

	effDiag := cDiag
	if p.Lower.Kind == bc.KindRobin {
		alpha := p.Lower.Alpha(opT)
		beta := p.Lower.Beta(opT)
		effDiag += 2 * s.h * alpha / beta * cSub
	}

	diag[row] = 1/tau + theta*effDiag
	*super = append(*super, theta*fused)
	rhs[row] = prev[0]/tau - (1-theta)*(effDiag*prev[0]+fused*prev[1])

	switch p.Lower.Kind {
	case bc.KindNeumann:
		vNew, vOld := p.Lower.Value(opT), p.Lower.Value(curT)
		rhs[row] += 2 * s.h * cSub * (theta*vNew + (1-theta)*vOld)
	case bc.KindRobin:
		beta := p.Lower.Beta(opT)
		vNew, vOld := p.Lower.Value(opT), p.Lower.Value(curT)
		rhs[row] += 2 * s.h * cSub / beta * (theta*vNew + (1-theta)*vOld)
	}
}

// assembleUpper is assembleLower's mirror image at the last node: the
// ghost node u[N+1] is eliminated the same way, fusing sub and super
// into a single coefficient on u[N-1].
func (s *Solver) assembleUpper(row int, curT, opT, theta, tau float64, prev []float64, sub *[]float64, diag []float64, rhs []float64) {
	p := s.problem
	n := len(s.grid) - 1
	xN := s.grid[n]
	cSub, cDiag, cSuper := s.nodeCoeffs(opT, xN)
	fused := cSub + cSuper

	effDiag := cDiag
	if p.Upper.Kind == bc.KindRobin {
		alpha := p.Upper.Alpha(opT)
		beta := p.Upper.Beta(opT)
		effDiag -= 2 * s.h * alpha / beta * cSuper
	}

	diag[row] = 1/tau + theta*effDiag
	*sub = append(*sub, theta*fused)
	rhs[row] = prev[n]/tau - (1-theta)*(effDiag*prev[n]+fused*prev[n-1])

	switch p.Upper.Kind {
	case bc.KindNeumann:
		vNew, vOld := p.Upper.Value(opT), p.Upper.Value(curT)
		rhs[row] -= 2 * s.h * cSuper * (theta*vNew + (1-theta)*vOld)
	case bc.KindRobin:
		beta := p.Upper.Beta(opT)
		vNew, vOld := p.Upper.Value(opT), p.Upper.Value(curT)
		rhs[row] -= 2 * s.h * cSuper / beta * (theta*vNew + (1-theta)*vOld)
	}
}

// denseFromBands repacks a tridiagonal system into a full augmented
// matrix for the Gaussian fallback, zeros elsewhere.
func denseFromBands(sub, diag, super, rhs []float64) [][]float64 {
	n := len(diag)
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, n+1)
		aug[i][i] = diag[i]
		if i > 0 {
			aug[i][i-1] = sub[i-1]
		}
		if i < n-1 {
			aug[i][i+1] = super[i]
		}
		aug[i][n] = rhs[i]
	}
	return aug
}
