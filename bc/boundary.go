// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bc holds the boundary conditions that close a 1-D parabolic
// PDE problem at its two endpoints.
package bc

// Kind identifies which of the three classical boundary conditions a
// BoundaryCondition enforces.
type Kind int

const (
	// KindDirichlet pins the solution value itself: u(location,t) = Value(t).
	KindDirichlet Kind = iota
	// KindNeumann pins the spatial derivative: u_x(location,t) = Value(t).
	KindNeumann
	// KindRobin enforces a linear combination: Alpha(t)*u + Beta(t)*u_x = Value(t).
	KindRobin
)

func (k Kind) String() string {
	switch k {
	case KindDirichlet:
		return "Dirichlet"
	case KindNeumann:
		return "Neumann"
	case KindRobin:
		return "Robin"
	default:
		return "unknown"
	}
}

// BoundaryCondition describes the constraint imposed at one endpoint of
// the spatial domain. Value, Alpha and Beta are time-dependent; a
// condition that does not vary in time should return a constant from a
// closure.
type BoundaryCondition struct {
	Kind     Kind
	Location float64
	Value    func(t float64) float64
	Alpha    func(t float64) float64
	Beta     func(t float64) float64
}

// Dirichlet builds a Dirichlet condition u(location,t) = v(t).
func Dirichlet(location float64, v func(t float64) float64) BoundaryCondition {
	return BoundaryCondition{Kind: KindDirichlet, Location: location, Value: v}
}

// Neumann builds a Neumann condition u_x(location,t) = v(t).
func Neumann(location float64, v func(t float64) float64) BoundaryCondition {
	return BoundaryCondition{Kind: KindNeumann, Location: location, Value: v}
}

// Robin builds a Robin condition alpha(t)*u + beta(t)*u_x = v(t) at
// location.
func Robin(location float64, v, alpha, beta func(t float64) float64) BoundaryCondition {
	return BoundaryCondition{Kind: KindRobin, Location: location, Value: v, Alpha: alpha, Beta: beta}
}

// constantFn returns a time function that always evaluates to v, a
// convenience for callers building stationary boundary conditions.
func constantFn(v float64) func(float64) float64 {
	return func(float64) float64 { return v }
}

// DirichletConstant builds a time-invariant Dirichlet condition.
func DirichletConstant(location, v float64) BoundaryCondition {
	return Dirichlet(location, constantFn(v))
}

// NeumannConstant builds a time-invariant Neumann condition.
func NeumannConstant(location, v float64) BoundaryCondition {
	return Neumann(location, constantFn(v))
}

// RobinConstant builds a time-invariant Robin condition.
func RobinConstant(location, v, alpha, beta float64) BoundaryCondition {
	return Robin(location, constantFn(v), constantFn(alpha), constantFn(beta))
}
