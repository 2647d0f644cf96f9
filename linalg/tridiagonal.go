// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg solves the small dense and banded linear systems that
// the PDE solver produces at every time step: a tridiagonal solve by
// the Thomas algorithm, guarded against numerical instability, with a
// pivoted Gaussian elimination fallback.
package linalg

import "math"

// Tridiagonal is a linear system A*x = D where A is tridiagonal with
// sub-diagonal a, main diagonal b and super-diagonal c. Row i of the
// system reads a[i-1]*x[i-1] + b[i]*x[i] + c[i]*x[i+1] = d[i], so A has
// length N-1, B and D have length N, and C has length N-1.
type Tridiagonal struct {
	A, B, C, D []float64

	// CheckDominance requests the strict diagonal-dominance guard
	// before elimination; when it trips, Solve returns *InstabilityError
	// instead of a (possibly garbage) answer.
	CheckDominance bool
}

// Solve runs the Thomas algorithm: one forward elimination sweep
// followed by back substitution, O(N) in the number of unknowns. The
// receiver's slices are read-only; Solve works on private copies.
func (t Tridiagonal) Solve() ([]float64, error) {
	n := len(t.B)
	if len(t.D) != n {
		return nil, newInvalidInputError("len(D)=%d does not match len(B)=%d", len(t.D), n)
	}
	if len(t.A) != n-1 || len(t.C) != n-1 {
		return nil, newInvalidInputError("len(A)=%d and len(C)=%d must both equal len(B)-1=%d", len(t.A), len(t.C), n-1)
	}
	if n == 0 {
		return nil, newInvalidInputError("system has no unknowns")
	}

	if t.CheckDominance {
		if row, ok := t.dominanceViolation(); !ok {
			return nil, &InstabilityError{Row: row}
		}
	}

	cp := make([]float64, n-1)
	dp := make([]float64, n)

	if t.B[0] == 0 {
		return nil, &InstabilityError{Row: 0}
	}
	cp[0] = t.C[0] / t.B[0]
	dp[0] = t.D[0] / t.B[0]

	for i := 1; i < n; i++ {
		denom := t.B[i]
		if i-1 < len(t.A) {
			denom -= t.A[i-1] * cp[i-1]
		}
		if denom == 0 {
			return nil, &InstabilityError{Row: i}
		}
		if i < n-1 {
			cp[i] = t.C[i] / denom
		}
		dp[i] = (t.D[i] - t.A[i-1]*dp[i-1]) / denom
	}

	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x, nil
}

// dominanceViolation reports the first row, if any, where the diagonal
// entry fails to strictly dominate the sum of its off-diagonal row
// entries: |b_i| > |a_{i-1}| + |c_i|.
func (t Tridiagonal) dominanceViolation() (row int, dominant bool) {
	n := len(t.B)
	for i := 0; i < n; i++ {
		off := 0.0
		if i > 0 {
			off += math.Abs(t.A[i-1])
		}
		if i < n-1 {
			off += math.Abs(t.C[i])
		}
		if math.Abs(t.B[i]) <= off {
			return i, false
		}
	}
	return 0, true
}
