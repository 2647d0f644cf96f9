// Copyright 2016 The Arete-Maths Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "math"

// SolveGaussian solves the dense system given by an augmented matrix
// (N rows, N+1 columns, the last column holding the right-hand side)
// by Gaussian elimination with scaled partial pivoting. It is the
// fallback used whenever the tridiagonal solver's dominance guard
// trips, so it never assumes banded structure.
//
// At each column the pivot row is chosen, among the rows with a
// non-zero leading entry, by the largest ratio of the leading entry's
// magnitude to the smallest non-zero magnitude among that row's
// remaining entries. This favours rows whose leading entry will not
// blow up when used to eliminate comparatively tiny coefficients.
func SolveGaussian(augmented [][]float64) ([]float64, error) {
	n := len(augmented)
	for i, row := range augmented {
		if len(row) != n+1 {
			return nil, newInvalidInputError("row %d has %d columns, want %d", i, len(row), n+1)
		}
	}

	a := make([][]float64, n)
	for i := range augmented {
		a[i] = append([]float64(nil), augmented[i]...)
	}

	for col := 0; col < n; col++ {
		pivot, ok := choosePivot(a, col)
		if !ok {
			return nil, &IndeterminateError{Column: col}
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				a[row][k] -= factor * a[col][k]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := a[i][n]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		if a[i][i] == 0 {
			return nil, &IndeterminateError{Column: i}
		}
		x[i] = sum / a[i][i]
	}
	return x, nil
}

// choosePivot finds, among rows >= col with a non-zero entry in
// column col, the row with the largest ratio of |a[row][col]| to the
// smallest non-zero magnitude among a[row][col+1:n].
func choosePivot(a [][]float64, col int) (int, bool) {
	n := len(a)
	best := -1
	bestRatio := -1.0
	for row := col; row < n; row++ {
		lead := math.Abs(a[row][col])
		if lead == 0 {
			continue
		}
		minOther := math.Inf(1)
		for k := col + 1; k < n; k++ {
			v := math.Abs(a[row][k])
			if v != 0 && v < minOther {
				minOther = v
			}
		}
		ratio := lead
		if !math.IsInf(minOther, 1) && minOther != 0 {
			ratio = lead / minOther
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = row
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
