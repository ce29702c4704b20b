// SPDX-License-Identifier: MIT
// Package linalg: dense Gaussian elimination with partial pivoting.

package linalg

import "math"

// zeroPivot is the sentinel value for detecting a singular system: only
// an exactly-zero chosen pivot aborts, near-zero pivots proceed (the
// caller owns any conditioning policy).
const zeroPivot = 0.0

// SolveInPlace solves a·x = b by Gaussian elimination with partial
// pivoting, mutating BOTH a and b during elimination. That mutation is
// the documented contract of this fast path — callers who need their
// inputs preserved must pass copies, or call Solve.
//
// Algorithm Outline:
//  1. Validate shape: a must be n×n (no ragged rows) and len(b) == n,
//     else ErrDimensionMismatch.
//  2. For each pivot column i: pick the row j ≥ i maximizing |a[j][i]|
//     (partial pivoting). An exactly-zero pivot ⇒ ErrSingular.
//  3. Swap the pivot row into position i in both a and b, then eliminate
//     column i from every row below: factor = a[j][i]/a[i][i],
//     a[j][k] -= factor·a[i][k] for k ≥ i, b[j] -= factor·b[i].
//  4. Back-substitute the resulting upper-triangular system from row n−1
//     upward: x[j] = (b[j] − Σ_{k>j} a[j][k]·x[k]) / a[j][j].
//
// The trivial 0×0 system solves to an empty vector. Identical inputs
// always produce identical outputs: no randomness, no tolerance knobs.
//
// Errors:
//   - ErrDimensionMismatch — a not square, or len(b) ≠ n.
//   - ErrSingular          — zero pivot, no unique solution.
//
// Complexity: O(n³) time, O(n) memory.
func SolveInPlace(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}
	for _, row := range a {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}

	// Forward elimination with partial pivoting.
	for i := 0; i < n; i++ {
		// Find the row with the largest-magnitude coefficient in column i.
		pivot := i
		for j := i + 1; j < n; j++ {
			if math.Abs(a[j][i]) > math.Abs(a[pivot][i]) {
				pivot = j
			}
		}
		if a[pivot][i] == zeroPivot {
			return nil, ErrSingular
		}

		// Swap the pivot row into position in both matrix and vector.
		a[i], a[pivot] = a[pivot], a[i]
		b[i], b[pivot] = b[pivot], b[i]

		// Eliminate column i from every row below i.
		for j := i + 1; j < n; j++ {
			factor := a[j][i] / a[i][i]
			for k := i; k < n; k++ {
				a[j][k] -= factor * a[i][k]
			}
			b[j] -= factor * b[i]
		}
	}

	// Back-substitution over the upper-triangular system.
	x := make([]float64, n)
	for j := n - 1; j >= 0; j-- {
		sum := 0.0
		for k := j + 1; k < n; k++ {
			sum += a[j][k] * x[k]
		}
		x[j] = (b[j] - sum) / a[j][j]
	}

	return x, nil
}

// Solve solves a·x = b without touching the caller's data: both inputs
// are deep-copied internally, then handed to SolveInPlace. Same errors,
// same results, pure-function contract.
//
// Complexity: O(n³) time, O(n²) memory for the private copies.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	aCopy := make([][]float64, len(a))
	for i, row := range a {
		aCopy[i] = append([]float64(nil), row...)
	}
	bCopy := append([]float64(nil), b...)

	return SolveInPlace(aCopy, bCopy)
}
