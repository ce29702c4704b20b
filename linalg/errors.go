// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set. Algorithms MUST return these
// sentinels and tests MUST check them via errors.Is; no panics on
// user-triggered conditions.

package linalg

import "errors"

var (
	// ErrDimensionMismatch indicates that the matrix is not square (ragged
	// rows included) or the vector length differs from the matrix side.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular is returned when the largest-magnitude pivot available
	// for some elimination column is exactly zero: the system has no
	// unique solution.
	ErrSingular = errors.New("linalg: singular matrix")
)
