// Package linalg provides a dense linear-system solver: Gaussian
// elimination with partial pivoting over an explicit n×n matrix and
// right-hand-side vector.
//
// The linalg package provides:
//
//   - SolveInPlace — the fast path: eliminates and back-substitutes
//     directly in the caller's matrix and vector. The mutation is an
//     explicit, documented contract, not a hidden side effect; callers
//     needing the originals preserved must pass a copy (or use Solve).
//   - Solve — the pure variant: deep-copies both inputs internally and
//     leaves the caller's data untouched.
//
// Partial pivoting — swapping in the remaining row with the
// largest-magnitude coefficient at each elimination step — maximizes
// numerical stability; an exactly-zero chosen pivot means the system is
// singular. Shape violations and singular systems surface as the
// distinct sentinels ErrDimensionMismatch and ErrSingular; callers that
// only care about "no solution" can treat both alike.
//
// The solver knows nothing about geometry. Higher-level constructions
// (see construct) reduce problems like the circumcentre to small systems
// and hand them here.
//
// Complexity: O(n³) time, O(n) extra memory for the solution vector.
package linalg
