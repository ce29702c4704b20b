// SPDX-License-Identifier: MIT
// Package construct: circumcentre via the perpendicular-bisector system.

package construct

import (
	"errors"

	"github.com/katalvlaran/planar/coord"
	"github.com/katalvlaran/planar/linalg"
)

// ErrCollinear indicates the three vertices lie on one line, so no
// circumcircle (and no circumcentre) exists.
var ErrCollinear = errors.New("construct: collinear vertices")

// Circumcentre returns the centre of the circle through the triangle
// p1-p2-p3: the unique point equidistant from all three vertices.
//
// Algorithm Outline:
//  1. Translate p2 and p3 so p1 becomes the local origin — the centre is
//     translation-equivariant, and small magnitudes resist cancellation.
//  2. A point (u, v) equidistant from the origin and a vertex (dx, dy)
//     satisfies 2·dx·u + 2·dy·v = dx² + dy². The two vertices give a 2×2
//     system, solved by linalg with partial pivoting.
//  3. Translate the solution back by p1.
//
// Collinear vertices make the system singular and yield ErrCollinear.
// Only the X and Y ordinates participate; the result is an XY coordinate.
//
// Complexity: O(1).
func Circumcentre(p1, p2, p3 coord.Coordinate) (coord.Coordinate, error) {
	dx2, dy2 := p2.X()-p1.X(), p2.Y()-p1.Y()
	dx3, dy3 := p3.X()-p1.X(), p3.Y()-p1.Y()

	a := [][]float64{
		{2 * dx2, 2 * dy2},
		{2 * dx3, 2 * dy3},
	}
	b := []float64{
		dx2*dx2 + dy2*dy2,
		dx3*dx3 + dy3*dy3,
	}

	// The system is built fresh above, so the mutating fast path is safe.
	x, err := linalg.SolveInPlace(a, b)
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return coord.Coordinate{}, ErrCollinear
		}

		return coord.Coordinate{}, err
	}

	return coord.NewXY(x[0]+p1.X(), x[1]+p1.Y()), nil
}
