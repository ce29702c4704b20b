// SPDX-License-Identifier: MIT
// Package measure: polyline length.

package measure

import (
	"math"

	"github.com/katalvlaran/planar/coord"
	"github.com/katalvlaran/planar/coordseq"
)

// Length sums the 2D Euclidean distances between consecutive coordinates
// of seq, iterating purely through the indexed-access contract with one
// reused scratch coordinate (no intermediate list is materialized).
//
// Each segment uses math.Hypot, which avoids the intermediate
// overflow/underflow of squaring the deltas directly. Sequences of size
// ≤ 1 have length exactly 0. Returns ErrNilSequence for a nil sequence.
//
// Complexity: O(N) time, O(1) memory.
func Length(seq coordseq.Sequence) (float64, error) {
	if seq == nil {
		return 0, ErrNilSequence
	}
	n := seq.Len()
	if n <= 1 {
		return 0, nil
	}

	var p coord.Coordinate
	if err := seq.CopyInto(0, &p); err != nil {
		return 0, err
	}
	prevX, prevY := p.X(), p.Y()

	sum := 0.0
	for i := 1; i < n; i++ {
		if err := seq.CopyInto(i, &p); err != nil {
			return 0, err
		}
		sum += math.Hypot(p.X()-prevX, p.Y()-prevY)
		prevX, prevY = p.X(), p.Y()
	}

	return sum, nil
}

// LengthOfCoordinates sums the 2D Euclidean distances between
// consecutive coordinates of a plain ordered list — the list-path twin of
// Length. Lists of size ≤ 1 have length exactly 0.
//
// Complexity: O(N) time, O(1) memory.
func LengthOfCoordinates(pts []coord.Coordinate) float64 {
	sum := 0.0
	for i := 1; i < len(pts); i++ {
		sum += math.Hypot(pts[i].X()-pts[i-1].X(), pts[i].Y()-pts[i-1].Y())
	}

	return sum
}
