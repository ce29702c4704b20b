// SPDX-License-Identifier: MIT
// Package measure: ring area via the translated shoelace formula.
//
// Both call paths below accumulate the IDENTICAL sum — same per-term
// expression, same iteration order, same final halving — so a ring
// measured through a coordinate list and through a sequence produces
// bit-for-bit equal results. Downstream code depends on that exact
// reproducibility; do not "simplify" one path without the other.

package measure

import (
	"math"

	"github.com/katalvlaran/planar/coord"
	"github.com/katalvlaran/planar/coordseq"
)

// minRingVertices is the smallest vertex count with nonzero area; shorter
// rings (degenerate and empty included) measure 0 by definition.
const minRingVertices = 3

// SignedArea computes the signed shoelace area of a closed ring given as
// an ordered coordinate list (first == last by convention; never
// verified).
//
// Algorithm Outline:
//  1. If the ring has fewer than 3 vertices, return 0.
//  2. Translate all X ordinates so the first vertex's X becomes the local
//     origin: x' = x − x0. Area is translation-invariant, and the small
//     summed magnitudes resist floating-point cancellation.
//  3. For i = 1..N−2 accumulate x'[i] · (y[i−1] − y[i+1]); because the
//     ring is closed, the skipped terms at i = 0 and i = N−1 contribute
//     x'[0] = 0 and the duplicate of the first vertex respectively.
//  4. Halve the total.
//
// Sign convention: positive = clockwise vertex order, negative =
// counter-clockwise, zero = degenerate/collinear.
//
// Complexity: O(N) time, O(1) memory.
func SignedArea(ring []coord.Coordinate) float64 {
	n := len(ring)
	if n < minRingVertices {
		return 0
	}

	sum := 0.0
	x0 := ring[0].X()
	for i := 1; i < n-1; i++ {
		x := ring[i].X() - x0
		y1 := ring[i+1].Y()
		y2 := ring[i-1].Y()
		sum += x * (y2 - y1)
	}

	return sum / 2
}

// Area returns the absolute shoelace area of a ring given as an ordered
// coordinate list. Rings shorter than 3 vertices measure 0.
func Area(ring []coord.Coordinate) float64 {
	return math.Abs(SignedArea(ring))
}

// SignedAreaOfSequence computes the signed shoelace area of a closed ring
// held in a sequence, iterating purely through the indexed-access
// contract with three rotating scratch coordinates (no intermediate list).
//
// The accumulation is term-for-term identical to SignedArea; see the file
// header. Returns ErrNilSequence for a nil sequence; rings shorter than
// 3 vertices measure 0.
//
// Complexity: O(N) time, O(1) memory.
func SignedAreaOfSequence(seq coordseq.Sequence) (float64, error) {
	if seq == nil {
		return 0, ErrNilSequence
	}
	n := seq.Len()
	if n < minRingVertices {
		return 0, nil
	}

	// p0/p1/p2 hold ring[i-1], ring[i], ring[i+1] as the loop advances.
	var p0, p1, p2 coord.Coordinate
	if err := seq.CopyInto(0, &p1); err != nil {
		return 0, err
	}
	if err := seq.CopyInto(1, &p2); err != nil {
		return 0, err
	}

	sum := 0.0
	x0 := p1.X()
	for i := 1; i < n-1; i++ {
		p0 = p1
		p1 = p2
		if err := seq.CopyInto(i+1, &p2); err != nil {
			return 0, err
		}
		x := p1.X() - x0
		y1 := p2.Y()
		y2 := p0.Y()
		sum += x * (y2 - y1)
	}

	return sum / 2, nil
}

// AreaOfSequence returns the absolute shoelace area of a ring held in a
// sequence. Returns ErrNilSequence for a nil sequence.
func AreaOfSequence(seq coordseq.Sequence) (float64, error) {
	signed, err := SignedAreaOfSequence(seq)
	if err != nil {
		return 0, err
	}

	return math.Abs(signed), nil
}
