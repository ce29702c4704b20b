// SPDX-License-Identifier: MIT
// Package coordseq: object-backed sequence variant.
// ArraySequence stores discrete coord.Coordinate values in a Go slice.
// It is the natural encoding when coordinates already exist as values and
// the caller wants zero-copy adoption of its slice.

package coordseq

import "github.com/katalvlaran/planar/coord"

// ArraySequence is the object-backed Sequence variant: one owned
// coord.Coordinate per entry. The coordinate kind (and with it dimension
// and measure count) is fixed at creation.
type ArraySequence struct {
	kind coord.Kind
	pts  []coord.Coordinate
}

// compile-time conformance check
var _ Sequence = (*ArraySequence)(nil)

// NewArraySequence returns an ArraySequence of exactly size entries, each
// initialized to the origin of the clamped kind (x=y=0, absent ordinates
// NaN). Negative size is coerced to 0; dimension and measures are clamped
// per coord.KindFor. Coercion is silent, never an error.
// Complexity: O(size).
func NewArraySequence(size, dimension, measures int) *ArraySequence {
	if size < 0 {
		size = 0
	}
	kind := coord.KindFor(dimension, measures)

	pts := make([]coord.Coordinate, size)
	for i := range pts {
		pts[i] = coord.New(kind, 0, 0)
	}

	return &ArraySequence{kind: kind, pts: pts}
}

// NewArraySequenceOf adopts pts as the sequence's backing storage without
// copying — mutations through either the slice or the sequence are
// visible to both. The coordinates are expected to share one kind, which
// is taken from the first element (empty slices yield an XY sequence).
// Complexity: O(1).
func NewArraySequenceOf(pts []coord.Coordinate) *ArraySequence {
	kind := coord.XY
	if len(pts) > 0 {
		kind = pts[0].Kind()
	}

	return &ArraySequence{kind: kind, pts: pts}
}

// Len returns the number of coordinates in the sequence.
func (s *ArraySequence) Len() int { return len(s.pts) }

// Dimension returns the total ordinate count stored per coordinate.
func (s *ArraySequence) Dimension() int { return s.kind.Dimension() }

// Measures returns the number of measure ordinates per coordinate.
func (s *ArraySequence) Measures() int { return s.kind.Measures() }

// Kind returns the coordinate kind shared by every entry.
func (s *ArraySequence) Kind() coord.Kind { return s.kind }

// At returns a copy of the coordinate at index i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (s *ArraySequence) At(i int) (coord.Coordinate, error) {
	if i < 0 || i >= len(s.pts) {
		return coord.Coordinate{}, ErrIndexOutOfRange
	}

	return s.pts[i], nil
}

// CopyInto writes the coordinate at index i into dst, or returns
// ErrIndexOutOfRange leaving dst untouched.
// Complexity: O(1).
func (s *ArraySequence) CopyInto(i int, dst *coord.Coordinate) error {
	if i < 0 || i >= len(s.pts) {
		return ErrIndexOutOfRange
	}
	*dst = s.pts[i]

	return nil
}

// SetAt overwrites the coordinate at index i, coercing c onto the
// sequence's kind so the per-element layout invariant holds (ordinates c
// lacks become NaN). Returns ErrIndexOutOfRange for invalid i.
// Complexity: O(1).
func (s *ArraySequence) SetAt(i int, c coord.Coordinate) error {
	if i < 0 || i >= len(s.pts) {
		return ErrIndexOutOfRange
	}
	s.pts[i] = conform(c, s.kind)

	return nil
}

// conform rebuilds c under kind: shared ordinates carry over, ordinates
// kind lacks disappear, ordinates c lacks arrive as NaN. Conforming a
// coordinate that already has kind reproduces it exactly, which is what
// makes read-then-write-back a no-op.
func conform(c coord.Coordinate, kind coord.Kind) coord.Coordinate {
	switch kind {
	case coord.XYZ:
		return coord.NewXYZ(c.X(), c.Y(), c.Z())
	case coord.XYM:
		return coord.NewXYM(c.X(), c.Y(), c.M())
	case coord.XYZM:
		return coord.NewXYZM(c.X(), c.Y(), c.Z(), c.M())
	default:
		return coord.NewXY(c.X(), c.Y())
	}
}
