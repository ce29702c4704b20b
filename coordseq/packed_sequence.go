// SPDX-License-Identifier: MIT
// Package coordseq: packed flat-buffer sequence variant.
// PackedSequence stores N × dimension float64 ordinates in one flat
// slice, addressed by offset arithmetic. Dense and cache-friendly; the
// encoding of choice for bulk coordinate data and zero-copy views over
// caller-owned buffers.

package coordseq

import "github.com/katalvlaran/planar/coord"

// Ordinate offsets within one packed entry. X and Y always occupy the
// first two slots; Z (when present) the third; M (when present) the slot
// after the spatial ordinates.
const (
	offsetX = 0
	offsetY = 1
	offsetZ = 2
)

// PackedSequence is the packed Sequence variant: a single flat []float64
// of length Len() × Dimension(), row-major per coordinate.
type PackedSequence struct {
	kind coord.Kind
	dim  int // cached kind.Dimension()
	data []float64
}

// compile-time conformance check
var _ Sequence = (*PackedSequence)(nil)

// NewPackedSequence returns a PackedSequence of exactly size entries over
// a zero-initialized buffer. Negative size is coerced to 0; dimension and
// measures are clamped per coord.KindFor (packed supports up to spatial 3
// plus measure 1, i.e. total dimension 4). Coercion is silent.
// Complexity: O(size × dimension).
func NewPackedSequence(size, dimension, measures int) *PackedSequence {
	if size < 0 {
		size = 0
	}
	kind := coord.KindFor(dimension, measures)
	dim := kind.Dimension()

	return &PackedSequence{kind: kind, dim: dim, data: make([]float64, size*dim)}
}

// NewPackedSequenceOf builds a zero-copy view over data: the buffer is
// adopted, not copied, so mutations through either side are visible to
// both. Dimension and measures are clamped first; the entry count is
// len(data) divided by the clamped dimension, truncating any trailing
// partial coordinate.
// Complexity: O(1).
func NewPackedSequenceOf(data []float64, dimension, measures int) *PackedSequence {
	kind := coord.KindFor(dimension, measures)
	dim := kind.Dimension()
	n := len(data) / dim

	return &PackedSequence{kind: kind, dim: dim, data: data[:n*dim]}
}

// Len returns the number of coordinates in the sequence.
func (s *PackedSequence) Len() int { return len(s.data) / s.dim }

// Dimension returns the total ordinate count stored per coordinate.
func (s *PackedSequence) Dimension() int { return s.dim }

// Measures returns the number of measure ordinates per coordinate.
func (s *PackedSequence) Measures() int { return s.kind.Measures() }

// Kind returns the coordinate kind shared by every entry.
func (s *PackedSequence) Kind() coord.Kind { return s.kind }

// At returns a copy of the coordinate at index i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (s *PackedSequence) At(i int) (coord.Coordinate, error) {
	if i < 0 || i >= s.Len() {
		return coord.Coordinate{}, ErrIndexOutOfRange
	}
	base := i * s.dim

	// Slots beyond X and Y follow the kind's layout: Z (if any) first,
	// then M. coord.New consumes them in exactly this order.
	return coord.New(s.kind, s.data[base:base+s.dim]...), nil
}

// CopyInto writes the coordinate at index i into dst, or returns
// ErrIndexOutOfRange leaving dst untouched.
// Complexity: O(1).
func (s *PackedSequence) CopyInto(i int, dst *coord.Coordinate) error {
	c, err := s.At(i)
	if err != nil {
		return err
	}
	*dst = c

	return nil
}

// SetAt overwrites the packed ordinates at index i from c. Ordinates the
// sequence stores but c lacks are written as NaN (the defined sentinel);
// ordinates c carries but the sequence does not store are dropped.
// Returns ErrIndexOutOfRange for invalid i.
// Complexity: O(1).
func (s *PackedSequence) SetAt(i int, c coord.Coordinate) error {
	if i < 0 || i >= s.Len() {
		return ErrIndexOutOfRange
	}
	base := i * s.dim
	s.data[base+offsetX] = c.X()
	s.data[base+offsetY] = c.Y()

	next := offsetZ
	if s.kind.HasZ() {
		s.data[base+next] = c.Z()
		next++
	}
	if s.kind.HasM() {
		s.data[base+next] = c.M()
	}

	return nil
}
