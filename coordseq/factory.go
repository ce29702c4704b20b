// SPDX-License-Identifier: MIT
// Package coordseq: sequence factories.
// A Factory picks the physical encoding; the clamping rule (silent
// coercion via coord.KindFor) is shared so both encodings agree on what a
// requested (dimension, measures) pair means.

package coordseq

import "github.com/katalvlaran/planar/coord"

// ArrayFactory builds object-backed sequences. Stateless; the zero value
// is ready to use.
type ArrayFactory struct{}

// PackedFactory builds packed flat-buffer sequences. Stateless; the zero
// value is ready to use.
type PackedFactory struct{}

// compile-time conformance checks
var (
	_ Factory = ArrayFactory{}
	_ Factory = PackedFactory{}
)

// New returns a zero/NaN-initialized object-backed sequence of exactly
// size entries with clamped dimension and measures.
func (ArrayFactory) New(size, dimension, measures int) Sequence {
	return NewArraySequence(size, dimension, measures)
}

// FromCoordinates adopts pts without copying — a coordinate slice already
// is the array encoding's native form.
func (ArrayFactory) FromCoordinates(pts []coord.Coordinate) Sequence {
	return NewArraySequenceOf(pts)
}

// FromSequence deep-copies src into a fresh object-backed sequence with
// src's dimension and measure count. A nil src yields an empty XY
// sequence.
// Complexity: O(src.Len()).
func (ArrayFactory) FromSequence(src Sequence) Sequence {
	return copySequence(src, func(n, dim, meas int) Sequence {
		return NewArraySequence(n, dim, meas)
	})
}

// New returns a zero-initialized packed sequence of exactly size entries
// with clamped dimension and measures.
func (PackedFactory) New(size, dimension, measures int) Sequence {
	return NewPackedSequence(size, dimension, measures)
}

// FromCoordinates copies pts into a fresh packed buffer — discrete
// coordinates are not the packed encoding's native form, so adoption
// without copying is impossible here. The kind is taken from the first
// element (empty slices yield an XY sequence).
// Complexity: O(len(pts)).
func (PackedFactory) FromCoordinates(pts []coord.Coordinate) Sequence {
	kind := coord.XY
	if len(pts) > 0 {
		kind = pts[0].Kind()
	}
	dst := NewPackedSequence(len(pts), kind.Dimension(), kind.Measures())
	for i, c := range pts {
		// i is always in range by construction.
		_ = dst.SetAt(i, c)
	}

	return dst
}

// FromSequence deep-copies src into a fresh packed sequence with src's
// dimension and measure count. A nil src yields an empty XY sequence.
// Complexity: O(src.Len()).
func (PackedFactory) FromSequence(src Sequence) Sequence {
	return copySequence(src, func(n, dim, meas int) Sequence {
		return NewPackedSequence(n, dim, meas)
	})
}

// copySequence is the shared deep-copy loop behind both FromSequence
// implementations: allocate via alloc, then move coordinates one by one
// through a single scratch value.
func copySequence(src Sequence, alloc func(n, dim, meas int) Sequence) Sequence {
	if src == nil {
		return alloc(0, coord.MinDimension, 0)
	}
	n := src.Len()
	dst := alloc(n, src.Dimension(), src.Measures())

	var scratch coord.Coordinate
	for i := 0; i < n; i++ {
		// i is always in range for both sides by construction.
		_ = src.CopyInto(i, &scratch)
		_ = dst.SetAt(i, scratch)
	}

	return dst
}
