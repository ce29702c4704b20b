// SPDX-License-Identifier: MIT
// Package coordseq: public contracts.
// Sequence is the storage-blind capability set; Factory builds sequences
// of a particular physical encoding. Algorithms depend on Sequence only.

package coordseq

import "github.com/katalvlaran/planar/coord"

// Sequence is an ordered, random-access container of coordinates with a
// dimension and measure count fixed at creation.
//
// Contract:
//   - Len reports the entry count N ≥ 0; N never changes after creation.
//   - Dimension reports the total ordinate count per entry (2–4) and
//     Measures the measure count (0 or 1); both are consistent with every
//     element the sequence contains.
//   - At returns a copy of the coordinate at i; CopyInto writes it into a
//     caller-owned scratch coordinate instead, so tight loops can avoid
//     per-iteration garbage; SetAt overwrites the coordinate at i,
//     coercing the value onto the sequence's kind (absent ordinates
//     become NaN). Reading an index and writing the result straight back
//     is a no-op.
//   - All three return ErrIndexOutOfRange for i outside [0, N) — loudly,
//     never clamped.
//
// Implementations must not share mutable state: mutating one sequence
// never affects another unless both were deliberately built over the same
// caller-supplied backing storage.
type Sequence interface {
	// Len returns the number of coordinates in the sequence.
	Len() int

	// Dimension returns the total ordinate count stored per coordinate.
	Dimension() int

	// Measures returns the number of measure ordinates per coordinate.
	Measures() int

	// At returns a copy of the coordinate at index i.
	At(i int) (coord.Coordinate, error)

	// CopyInto writes the coordinate at index i into dst.
	CopyInto(i int, dst *coord.Coordinate) error

	// SetAt overwrites the coordinate at index i.
	SetAt(i int, c coord.Coordinate) error
}

// Factory builds sequences of one physical encoding. Factories are
// stateless and safe to share.
//
// Clamping contract (silent coercion, never an error): measure count to
// {0,1}; spatial dimension to [2,3], with invalid spatial requests forced
// to 2. The produced sequence reports the clamped values.
type Factory interface {
	// New returns a sequence of exactly size zero/NaN-initialized
	// coordinates of the clamped (dimension, measures) layout.
	New(size, dimension, measures int) Sequence

	// FromCoordinates builds a sequence over the given coordinates,
	// adopting the backing storage without copying when it already is the
	// factory's native form.
	FromCoordinates(pts []coord.Coordinate) Sequence

	// FromSequence deep-copies src into this factory's encoding,
	// preserving src's dimension and measure count. A nil src yields an
	// empty two-dimensional sequence.
	FromSequence(src Sequence) Sequence
}
