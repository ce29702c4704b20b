// SPDX-License-Identifier: MIT
// Package coord: ordinate-layout enumeration.
// Kind is a total mapping: every method answers for every value, with an
// explicit "unknown" outcome for out-of-range inputs instead of partiality.

package coord

// Kind identifies which ordinates of a Coordinate are meaningful.
// It is fixed when the Coordinate is constructed and never reinterpreted.
type Kind uint8

const (
	// XY holds two spatial ordinates and no measure.
	XY Kind = iota

	// XYZ holds three spatial ordinates and no measure.
	XYZ

	// XYM holds two spatial ordinates plus one measure.
	XYM

	// XYZM holds three spatial ordinates plus one measure.
	XYZM
)

// Ordinate-count bounds shared with the coordseq factories.
const (
	// MinDimension is the smallest total ordinate count a kind can carry.
	MinDimension = 2

	// MaxSpatial is the largest spatial ordinate count a kind can carry.
	MaxSpatial = 3

	// MaxMeasures is the largest measure count a kind can carry.
	MaxMeasures = 1
)

// Dimension reports the total ordinate count stored per coordinate of
// this kind (spatial ordinates plus measures). Unknown kinds report the
// minimum, matching the factories' coercion of invalid requests.
// Complexity: O(1).
func (k Kind) Dimension() int {
	switch k {
	case XY:
		return 2
	case XYZ, XYM:
		return 3
	case XYZM:
		return 4
	default:
		return MinDimension
	}
}

// Measures reports how many measure ordinates this kind carries (0 or 1).
// Complexity: O(1).
func (k Kind) Measures() int {
	if k == XYM || k == XYZM {
		return 1
	}

	return 0
}

// HasZ reports whether the Z ordinate is meaningful for this kind.
func (k Kind) HasZ() bool {
	return k == XYZ || k == XYZM
}

// HasM reports whether the M ordinate is meaningful for this kind.
func (k Kind) HasM() bool {
	return k == XYM || k == XYZM
}

// String implements fmt.Stringer with an explicit unknown fallback.
func (k Kind) String() string {
	switch k {
	case XY:
		return "XY"
	case XYZ:
		return "XYZ"
	case XYM:
		return "XYM"
	case XYZM:
		return "XYZM"
	default:
		return "Kind(unknown)"
	}
}

// KindFor maps a (total dimension, measures) pair onto the Kind that
// stores it. Requests outside the supported ranges are coerced, not
// rejected: measures collapse to {0,1}, spatial dimension to [2,3].
// This is the single clamping rule shared by the coordseq factories.
//
// Mapping (dimension counts measures):
//
//	(2,0) → XY    (3,0) → XYZ
//	(3,1) → XYM   (4,1) → XYZM
//
// Complexity: O(1).
func KindFor(dimension, measures int) Kind {
	// Collapse measures to the supported {0,1} range.
	if measures < 0 {
		measures = 0
	}
	if measures > MaxMeasures {
		measures = MaxMeasures
	}

	// Spatial dimension is what remains after measures.
	spatial := dimension - measures
	if spatial < MinDimension {
		spatial = MinDimension
	}
	if spatial > MaxSpatial {
		spatial = MaxSpatial
	}

	switch {
	case spatial == 3 && measures == 1:
		return XYZM
	case spatial == 3:
		return XYZ
	case measures == 1:
		return XYM
	default:
		return XY
	}
}
