// SPDX-License-Identifier: MIT
// Package coord: the Coordinate value type.
// A Coordinate is a plain value of up to four float64 ordinates whose
// layout is fixed by its Kind. Ordinates the kind does not carry read as
// NaN — a defined sentinel, never an arbitrary leftover value.

package coord

import (
	"fmt"
	"math"
)

// Coordinate is an ordered tuple of up to four ordinates {x, y, z?, m?}.
// The zero value is an XY coordinate at the origin with NaN z and m; the
// constructors below are the intended way to build one.
type Coordinate struct {
	kind       Kind
	x, y, z, m float64
}

// NewXY builds a two-dimensional coordinate. Z and M read as NaN.
func NewXY(x, y float64) Coordinate {
	return Coordinate{kind: XY, x: x, y: y, z: math.NaN(), m: math.NaN()}
}

// NewXYZ builds a three-dimensional coordinate. M reads as NaN.
func NewXYZ(x, y, z float64) Coordinate {
	return Coordinate{kind: XYZ, x: x, y: y, z: z, m: math.NaN()}
}

// NewXYM builds a two-dimensional coordinate with a measure. Z reads as NaN.
func NewXYM(x, y, m float64) Coordinate {
	return Coordinate{kind: XYM, x: x, y: y, z: math.NaN(), m: m}
}

// NewXYZM builds a three-dimensional coordinate with a measure.
func NewXYZM(x, y, z, m float64) Coordinate {
	return Coordinate{kind: XYZM, x: x, y: y, z: z, m: m}
}

// New builds a coordinate of the given kind from up to four ordinates in
// {x, y, z, m} order; ordinates the kind does not carry are ignored and
// missing trailing ordinates default to NaN (z, m) or 0 (x, y).
// Convenience for factory code that works from a dynamic Kind.
func New(kind Kind, ordinates ...float64) Coordinate {
	pick := func(i int, absent float64) float64 {
		if i < len(ordinates) {
			return ordinates[i]
		}

		return absent
	}
	x, y := pick(0, 0), pick(1, 0)
	switch kind {
	case XYZ:
		return NewXYZ(x, y, pick(2, math.NaN()))
	case XYM:
		return NewXYM(x, y, pick(2, math.NaN()))
	case XYZM:
		return NewXYZM(x, y, pick(2, math.NaN()), pick(3, math.NaN()))
	default:
		return NewXY(x, y)
	}
}

// Kind reports the ordinate layout fixed at construction.
func (c Coordinate) Kind() Kind {
	// The zero value has kind XY, so this is total.
	return c.kind
}

// X returns the first spatial ordinate.
func (c Coordinate) X() float64 { return c.x }

// Y returns the second spatial ordinate.
func (c Coordinate) Y() float64 { return c.y }

// Z returns the third spatial ordinate, or NaN when the kind lacks Z.
func (c Coordinate) Z() float64 {
	if !c.kind.HasZ() {
		return math.NaN()
	}

	return c.z
}

// M returns the measure ordinate, or NaN when the kind lacks M.
func (c Coordinate) M() float64 {
	if !c.kind.HasM() {
		return math.NaN()
	}

	return c.m
}

// Equals2D reports whether the (x, y) ordinates of both coordinates agree
// within tol (inclusive). This is the canonical "same point" predicate
// used by robustness checks; z and m never participate.
// Complexity: O(1).
func (c Coordinate) Equals2D(other Coordinate, tol float64) bool {
	return math.Abs(c.x-other.x) <= tol && math.Abs(c.y-other.y) <= tol
}

// Equals reports exact equality: same kind and bit-for-value identical
// ordinates, where two NaN ordinates count as equal so that round-trips
// through sequences compare clean. Distinct from Equals2D: no tolerance.
// Complexity: O(1).
func (c Coordinate) Equals(other Coordinate) bool {
	if c.kind != other.kind {
		return false
	}

	return sameOrdinate(c.x, other.x) &&
		sameOrdinate(c.y, other.y) &&
		sameOrdinate(c.Z(), other.Z()) &&
		sameOrdinate(c.M(), other.M())
}

// Compare orders coordinates lexicographically by x then y.
// Returns -1, 0 or +1.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.x < other.x:
		return -1
	case c.x > other.x:
		return 1
	case c.y < other.y:
		return -1
	case c.y > other.y:
		return 1
	default:
		return 0
	}
}

// Distance returns the 2D Euclidean distance to other. math.Hypot avoids
// the intermediate overflow/underflow of squaring the deltas directly.
// Complexity: O(1).
func (c Coordinate) Distance(other Coordinate) float64 {
	return math.Hypot(c.x-other.x, c.y-other.y)
}

// Distance3D returns the 3D Euclidean distance to other, NaN if either
// side lacks Z. The nested Hypot keeps the same overflow safety as the
// 2D form.
func (c Coordinate) Distance3D(other Coordinate) float64 {
	return math.Hypot(c.Distance(other), c.Z()-other.Z())
}

// String implements fmt.Stringer, printing only the ordinates the kind
// carries.
func (c Coordinate) String() string {
	switch c.kind {
	case XYZ:
		return fmt.Sprintf("(%v, %v, %v)", c.x, c.y, c.z)
	case XYM:
		return fmt.Sprintf("(%v, %v, m=%v)", c.x, c.y, c.m)
	case XYZM:
		return fmt.Sprintf("(%v, %v, %v, m=%v)", c.x, c.y, c.z, c.m)
	default:
		return fmt.Sprintf("(%v, %v)", c.x, c.y)
	}
}

// sameOrdinate treats two NaNs as equal and otherwise compares exactly.
func sameOrdinate(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}
