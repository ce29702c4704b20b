// Package coord defines the Coordinate value type and its ordinate kinds.
//
// The coord package provides:
//
//   - Kind, an enumeration of the four supported ordinate layouts
//     (XY, XYZ, XYM, XYZM), fixed at construction and never reinterpreted.
//   - Coordinate, an immutable-per-access value of up to four ordinates
//     {x, y, z?, m?}; ordinates absent for the kind read as NaN, never as
//     undefined values.
//   - Tolerance-based 2D equality (the canonical "same point" predicate
//     for robustness checks), exact equality for round-trip tests, and
//     overflow-safe 2D/3D distances.
//
// Coordinates are plain values: copy them freely, compare them with
// Equals2D/Equals, and feed them into coordseq sequences and the measure
// algorithms. No shared state, no lifecycle.
//
// See the examples in this package and coordseq for usage patterns.
package coord
