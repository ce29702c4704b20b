// Package measure computes scalar measurements over coordinate data:
// signed and unsigned ring area, and polyline length.
//
// 🚀 What does measure offer?
//
//	Pure functions with the classic numerical-stability tricks applied:
//	  • SignedArea / Area — shoelace formula with all X ordinates first
//	    translated to a local origin at the ring's first vertex, which
//	    keeps summed magnitudes small and resists floating-point
//	    cancellation without changing the true area
//	  • Length — Euclidean polyline length via math.Hypot, avoiding the
//	    intermediate overflow/underflow of squaring deltas directly
//
// Every function comes in two call paths — over a plain ordered
// []coord.Coordinate and over a coordseq.Sequence via its indexed-access
// contract — and the two area paths run the identical translated-shoelace
// accumulation, so results are bit-for-bit reproducible across input
// representations.
//
// Sign convention: positive signed area = clockwise vertex order,
// negative = counter-clockwise, zero = degenerate/collinear. Rings with
// fewer than three vertices measure 0 by definition — a documented
// boundary, not an error. Ring closure (first == last) is the caller's
// responsibility and is never verified here.
//
// All operations are synchronous, deterministic and allocation-light; the
// sequence paths reuse scratch coordinates instead of materializing
// intermediate lists.
package measure
