// Package planar is a storage-agnostic core for planar and spatial
// coordinate data: ordered coordinate sequences over multiple physical
// encodings, plus the numerically careful measurement and linear-algebra
// routines that higher-level geometry layers build on.
//
// 🚀 What is planar?
//
//	A small, dependency-light library that brings together:
//		• Coordinate values with explicit kinds (XY / XYZ / XYM / XYZM)
//		• Coordinate sequences: object-backed and packed flat-buffer forms
//		  behind one indexed-access contract, built by clamping factories
//		• Ring area via a cancellation-resistant translated shoelace sum
//		• Polyline length via overflow-safe hypotenuse accumulation
//		• A dense Gaussian solver with partial pivoting, reused by
//		  geometric constructions such as the circumcentre
//
// ✨ Why choose planar?
//
//   - Deterministic – identical inputs always produce identical outputs;
//     no global state, no hidden randomness
//   - Representation-blind – algorithms see only {size, indexed get,
//     indexed set} and never special-case a storage encoding
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – IEEE doubles, with the classic stability tricks
//     (local-origin translation, partial pivoting) applied where they matter
//
// Everything is organized under five subpackages:
//
//	coord/     — Coordinate value type and ordinate kinds
//	coordseq/  — Sequence abstraction, array & packed variants, factories
//	measure/   — signed/unsigned ring area and polyline length
//	linalg/    — dense Gaussian elimination with partial pivoting
//	construct/ — constructions (circumcentre) built on the solver
//
// Quick ASCII example:
//
//	    (100,200)───(200,200)
//	        │           │
//	    (100,100)───(200,100)
//
//	a closed square ring: area 10000, perimeter as an open line 400.
//
// See the example tests in each package for usage patterns.
//
//	go get github.com/katalvlaran/planar
package planar
