// SPDX-License-Identifier: MIT
// Package coordseq: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// coordseq package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in private
// helpers (if any).

package coordseq

import "errors"

var (
	// ErrIndexOutOfRange indicates that a coordinate index is outside
	// [0, Len). Public indexers (At/CopyInto/SetAt) MUST return this, not
	// panic, and must never clamp or wrap the index.
	ErrIndexOutOfRange = errors.New("coordseq: index out of range")

	// ErrNilSequence indicates that a nil Sequence was passed where a
	// concrete sequence is required.
	ErrNilSequence = errors.New("coordseq: nil sequence")

	// ErrNilFactory indicates that a nil Factory was passed to a helper
	// that needs one to allocate its result.
	ErrNilFactory = errors.New("coordseq: nil factory")
)
