// SPDX-License-Identifier: MIT
// Package measure: sentinel error set. Tests match these via errors.Is.

package measure

import "errors"

// ErrNilSequence indicates that a nil coordseq.Sequence was passed where
// coordinate data is required.
var ErrNilSequence = errors.New("measure: nil sequence")
