// SPDX-License-Identifier: MIT
// Package coordseq: sequence-level utilities.
// These operate purely through the Sequence contract, so they work
// identically over both encodings.

package coordseq

// Reverse flips the coordinate order of s in place. Returns
// ErrNilSequence for a nil sequence; empty and single-entry sequences are
// left untouched.
// Complexity: O(Len).
func Reverse(s Sequence) error {
	if s == nil {
		return ErrNilSequence
	}
	var err error
	for i, j := 0, s.Len()-1; i < j; i, j = i+1, j-1 {
		// Both indices are in range, so the indexer errors cannot fire;
		// they are still propagated rather than swallowed.
		a, errA := s.At(i)
		b, errB := s.At(j)
		if errA != nil {
			return errA
		}
		if errB != nil {
			return errB
		}
		if err = s.SetAt(i, b); err != nil {
			return err
		}
		if err = s.SetAt(j, a); err != nil {
			return err
		}
	}

	return nil
}

// Equal reports whether a and b have the same length, dimension, measure
// count, and exactly equal coordinates at every index (NaN-aware, see
// coord.Coordinate.Equals). Two nil sequences are equal; nil never equals
// non-nil.
// Complexity: O(Len).
func Equal(a, b Sequence) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Len() != b.Len() || a.Dimension() != b.Dimension() || a.Measures() != b.Measures() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ca, errA := a.At(i)
		cb, errB := b.At(i)
		if errA != nil || errB != nil || !ca.Equals(cb) {
			return false
		}
	}

	return true
}

// IsClosed reports whether the first and last coordinates of s coincide
// exactly in 2D — the ring-closure predicate. The empty sequence is
// vacuously closed. Returns ErrNilSequence for a nil sequence.
// Complexity: O(1).
func IsClosed(s Sequence) (bool, error) {
	if s == nil {
		return false, ErrNilSequence
	}
	n := s.Len()
	if n == 0 {
		return true, nil
	}
	first, err := s.At(0)
	if err != nil {
		return false, err
	}
	last, err := s.At(n - 1)
	if err != nil {
		return false, err
	}

	return first.Equals2D(last, 0), nil
}

// Clone deep-copies s into f's encoding. Returns ErrNilFactory for a nil
// factory; a nil s clones to an empty sequence (see Factory.FromSequence).
func Clone(f Factory, s Sequence) (Sequence, error) {
	if f == nil {
		return nil, ErrNilFactory
	}

	return f.FromSequence(s), nil
}
