package measure_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/coord"
	"github.com/katalvlaran/planar/coordseq"
	"github.com/katalvlaran/planar/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLength_SquarePerimeter checks the concrete scenario: the square's
// vertex list taken as an open line measures exactly 400.
func TestLength_SquarePerimeter(t *testing.T) {
	for fname, f := range factories {
		t.Run(fname, func(t *testing.T) {
			got, err := measure.Length(f.FromCoordinates(squareRing()))
			require.NoError(t, err)
			assert.Equal(t, 400.0, got)
		})
	}
}

// TestLength_Degenerate verifies the ≤1-point boundary and nil handling.
func TestLength_Degenerate(t *testing.T) {
	_, err := measure.Length(nil)
	assert.ErrorIs(t, err, measure.ErrNilSequence)

	empty := coordseq.NewPackedSequence(0, 2, 0)
	got, err := measure.Length(empty)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "empty sequence has length exactly 0")

	one := coordseq.NewArraySequenceOf([]coord.Coordinate{coord.NewXY(5, 5)})
	got, err = measure.Length(one)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "single point has length exactly 0")
}

// TestLength_ReversalInvariance verifies that reversing the point order
// leaves the length unchanged.
func TestLength_ReversalInvariance(t *testing.T) {
	seq := coordseq.PackedFactory{}.FromCoordinates([]coord.Coordinate{
		coord.NewXY(0, 0),
		coord.NewXY(3, 4),
		coord.NewXY(3, 8),
		coord.NewXY(-1, 8),
	})

	forward, err := measure.Length(seq)
	require.NoError(t, err)
	require.NoError(t, coordseq.Reverse(seq))
	backward, err := measure.Length(seq)
	require.NoError(t, err)

	assert.Equal(t, forward, backward, "length is invariant under reversal")
	assert.Equal(t, 5.0+4.0+4.0, forward)
}

// TestLength_OverflowSafety checks that huge segment deltas do not
// overflow the way naive squaring would.
func TestLength_OverflowSafety(t *testing.T) {
	big := 1e200
	seq := coordseq.NewPackedSequenceOf([]float64{0, 0, big, big}, 2, 0)

	got, err := measure.Length(seq)
	require.NoError(t, err)
	assert.False(t, math.IsInf(got, 1), "Hypot must not overflow to +Inf")
	assert.InDelta(t, big*math.Sqrt2, got, big*1e-9)
}

// TestLengthOfCoordinates_MatchesSequence confirms the list-path twin
// agrees with the sequence path.
func TestLengthOfCoordinates_MatchesSequence(t *testing.T) {
	pts := []coord.Coordinate{
		coord.NewXY(1.5, 2.25),
		coord.NewXY(-3, 0.125),
		coord.NewXY(4, 4),
	}
	want := measure.LengthOfCoordinates(pts)

	for fname, f := range factories {
		t.Run(fname, func(t *testing.T) {
			got, err := measure.Length(f.FromCoordinates(pts))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	assert.Equal(t, 0.0, measure.LengthOfCoordinates(nil), "empty list measures 0")
	assert.Equal(t, 0.0, measure.LengthOfCoordinates(pts[:1]), "single point measures 0")
}
