package measure_test

import (
	"testing"

	"github.com/katalvlaran/planar/coord"
	"github.com/katalvlaran/planar/coordseq"
	"github.com/katalvlaran/planar/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareRing is the canonical clockwise 100×100 square used throughout:
// area 10000, signed area +10000.
func squareRing() []coord.Coordinate {
	return []coord.Coordinate{
		coord.NewXY(100, 200),
		coord.NewXY(200, 200),
		coord.NewXY(200, 100),
		coord.NewXY(100, 100),
		coord.NewXY(100, 200),
	}
}

// reverseRing returns a reversed copy of ring.
func reverseRing(ring []coord.Coordinate) []coord.Coordinate {
	out := make([]coord.Coordinate, len(ring))
	for i, c := range ring {
		out[len(ring)-1-i] = c
	}

	return out
}

// TestSignedArea_Square checks the concrete clockwise/counter-clockwise
// scenario: +10000 for the original orientation, -10000 reversed.
func TestSignedArea_Square(t *testing.T) {
	assert.Equal(t, 10000.0, measure.SignedArea(squareRing()), "clockwise square is +10000")
	assert.Equal(t, -10000.0, measure.SignedArea(reverseRing(squareRing())), "reversed square is -10000")
	assert.Equal(t, 10000.0, measure.Area(squareRing()))
	assert.Equal(t, 10000.0, measure.Area(reverseRing(squareRing())), "Area is orientation-blind")
}

// TestSignedArea_ShortRings verifies the documented boundary: rings with
// fewer than three vertices measure exactly 0.
func TestSignedArea_ShortRings(t *testing.T) {
	assert.Equal(t, 0.0, measure.SignedArea(nil), "empty ring")
	assert.Equal(t, 0.0, measure.SignedArea([]coord.Coordinate{coord.NewXY(1, 1)}), "single point")
	assert.Equal(t, 0.0, measure.SignedArea([]coord.Coordinate{
		coord.NewXY(1, 1), coord.NewXY(2, 2),
	}), "two points")
	assert.Equal(t, 0.0, measure.Area([]coord.Coordinate{coord.NewXY(1, 1), coord.NewXY(2, 2)}))
}

// TestSignedArea_Collinear verifies that a degenerate flat ring measures
// zero.
func TestSignedArea_Collinear(t *testing.T) {
	flat := []coord.Coordinate{
		coord.NewXY(0, 0),
		coord.NewXY(1, 0),
		coord.NewXY(2, 0),
		coord.NewXY(0, 0),
	}
	assert.Equal(t, 0.0, measure.SignedArea(flat), "collinear ring has zero area")
}

// TestArea_AbsLaw checks area(R) == abs(signedArea(R)) on an irregular
// ring in both orientations.
func TestArea_AbsLaw(t *testing.T) {
	ring := []coord.Coordinate{
		coord.NewXY(0, 0),
		coord.NewXY(7, 1),
		coord.NewXY(5, 6),
		coord.NewXY(-2, 4),
		coord.NewXY(0, 0),
	}
	for _, r := range [][]coord.Coordinate{ring, reverseRing(ring)} {
		signed := measure.SignedArea(r)
		if signed < 0 {
			signed = -signed
		}
		assert.Equal(t, signed, measure.Area(r), "Area must equal abs(SignedArea)")
	}
}

// TestArea_TranslationInvariance verifies that shifting every vertex by
// the same offset leaves the area unchanged within floating tolerance —
// including offsets large enough to make the untranslated shoelace sum
// cancel badly.
func TestArea_TranslationInvariance(t *testing.T) {
	base := measure.Area(squareRing())

	for _, shift := range []float64{1e3, 1e6, 1e9} {
		ring := squareRing()
		for i, c := range ring {
			ring[i] = coord.NewXY(c.X()+shift, c.Y()+shift)
		}
		assert.InDelta(t, base, measure.Area(ring), 1e-6,
			"translation by %g must preserve area", shift)
	}
}

// TestSignedAreaOfSequence_MatchesList is the representation-equivalence
// law: the list path and the sequence path (over BOTH encodings) must
// produce identical — not merely close — results.
func TestSignedAreaOfSequence_MatchesList(t *testing.T) {
	ring := []coord.Coordinate{
		coord.NewXY(0.1, 0.3),
		coord.NewXY(7.000000001, 1.25),
		coord.NewXY(5.5, 6.125),
		coord.NewXY(-2.75, 4.0625),
		coord.NewXY(0.1, 0.3),
	}
	want := measure.SignedArea(ring)

	for fname, f := range factories {
		t.Run(fname, func(t *testing.T) {
			got, err := measure.SignedAreaOfSequence(f.FromCoordinates(ring))
			require.NoError(t, err)
			assert.Equal(t, want, got, "sequence path must be bit-identical to the list path")
		})
	}
}

// TestSignedAreaOfSequence_Degenerate covers nil and short sequences.
func TestSignedAreaOfSequence_Degenerate(t *testing.T) {
	_, err := measure.SignedAreaOfSequence(nil)
	assert.ErrorIs(t, err, measure.ErrNilSequence)

	short := coordseq.NewPackedSequenceOf([]float64{1, 1, 2, 2}, 2, 0)
	got, err := measure.SignedAreaOfSequence(short)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "two-point sequence measures zero")

	_, err = measure.AreaOfSequence(nil)
	assert.ErrorIs(t, err, measure.ErrNilSequence)
}

// TestAreaOfSequence_Square runs the concrete square scenario through the
// packed encoding.
func TestAreaOfSequence_Square(t *testing.T) {
	seq := coordseq.PackedFactory{}.FromCoordinates(squareRing())

	area, err := measure.AreaOfSequence(seq)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, area)

	require.NoError(t, coordseq.Reverse(seq))
	signed, err := measure.SignedAreaOfSequence(seq)
	require.NoError(t, err)
	assert.Equal(t, -10000.0, signed, "reversal negates the signed area")
}
