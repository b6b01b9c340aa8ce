package similarity

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZNormDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{
			name: "self similarity",
			a:    []float64{1, 5, 2, 8, 3},
			b:    []float64{1, 5, 2, 8, 3},
			want: 0,
		},
		{
			name: "shift and scale invariant",
			a:    []float64{1, 2, 3, 4},
			b:    []float64{10, 20, 30, 40},
			want: 0,
		},
		{
			name: "mirrored pair",
			a:    []float64{0, 2},
			b:    []float64{2, 0},
			// normalized: [-1, 1] and [1, -1] -> sqrt(4 + 4)
			want: math.Sqrt(8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ZNormDistance(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestZNormDistance_Errors(t *testing.T) {
	_, err := ZNormDistance([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerateSubsequence)

	_, err = ZNormDistance([]float64{1, 2, 3}, []float64{4, 4, 4})
	assert.ErrorIs(t, err, ErrDegenerateSubsequence)

	_, err = ZNormDistance([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = ZNormDistance(nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReportedDistance_TakesSecondRoot(t *testing.T) {
	a := []float64{0, 2}
	b := []float64{2, 0}

	single, err := ZNormDistance(a, b)
	require.NoError(t, err)
	reported, err := ReportedDistance(a, b)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(single), reported, 1e-12)
	assert.Less(t, reported, single)
}

func TestSeries_Compare(t *testing.T) {
	s, err := ReadSeries(strings.NewReader("1\n2\n3\n 1 \n2\n3\n"))
	require.NoError(t, err)
	require.Len(t, s, 6)

	d, err := s.Compare(0, 3, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0, d, 1e-12)

	_, err = s.Compare(0, 4, 3)
	assert.ErrorContains(t, err, "out of range")

	_, err = s.Window(0, 0)
	assert.ErrorContains(t, err, "must be positive")
}

func TestReadSeries_BadLine(t *testing.T) {
	_, err := ReadSeries(strings.NewReader("1.5\nabc\n"))
	assert.ErrorContains(t, err, "series line 2")
}

func TestReadSeries_BlankLine(t *testing.T) {
	_, err := ReadSeries(strings.NewReader("1\n2\n\n3\n"))
	assert.ErrorIs(t, err, ErrBlankLine)
	assert.ErrorContains(t, err, "series line 3")
}
