package material

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AS3678-2016 grade 250 yield strength bands, the canonical hot-rolled
// plate table used throughout these tests.
var (
	as3678Thicknesses = []float64{0.008, 0.012, 0.020, 0.050, 0.080, 0.150, 0.200}
	as3678Yield       = []float64{280e6, 260e6, 250e6, 250e6, 240e6, 230e6, 220e6}
)

func TestNewPropertyTable(t *testing.T) {
	table, err := NewPropertyTable(as3678Thicknesses, as3678Yield)
	require.NoError(t, err)
	require.NotNil(t, table)
	assert.Equal(t, 7, table.Len())
	assert.Equal(t, 0.200, table.MaxThickness())
}

func TestNewPropertyTable_CopiesInput(t *testing.T) {
	thresholds := []float64{0.010, 0.020}
	values := []float64{300e6, 280e6}

	table, err := NewPropertyTable(thresholds, values)
	require.NoError(t, err)

	// Mutating the caller's slices must not affect the built table.
	thresholds[1] = 0.005
	values[0] = 0

	got, err := table.Resolve(0.005)
	require.NoError(t, err)
	assert.Equal(t, 300e6, got)
	assert.Equal(t, 0.020, table.MaxThickness())
}

func TestNewPropertyTable_Malformed(t *testing.T) {
	cases := []struct {
		name       string
		thresholds []float64
		values     []float64
	}{
		{
			name:       "length mismatch",
			thresholds: []float64{0.010, 0.020},
			values:     []float64{300e6},
		},
		{
			name:       "empty table",
			thresholds: nil,
			values:     nil,
		},
		{
			name:       "thresholds not increasing",
			thresholds: []float64{0.020, 0.010},
			values:     []float64{300e6, 280e6},
		},
		{
			name:       "repeated threshold",
			thresholds: []float64{0.010, 0.010},
			values:     []float64{300e6, 280e6},
		},
		{
			name:       "non-positive first threshold",
			thresholds: []float64{0, 0.010},
			values:     []float64{300e6, 280e6},
		},
		{
			name:       "negative value",
			thresholds: []float64{0.010, 0.020},
			values:     []float64{300e6, -1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := NewPropertyTable(tc.thresholds, tc.values)
			require.Error(t, err)
			assert.Nil(t, table)

			var malformed *MalformedTableError
			assert.True(t, errors.As(err, &malformed))
		})
	}
}

func TestResolve_BoundaryThicknessStaysInBand(t *testing.T) {
	table, err := NewPropertyTable(as3678Thicknesses, as3678Yield)
	require.NoError(t, err)

	// A thickness exactly on a threshold belongs to that band, never the
	// next one.
	for i, threshold := range as3678Thicknesses {
		got, err := table.Resolve(threshold)
		require.NoError(t, err)
		assert.Equal(t, as3678Yield[i], got, "threshold %v", threshold)
	}
}

func TestResolve_SteppedBanding(t *testing.T) {
	table, err := NewPropertyTable(as3678Thicknesses, as3678Yield)
	require.NoError(t, err)

	cases := []struct {
		thickness float64
		want      float64
	}{
		{0.001, 280e6},
		{0.007, 280e6},
		{0.008, 280e6},
		{0.009, 260e6},
		{0.012, 260e6},
		{0.020, 250e6},
		{0.021, 250e6}, // falls in the band ending at 0.050
		{0.050, 250e6},
		{0.075, 240e6},
		{0.130, 230e6},
		{0.200, 220e6},
	}

	for _, tc := range cases {
		got, err := table.Resolve(tc.thickness)
		require.NoError(t, err, "thickness %v", tc.thickness)
		assert.Equal(t, tc.want, got, "thickness %v", tc.thickness)
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	table, err := NewPropertyTable(as3678Thicknesses, as3678Yield)
	require.NoError(t, err)

	for _, thickness := range []float64{0.201, 0.2000001, 1.0} {
		_, err := table.Resolve(thickness)
		require.Error(t, err, "thickness %v", thickness)

		var outOfRange *ThicknessOutOfRangeError
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, thickness, outOfRange.Thickness)
		assert.Equal(t, 0.200, outOfRange.Max)
	}
}

func TestResolve_NonPositiveThickness(t *testing.T) {
	table, err := NewPropertyTable(as3678Thicknesses, as3678Yield)
	require.NoError(t, err)

	for _, thickness := range []float64{0, -0.005} {
		_, err := table.Resolve(thickness)
		require.Error(t, err, "thickness %v", thickness)

		var invalid *InvalidThicknessError
		assert.True(t, errors.As(err, &invalid))
	}
}
