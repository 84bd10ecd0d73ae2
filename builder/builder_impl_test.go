// Package builder_test contains functional tests for the path builders,
// verifying shapes, determinism, invariants and error mapping.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathsig/builder"
	"github.com/katalvlaran/pathsig/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_ShapeAndDeterminism runs every builder twice with one seed.
func TestBuilders_ShapeAndDeterminism(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(seed int64) (*matrix.Dense, error)
		wantD int
		wantT int
	}{
		{"RandomWalk(3,50)", func(s int64) (*matrix.Dense, error) { return builder.BuildRandomWalk(3, 50, s) }, 3, 50},
		{"Chirp(64)", func(s int64) (*matrix.Dense, error) {
			return builder.BuildChirpPath(64, s, builder.WithNoise(0.1))
		}, 2, 64},
		{"GBM(4,30)", func(s int64) (*matrix.Dense, error) { return builder.BuildGBMPath(4, 30, s) }, 4, 30},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a, err := tc.build(7)
			require.NoError(t, err)
			b, err := tc.build(7)
			require.NoError(t, err)
			c, err := tc.build(8)
			require.NoError(t, err)

			assert.Equal(t, tc.wantD, a.Rows())
			assert.Equal(t, tc.wantT, a.Cols())
			ok, err := matrix.AllClose(a, b, 0, 0)
			require.NoError(t, err)
			assert.True(t, ok, "same seed must reproduce the path")
			require.NoError(t, matrix.ValidateFinite(a))

			ok, err = matrix.AllClose(a, c, 0, 0)
			require.NoError(t, err)
			assert.False(t, ok, "different seeds should differ")
		})
	}
}

// TestBuildRandomWalk_StartsAtOrigin checks column 0 and the trend-only walk.
func TestBuildRandomWalk_StartsAtOrigin(t *testing.T) {
	p, err := builder.BuildRandomWalk(2, 5, 1)
	require.NoError(t, err)
	col, err := p.Col(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, col)

	// A tiny step scale leaves the trend dominant.
	p, err = builder.BuildRandomWalk(1, 4, 1, builder.WithStepScale(1e-12), builder.WithTrend(2))
	require.NoError(t, err)
	row, _ := p.Row(0)
	assert.InDeltaSlice(t, []float64{0, 2, 4, 6}, row, 1e-9)
}

// TestBuildChirpPath_Radius: without noise and trend every sample lies on the
// circle of radius A.
func TestBuildChirpPath_Radius(t *testing.T) {
	p, err := builder.BuildChirpPath(100, 0, builder.WithAmplitude(2.5), builder.WithFrequency(1.5))
	require.NoError(t, err)

	for j := 0; j < p.Cols(); j++ {
		x, _ := p.At(0, j)
		y, _ := p.At(1, j)
		assert.InDelta(t, 2.5, math.Hypot(x, y), 1e-12, "sample %d", j)
	}
	x0, _ := p.At(0, 0)
	y0, _ := p.At(1, 0)
	assert.Equal(t, 2.5, x0)
	assert.Equal(t, 0.0, y0)
}

// TestBuildGBMPath_Positive checks the start price and positivity.
func TestBuildGBMPath_Positive(t *testing.T) {
	p, err := builder.BuildGBMPath(3, 200, 4, builder.WithStart(10))
	require.NoError(t, err)

	col, _ := p.Col(0)
	assert.Equal(t, []float64{10, 10, 10}, col)
	for i := 0; i < p.Rows(); i++ {
		row, _ := p.Row(i)
		for _, v := range row {
			assert.Greater(t, v, 0.0)
		}
	}
}

// TestBuilders_SharedStream: WithRand threads one stream through two calls.
func TestBuilders_SharedStream(t *testing.T) {
	r1 := rand.New(rand.NewSource(3))
	a1, err := builder.BuildRandomWalk(1, 5, 0, builder.WithRand(r1))
	require.NoError(t, err)
	a2, err := builder.BuildRandomWalk(1, 5, 0, builder.WithRand(r1))
	require.NoError(t, err)

	ok, err := matrix.AllClose(a1, a2, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok, "second call continues the stream")

	b1, err := builder.BuildRandomWalk(1, 5, 0, builder.WithSeed(3))
	require.NoError(t, err)
	ok, err = matrix.AllClose(a1, b1, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "WithSeed(3) matches a fresh stream seeded with 3")
}

// TestBuilders_Errors maps bad sizes and options to sentinels.
func TestBuilders_Errors(t *testing.T) {
	_, err := builder.BuildRandomWalk(0, 5, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.BuildRandomWalk(2, 0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.BuildChirpPath(0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.BuildGBMPath(1, -1, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildGBMPath(1, 5, 1, builder.WithStart(0))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	assert.Contains(t, err.Error(), builder.MethodGBM)
}
