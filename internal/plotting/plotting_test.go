package plotting_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pathsig/internal/plotting"
	"github.com/katalvlaran/pathsig/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowOutput(t *testing.T) *matrix.Dense {
	t.Helper()
	nan := math.NaN()
	m, err := matrix.NewDenseFromRows([][]float64{
		{nan, nan, 1, 2, 3},
		{nan, nan, 0, -1, 4},
		{nan, nan, 5, 5, 5},
	}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	return m
}

func TestSeries_DropsNaNPrefix(t *testing.T) {
	series, first, err := plotting.Series(windowOutput(t), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, [][]float64{{1, 2, 3}, {0, -1, 4}}, series)

	series, _, err = plotting.Series(windowOutput(t), 10)
	require.NoError(t, err)
	assert.Len(t, series, 3, "k is clamped to the row count")
}

func TestSeries_Errors(t *testing.T) {
	_, _, err := plotting.Series(windowOutput(t), 0)
	assert.ErrorIs(t, err, plotting.ErrNoSeries)

	allNaN, err := matrix.NewDenseWithOptions(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, allNaN.Set(0, 0, math.NaN()))
	require.NoError(t, allNaN.Set(0, 1, math.NaN()))
	_, _, err = plotting.Series(allNaN, 1)
	assert.ErrorIs(t, err, plotting.ErrNoSeries)

	_, _, err = plotting.Series(nil, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTerminal(t *testing.T) {
	chart, err := plotting.Terminal([][]float64{{1, 2, 3, 2, 1}}, []string{"S(1)"}, "level-1")
	require.NoError(t, err)
	assert.Contains(t, chart, "level-1")
	assert.Contains(t, chart, "S(1)")

	_, err = plotting.Terminal(nil, nil, "")
	assert.ErrorIs(t, err, plotting.ErrNoSeries)
}

func TestWritePNG(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sig.png")
	series, first, err := plotting.Series(windowOutput(t), 3)
	require.NoError(t, err)

	require.NoError(t, plotting.WritePNG(name, series, []string{"a", "b", "c"}, "window signature", first))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.ErrorIs(t, plotting.WritePNG(name, nil, nil, "", 0), plotting.ErrNoSeries)
}
