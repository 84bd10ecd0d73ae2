package pathio_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pathsig/internal/pathio"
	"github.com/katalvlaran/pathsig/matrix"
	"github.com/katalvlaran/pathsig/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPath_TransposesAndSkipsHeader(t *testing.T) {
	in := "x,y\n0,1\n2,3\n4,5\n"
	p, header, err := pathio.ReadPath(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, header)
	assert.Equal(t, 2, p.Rows())
	assert.Equal(t, 3, p.Cols())
	row, _ := p.Row(1)
	assert.Equal(t, []float64{1, 3, 5}, row)
}

func TestReadPath_Errors(t *testing.T) {
	_, _, err := pathio.ReadPath(strings.NewReader(""))
	assert.ErrorIs(t, err, pathio.ErrNoData)

	_, _, err = pathio.ReadPath(strings.NewReader("a,b\n"))
	assert.ErrorIs(t, err, pathio.ErrNoData)

	_, _, err = pathio.ReadPath(strings.NewReader("1,2\n3,oops\n"))
	assert.ErrorContains(t, err, "line 2")

	_, _, err = pathio.ReadPath(strings.NewReader("1,2\n3\n"))
	assert.Error(t, err)

	_, _, err = pathio.ReadPath(strings.NewReader("1,NaN\n"))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestWriteRead_RoundTripWithNaN(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{math.NaN(), 0.1, -2.5e-7},
		{math.NaN(), 3, 1e300},
	}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "sig.csv")
	require.NoError(t, pathio.WriteMatrixFile(file, m, []string{"a", "b"}))

	got, header, err := pathio.ReadPathFile(file, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	ok, err := matrix.AllClose(m, got, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWriteMatrix_Format(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pathio.WriteMatrix(&buf, m, nil))
	assert.Equal(t, "1,3\n2,4\n", buf.String())

	err = pathio.WriteMatrix(&buf, m, []string{"only"})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestHeaders(t *testing.T) {
	assert.Equal(t, []string{"x0", "x1", "x2"}, pathio.ChannelHeader(3))

	h := pathio.SignatureHeader(2, 2)
	assert.Equal(t, []string{"S(1)", "S(2)", "S(1,1)", "S(1,2)", "S(2,1)", "S(2,2)"}, h)
	assert.Len(t, pathio.SignatureHeader(3, 3), tensor.SignatureLen(3, 3))
}
