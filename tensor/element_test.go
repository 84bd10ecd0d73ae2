package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathsig/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nanValue() float64 { return math.NaN() }

// TestSignatureLen_DimensionFormula: len(ToVector())-1 == d + d² + … + d^L.
func TestSignatureLen_DimensionFormula(t *testing.T) {
	tests := []struct {
		d, level, want int
	}{
		{1, 1, 1},
		{1, 5, 5},
		{2, 3, 14},
		{3, 2, 12},
		{4, 4, 340},
	}
	for _, tc := range tests {
		id, err := tensor.Identity(tc.d, tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.want, tensor.SignatureLen(tc.d, tc.level))
		assert.Equal(t, tc.want, len(id.ToVector())-1, "d=%d L=%d", tc.d, tc.level)
		assert.Len(t, id.SignatureVector(), tc.want)
	}
}

// TestToVector_Order ensures grades are concatenated low to high with the leading 1.
func TestToVector_Order(t *testing.T) {
	e, err := tensor.Exp([]float64{1, 2}, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1, 2, 0.5, 1, 1, 2}, e.ToVector())
	assert.Equal(t, []float64{1, 2, 0.5, 1, 1, 2}, e.SignatureVector())
}

// TestNewElement_Validation covers each rejection path of NewElement.
func TestNewElement_Validation(t *testing.T) {
	e, err := tensor.NewElement(2, [][]float64{{1}, {1, 2}, {0, 0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, e.Level())

	_, err = tensor.NewElement(2, [][]float64{{1}})
	assert.ErrorIs(t, err, tensor.ErrInvalidConfiguration, "level 0")

	_, err = tensor.NewElement(2, [][]float64{{2}, {1, 2}})
	assert.ErrorIs(t, err, tensor.ErrNonUnitScalar)

	_, err = tensor.NewElement(2, [][]float64{{1}, {1, 2, 3}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.NewElement(2, [][]float64{{1}, {1, math.Inf(1)}})
	assert.ErrorIs(t, err, tensor.ErrNaNInf)
}

// TestNewElement_CopiesInput ensures later writes to the caller's slices do not leak in.
func TestNewElement_CopiesInput(t *testing.T) {
	g1 := []float64{3, 4}
	e, err := tensor.NewElement(2, [][]float64{{1}, g1})
	require.NoError(t, err)

	g1[0] = 99
	got, err := e.Grade(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, got)

	got[1] = -1
	again, _ := e.Grade(1)
	assert.Equal(t, []float64{3, 4}, again, "Grade returns a copy")
}

// TestGrade_OutOfRange rejects negative and too-high grades.
func TestGrade_OutOfRange(t *testing.T) {
	id, err := tensor.Identity(2, 2)
	require.NoError(t, err)

	_, err = id.Grade(-1)
	assert.ErrorIs(t, err, tensor.ErrGradeOutOfRange)
	_, err = id.Grade(3)
	assert.ErrorIs(t, err, tensor.ErrGradeOutOfRange)
}

// TestAllClose_Errors covers shape and tolerance validation.
func TestAllClose_Errors(t *testing.T) {
	a, _ := tensor.Identity(2, 2)
	b, _ := tensor.Identity(2, 3)

	_, err := tensor.AllClose(a, b, 0, 1e-9)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.AllClose(a, a, math.NaN(), 0)
	assert.ErrorIs(t, err, tensor.ErrNaNInf)

	_, err = tensor.AllClose(nil, a, 0, 0)
	assert.ErrorIs(t, err, tensor.ErrNilElement)
}

// TestString_Format pins the diagnostic layout.
func TestString_Format(t *testing.T) {
	e, err := tensor.Exp([]float64{2}, 2)
	require.NoError(t, err)
	assert.Equal(t, "0: [1]\n1: [2]\n2: [2]\n", e.String())
}
