package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathsig/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil recognizes untyped and typed nils.
func TestValidateNotNil(t *testing.T) {
	var d *matrix.Dense
	var v *matrix.MatrixView

	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(v), matrix.ErrNilMatrix)

	m, _ := matrix.NewDense(1, 1)
	assert.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateSameShapeAndVecLen covers the shape validators.
func TestValidateSameShapeAndVecLen(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(3, 2)
	assert.NoError(t, matrix.ValidateSameShape(a, a))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)

	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}

// TestValidateFinite finds non-finite values in Dense and in views.
func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDenseWithOptions(2, 3, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 2, math.Inf(1)))
	err = matrix.ValidateFinite(m)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "(1,2)")

	clean, _ := m.View(0, 0, 2, 2)
	assert.NoError(t, matrix.ValidateFinite(clean))
	dirty, _ := m.View(1, 1, 1, 2)
	assert.ErrorIs(t, matrix.ValidateFinite(dirty), matrix.ErrNaNInf)
}
