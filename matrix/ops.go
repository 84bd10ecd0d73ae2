// SPDX-License-Identifier: MIT

// Package matrix - whole-matrix operations used around signature pipelines:
// Transpose (time-major CSV <-> channel-major paths) and AllClose
// (tolerance comparison with NaN-aware semantics for windowed outputs).

package matrix

import (
	"fmt"
	"math"
)

const (
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Transpose returns a new Dense with rows and columns swapped.
// The result inherits the numeric policy of the source (or of the view's
// base), so NaN sentinels survive a transpose.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Reader) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	if mv, ok := m.(*MatrixView); ok {
		res.validateNaNInf = mv.base.validateNaNInf
	}
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| ≤ atol + rtol*|b|. Two NaNs at the same position
// compare equal (windowed outputs carry NaN sentinels); NaN against a
// number does not.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances.
//   - ErrNilMatrix / ErrDimensionMismatch from the validators.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Reader, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var i, j int
	var va, vb float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if va, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !closeEnough(va, vb, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllCloseWith is AllClose with rtol=0 and atol taken from the options
// (DefaultEpsilon unless WithEpsilon is given).
func AllCloseWith(a, b Reader, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}

// closeEnough is the scalar predicate behind AllClose.
func closeEnough(x, y, rtol, atol float64) bool {
	nx, ny := math.IsNaN(x), math.IsNaN(y)
	if nx || ny {
		return nx && ny
	}
	if x == y { // covers equal infinities
		return true
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
