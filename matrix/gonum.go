// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Host programs that already hold paths in gonum matrices can hand them to
// the signature package without reshaping: FromMat copies a mat.Matrix into
// a Dense (same orientation), ToMat copies back.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const ctxFromMat = "FromMat"

// FromMat copies any gonum mat.Matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrInvalidDimensions for an empty matrix.
//   - ErrNaNInf when a value is non-finite and validation is on (default).
//
// Complexity: Time O(r*c), Space O(r*c).
func FromMat(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDenseWithOptions(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromMat, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if out.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromMat, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToMat returns a gonum *mat.Dense holding a copy of m's values.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToMat() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
