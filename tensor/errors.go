// SPDX-License-Identifier: MIT
// Package: pathsig/tensor
//
// errors.go - sentinel errors for the tensor package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the detection site with %w (see tensorErrorf).
//   • Nothing in this package panics on user input.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration indicates a truncation level < 1 or a dimension < 1.
	ErrInvalidConfiguration = errors.New("tensor: invalid configuration")

	// ErrShapeMismatch indicates operands disagree on dimension or truncation
	// level, or a grade buffer has the wrong length.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrNilElement indicates a nil *Element operand.
	ErrNilElement = errors.New("tensor: nil element")

	// ErrGradeOutOfRange indicates a grade index outside 0..Level().
	ErrGradeOutOfRange = errors.New("tensor: grade out of range")

	// ErrNonUnitScalar indicates a grade-0 component different from [1].
	ErrNonUnitScalar = errors.New("tensor: grade 0 must be the scalar 1")

	// ErrNaNInf indicates a NaN or ±Inf coefficient or increment.
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")
)

// tensorErrorf wraps err with an operation tag: "<op>: <err>".
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
