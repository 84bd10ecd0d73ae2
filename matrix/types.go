// SPDX-License-Identifier: MIT

// Package matrix: public interfaces shared by Dense, MatrixView and callers.
package matrix

// Reader is the read-only surface every path consumer needs.
// Both *Dense and *MatrixView satisfy it, so algorithms can run over a
// no-copy window of a larger path.
//
// Complexity notes: all methods are expected O(1).
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Matrix represents a two-dimensional mutable array of float64 values.
type Matrix interface {
	Reader

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf if the numeric
	// policy rejects v.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
