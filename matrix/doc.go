// Package matrix provides the dense storage used for paths and signature
// outputs.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a per-instance numeric policy that
//     rejects NaN/±Inf unless explicitly relaxed.
//   - MatrixView: a no-copy window into a Dense, e.g. a contiguous run of
//     time samples of a path.
//   - Validators, Transpose and AllClose for shape checks and comparisons.
//   - FromMat / ToMat adapters to and from gonum.org/v1/gonum/mat.
//
// Paths are stored channel-major: row i is channel i, column t is time
// sample t. Sliding-window outputs use the same orientation (coefficient
// rows by time columns) and are created with WithNoValidateNaNInf so that
// columns without a full window can hold NaN.
package matrix
