// Package pathsig computes truncated path signatures of multivariate time
// series, for a whole path or over a sliding window.
//
// What is a path signature?
//
//	A d-channel path sampled at T points is treated as piecewise-linear.
//	Its signature truncated at level L is the sequence of iterated integrals
//	of orders 1..L, d + d² + … + d^L numbers that describe the shape of the
//	path independently of how fast it was traversed.
//
// Under the hood, everything is organized as:
//
//	tensor/     - truncated tensor algebra: Identity, Exp, Mul, flattening
//	signature/  - Compute (Chen's relation) and SlidingWindow (inverse update)
//	matrix/     - Dense storage for paths and outputs, views, gonum interop
//	builder/    - deterministic random-walk, chirp and GBM test paths
//	dtw/        - Dynamic Time Warping between sliding-signature streams
//	cmd/pathsig - CLI: signature, window, generate, plot, compare
//
// Quick example (d=1, path 0 → 1 → 1, level 2):
//
//	path, _ := matrix.NewDenseFromRows([][]float64{{0, 1, 1}})
//	vec, _ := signature.ComputeVector(path, 2) // [1 0.5]
//
//	go install github.com/katalvlaran/pathsig/cmd/pathsig@latest
package pathsig
