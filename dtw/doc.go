// Package dtw computes Dynamic Time Warping (DTW) distances between
// multivariate feature sequences, typically two sliding-window signature
// streams produced by signature.SlidingWindow.
//
// Each sequence is a matrix.Reader whose columns are time steps and whose
// rows are features. Columns containing NaN are skipped, so the leading
// incomplete-window columns of a sliding-window output are ignored.
//
// Key features:
//   - Euclidean local cost between feature vectors
//   - full-matrix mode with optional alignment path (ReturnPath=true)
//   - rolling mode: O(M) memory, distance only
//   - optional Sakoe–Chiba band (|i−j| ≤ Band)
//   - slope penalty to discourage excessive stretching
//
// Usage:
//
//	sa, _ := signature.SlidingWindow(pathA, 20, 3)
//	sb, _ := signature.SlidingWindow(pathB, 20, 3)
//	dist, path, err := dtw.DTW(sa, sb, &dtw.Options{Band: 10, ReturnPath: true})
//
// Performance:
//
//   - Time:   O(N·M·features)
//   - Memory: O(N·M) (FullMatrix) or O(M) (RollingArray)
package dtw
