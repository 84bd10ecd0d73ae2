// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathsig/matrix"
)

var (
	// ErrEmptySequence indicates an input without usable (non-NaN) steps.
	ErrEmptySequence = errors.New("dtw: input sequences must be non-empty")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrFeatureMismatch indicates sequences with different feature counts.
	ErrFeatureMismatch = errors.New("dtw: feature dimension mismatch")

	// ErrNoAlignment indicates that the band excludes every monotone path.
	ErrNoAlignment = errors.New("dtw: band too narrow for sequence lengths")
)

// DTW aligns two feature sequences stored column-wise (row = feature,
// column = time step), e.g. two sliding-window signature outputs.
// Columns holding any NaN are dropped first, so the leading "no full
// window yet" columns never take part; returned path indices refer to the
// kept columns of a and b in order.
//
// Algorithm (Full-Matrix):
//  1. Let n, m be the kept column counts. D[0][0] = 0, first row/col = +∞.
//  2. For i = 1..n, j = 1..m with |i-j| ≤ Band:
//     D[i][j] = ‖a_i − b_j‖₂ + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1]).
//  3. distance = D[n][m]; optional backtrack from (n,m).
//
// Errors:
//   - ErrEmptySequence, ErrFeatureMismatch, ErrPathNeedsFullMatrix,
//     ErrNoAlignment, matrix.ErrNilMatrix.
//
// Complexity: Time O(n·m·features), Memory O(n·m) or O(m).
func DTW(a, b matrix.Reader, opts *Options) (distance float64, path [][2]int, err error) {
	if err = matrix.ValidateNotNil(a); err != nil {
		return 0, nil, fmt.Errorf("dtw: %w", err)
	}
	if err = matrix.ValidateNotNil(b); err != nil {
		return 0, nil, fmt.Errorf("dtw: %w", err)
	}
	if a.Rows() != b.Rows() {
		return 0, nil, fmt.Errorf("%d vs %d features: %w", a.Rows(), b.Rows(), ErrFeatureMismatch)
	}
	xs, err := steps(a)
	if err != nil {
		return 0, nil, err
	}
	ys, err := steps(b)
	if err != nil {
		return 0, nil, err
	}
	n, m := len(xs), len(ys)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptySequence
	}

	band := math.MaxInt32
	penalty := 0.0
	mem := FullMatrix
	wantPath := false
	if opts != nil {
		if opts.Band > 0 {
			band = opts.Band
		}
		penalty = opts.SlopePenalty
		mem = opts.MemoryMode
		wantPath = opts.ReturnPath
	}
	if wantPath && mem != FullMatrix {
		return 0, nil, ErrPathNeedsFullMatrix
	}
	if abs(n-m) > band {
		return 0, nil, fmt.Errorf("lengths %d and %d, band %d: %w", n, m, band, ErrNoAlignment)
	}

	rows := 2
	if mem == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	row := func(i int) []float64 {
		if mem == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > band {
				curr[j] = inf
				continue
			}
			curr[j] = euclidean(xs[i-1], ys[j-1]) + min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
		}
	}
	distance = row(n)[m]

	if wantPath {
		path = backtrack(dp, n, m, penalty)
	}

	return distance, path, nil
}

// backtrack walks from (n,m) to (1,1) choosing the predecessor with the
// smallest accumulated cost (diagonal first on ties).
func backtrack(dp [][]float64, n, m int, penalty float64) [][2]int {
	var path [][2]int
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, [2]int{i - 1, j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// steps returns the columns of m that contain no NaN.
func steps(m matrix.Reader) ([][]float64, error) {
	out := make([][]float64, 0, m.Cols())
	var i, j int
	for j = 0; j < m.Cols(); j++ {
		col := make([]float64, m.Rows())
		keep := true
		for i = 0; i < m.Rows(); i++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("dtw: %w", err)
			}
			if math.IsNaN(v) {
				keep = false
				break
			}
			col[i] = v
		}
		if keep {
			out = append(out, col)
		}
	}

	return out, nil
}

// euclidean returns ‖x − y‖₂.
func euclidean(x, y []float64) float64 {
	var s float64
	for k := range x {
		d := x[k] - y[k]
		s += d * d
	}
	return math.Sqrt(s)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
