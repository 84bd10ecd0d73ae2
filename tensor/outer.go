// SPDX-License-Identifier: MIT

package tensor

// OuterFlatten returns the outer product x ⊗ y flattened in row-major order:
// out[i*len(y)+j] = x[i]*y[j]. The result has length len(x)*len(y).
//
// Pure function; empty inputs give an empty result.
// Complexity: O(len(x)·len(y)).
func OuterFlatten(x, y []float64) []float64 {
	out := make([]float64, len(x)*len(y))
	addOuter(out, x, y)

	return out
}

// addOuter accumulates x ⊗ y into dst (len(dst) == len(x)*len(y)).
// The grade-0 scalar case (len(x)==1 or len(y)==1) degenerates to an axpy.
func addOuter(dst, x, y []float64) {
	m := len(y)
	var i, j, base int
	var xi float64
	for i = 0; i < len(x); i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		base = i * m
		for j = 0; j < m; j++ {
			dst[base+j] += xi * y[j]
		}
	}
}
