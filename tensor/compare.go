// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// AllClose reports whether a and b share a shape and every coefficient
// satisfies |a-b| ≤ atol + rtol*|b|.
//
// Errors:
//   - ErrNilElement, ErrShapeMismatch, ErrNaNInf (non-finite tolerance).
func AllClose(a, b *Element, rtol, atol float64) (bool, error) {
	const op = "AllClose"
	if a == nil || b == nil {
		return false, tensorErrorf(op, ErrNilElement)
	}
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, tensorErrorf(op, ErrNaNInf)
	}
	if a.dim != b.dim || a.level != b.level {
		return false, tensorErrorf(op, fmt.Errorf("(d=%d, level=%d) vs (d=%d, level=%d): %w",
			a.dim, a.level, b.dim, b.level, ErrShapeMismatch))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	for k := range a.grades {
		ga, gb := a.grades[k], b.grades[k]
		for i := range ga {
			if math.Abs(ga[i]-gb[i]) > atol+rtol*math.Abs(gb[i]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact coefficient equality of two same-shape elements.
// Elements of different shape are never equal.
func Equal(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dim != b.dim || a.level != b.level {
		return false
	}
	for k := range a.grades {
		for i, v := range a.grades[k] {
			if v != b.grades[k][i] {
				return false
			}
		}
	}

	return true
}
