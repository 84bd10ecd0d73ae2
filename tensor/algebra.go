// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
)

// Identity returns the multiplicative unit of the truncated algebra:
// grade 0 = [1], grade k = d^k zeros.
//
// Errors:
//   - ErrInvalidConfiguration for d < 1 or level < 1.
//
// Complexity: O(d^level) allocation.
func Identity(d, level int) (*Element, error) {
	if err := validateShape("Identity", d, level); err != nil {
		return nil, err
	}

	return newZero(d, level), nil
}

// Exp returns the truncated tensor exponential of x:
//
//	grade 0 = [1],  grade k = grade(k-1) ⊗ x / k,   k = 1..level.
//
// Errors:
//   - ErrInvalidConfiguration for len(x) < 1 or level < 1.
//   - ErrNaNInf when x has a non-finite component.
//
// Complexity: O(d^level).
func Exp(x []float64, level int) (*Element, error) {
	const op = "Exp"
	d := len(x)
	if err := validateShape(op, d, level); err != nil {
		return nil, err
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, tensorErrorf(op, fmt.Errorf("component %d: %w", i, ErrNaNInf))
		}
	}

	e := newZero(d, level)
	var k, i, j, base int
	var inv, pi float64
	for k = 1; k <= level; k++ {
		prev, cur := e.grades[k-1], e.grades[k]
		inv = 1 / float64(k)
		for i = 0; i < len(prev); i++ {
			pi = prev[i] * inv
			base = i * d
			for j = 0; j < d; j++ {
				cur[base+j] = pi * x[j]
			}
		}
	}

	return e, nil
}

// Mul returns the truncated product a·b:
//
//	(a·b)_k = Σ_{i=0..k} a_i ⊗ b_{k-i},   k = 1..level,   (a·b)_0 = [1].
//
// Order matters: Mul(a, b) != Mul(b, a) in general.
//
// Errors:
//   - ErrNilElement for a nil operand.
//   - ErrShapeMismatch when a and b differ in Dim() or Level().
//
// Complexity: O(level · d^level).
func Mul(a, b *Element) (*Element, error) {
	const op = "Mul"
	if a == nil || b == nil {
		return nil, tensorErrorf(op, ErrNilElement)
	}
	if a.dim != b.dim || a.level != b.level {
		return nil, tensorErrorf(op, fmt.Errorf("(d=%d, level=%d) vs (d=%d, level=%d): %w",
			a.dim, a.level, b.dim, b.level, ErrShapeMismatch))
	}

	out := newZero(a.dim, a.level)
	var k, i int
	for k = 1; k <= a.level; k++ {
		dst := out.grades[k]
		for i = 0; i <= k; i++ {
			addOuter(dst, a.grades[i], b.grades[k-i])
		}
	}

	return out, nil
}
