// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Element is a truncated tensor-algebra element over R^dim.
//
// grades[k] holds the flattened order-k tensor (len dim^k) for k = 0..level;
// grades[0] is always []float64{1}. Only dim and level are stored; every
// length is derived from them. Elements are never mutated after construction.
type Element struct {
	dim    int
	level  int
	grades [][]float64
}

// GradeLen returns d^k, the number of coefficients at grade k.
func GradeLen(d, k int) int {
	n := 1
	for i := 0; i < k; i++ {
		n *= d
	}

	return n
}

// SignatureLen returns d + d² + … + d^level, the length of a signature vector.
func SignatureLen(d, level int) int {
	total, g := 0, 1
	for k := 1; k <= level; k++ {
		g *= d
		total += g
	}

	return total
}

// validateShape checks the (d, level) pair every constructor relies on.
func validateShape(op string, d, level int) error {
	if d < 1 {
		return tensorErrorf(op, fmt.Errorf("dimension %d: %w", d, ErrInvalidConfiguration))
	}
	if level < 1 {
		return tensorErrorf(op, fmt.Errorf("truncation level %d: %w", level, ErrInvalidConfiguration))
	}

	return nil
}

// newZero allocates the shape (d, level) with grade 0 = [1] and zeros above.
func newZero(d, level int) *Element {
	grades := make([][]float64, level+1)
	grades[0] = []float64{1}
	g := 1
	for k := 1; k <= level; k++ {
		g *= d
		grades[k] = make([]float64, g)
	}

	return &Element{dim: d, level: level, grades: grades}
}

// NewElement builds an Element from explicit grade buffers (copied).
//
// Errors:
//   - ErrInvalidConfiguration for d < 1 or len(grades) < 2.
//   - ErrShapeMismatch when grade k does not hold d^k values.
//   - ErrNonUnitScalar when grades[0] is not [1].
//   - ErrNaNInf for non-finite coefficients.
func NewElement(d int, grades [][]float64) (*Element, error) {
	const op = "NewElement"
	if err := validateShape(op, d, len(grades)-1); err != nil {
		return nil, err
	}
	e := newZero(d, len(grades)-1)
	if len(grades[0]) != 1 || grades[0][0] != 1 {
		return nil, tensorErrorf(op, ErrNonUnitScalar)
	}
	for k := 1; k <= e.level; k++ {
		if len(grades[k]) != len(e.grades[k]) {
			return nil, tensorErrorf(op, fmt.Errorf("grade %d has %d values, want %d: %w",
				k, len(grades[k]), len(e.grades[k]), ErrShapeMismatch))
		}
		for i, v := range grades[k] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, tensorErrorf(op, fmt.Errorf("grade %d index %d: %w", k, i, ErrNaNInf))
			}
		}
		copy(e.grades[k], grades[k])
	}

	return e, nil
}

// Dim returns the underlying vector-space dimension d.
func (e *Element) Dim() int { return e.dim }

// Level returns the truncation level.
func (e *Element) Level() int { return e.level }

// Grade returns a copy of the grade-k component.
func (e *Element) Grade(k int) ([]float64, error) {
	if k < 0 || k > e.level {
		return nil, tensorErrorf("Grade", fmt.Errorf("grade %d of %d: %w", k, e.level, ErrGradeOutOfRange))
	}
	out := make([]float64, len(e.grades[k]))
	copy(out, e.grades[k])

	return out, nil
}

// ToVector concatenates grades 0..level; the first value is always 1.
// Length: 1 + SignatureLen(Dim(), Level()).
func (e *Element) ToVector() []float64 {
	out := make([]float64, 0, 1+SignatureLen(e.dim, e.level))
	for _, g := range e.grades {
		out = append(out, g...)
	}

	return out
}

// SignatureVector concatenates grades 1..level (ToVector without the leading 1).
func (e *Element) SignatureVector() []float64 {
	out := make([]float64, 0, SignatureLen(e.dim, e.level))
	for _, g := range e.grades[1:] {
		out = append(out, g...)
	}

	return out
}

// Clone returns an independent copy.
func (e *Element) Clone() *Element {
	cp := &Element{dim: e.dim, level: e.level, grades: make([][]float64, len(e.grades))}
	for k, g := range e.grades {
		cp.grades[k] = append([]float64(nil), g...)
	}

	return cp
}

// String renders one grade per line, e.g. "0: [1]\n1: [1, 0]\n".
func (e *Element) String() string {
	var b strings.Builder
	for k, g := range e.grades {
		b.WriteString(strconv.Itoa(k))
		b.WriteString(": [")
		for i, v := range g {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
