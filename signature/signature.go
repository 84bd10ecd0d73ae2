package signature

import (
	"fmt"

	"github.com/katalvlaran/pathsig/matrix"
	"github.com/katalvlaran/pathsig/tensor"
)

// Compute returns the truncated signature of path as a tensor-algebra element.
//
// Algorithm (Chen's relation on a piecewise-linear path):
//  1. acc = Identity(d, level).
//  2. For t = 1..T-1: acc = acc · exp(X_t − X_{t−1}), strictly in time order.
//  3. Return acc.
//
// A path with a single sample yields the identity.
//
// Errors:
//   - ErrInvalidConfiguration (joined with tensor.ErrInvalidConfiguration) for level < 1.
//   - ErrEmptyPath for a nil or empty path.
//   - ErrNaNInf (joined with matrix.ErrNaNInf) for a non-finite sample.
//   - ErrOptionViolation for an invalid Option.
//
// Complexity: O(T · level · d^level) time, O(d^level) extra memory.
func Compute(path matrix.Reader, level int, opts ...Option) (*tensor.Element, error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	if err = validateLevel(level); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	samples, err := samplesOf(path, o.TimeAugment)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	return fold(samples, 0, len(samples), level)
}

// ComputeVector returns the signature of path flattened to grades 1..level,
// i.e. Compute(...).SignatureVector(): length d + d² + … + d^level.
func ComputeVector(path matrix.Reader, level int, opts ...Option) ([]float64, error) {
	sig, err := Compute(path, level, opts...)
	if err != nil {
		return nil, err
	}

	return sig.SignatureVector(), nil
}

// Increments returns the T-1 consecutive differences X_t − X_{t−1} in time
// order. A single-sample path has no increments.
func Increments(path matrix.Reader) ([][]float64, error) {
	samples, err := samplesOf(path, false)
	if err != nil {
		return nil, fmt.Errorf("Increments: %w", err)
	}
	out := make([][]float64, 0, len(samples)-1)
	for t := 1; t < len(samples); t++ {
		out = append(out, increment(samples[t-1], samples[t]))
	}

	return out, nil
}

// AugmentTime returns a copy of path with an extra last row holding the
// sample index 0, 1, …, T-1.
func AugmentTime(path matrix.Reader) (*matrix.Dense, error) {
	samples, err := samplesOf(path, true)
	if err != nil {
		return nil, fmt.Errorf("AugmentTime: %w", err)
	}
	d, T := len(samples[0]), len(samples)
	out, err := matrix.NewDense(d, T)
	if err != nil {
		return nil, fmt.Errorf("AugmentTime: %w", err)
	}
	for t, s := range samples {
		for i, v := range s {
			if err = out.Set(i, t, v); err != nil {
				return nil, fmt.Errorf("AugmentTime: %w", err)
			}
		}
	}

	return out, nil
}

// validateLevel rejects truncation levels below 1.
func validateLevel(level int) error {
	if level < 1 {
		return fmt.Errorf("truncation level %d: %w: %w", level, ErrInvalidConfiguration, tensor.ErrInvalidConfiguration)
	}

	return nil
}

// samplesOf reads path column by column into T samples of length d
// (d+1 with the time channel), rejecting nil, empty and non-finite input.
func samplesOf(path matrix.Reader, timeAugment bool) ([][]float64, error) {
	if err := matrix.ValidateNotNil(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyPath, err)
	}
	d, T := path.Rows(), path.Cols()
	if d < 1 || T < 1 {
		return nil, fmt.Errorf("shape (%d, %d): %w", d, T, ErrEmptyPath)
	}
	if err := matrix.ValidateFinite(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNaNInf, err)
	}

	width := d
	if timeAugment {
		width++
	}
	samples := make([][]float64, T)
	var i, t int
	var err error
	for t = 0; t < T; t++ {
		s := make([]float64, width)
		for i = 0; i < d; i++ {
			if s[i], err = path.At(i, t); err != nil {
				return nil, err
			}
		}
		if timeAugment {
			s[d] = float64(t)
		}
		samples[t] = s
	}

	return samples, nil
}

// increment returns to − from.
func increment(from, to []float64) []float64 {
	out := make([]float64, len(to))
	for i := range to {
		out[i] = to[i] - from[i]
	}

	return out
}

// fold runs Chen's relation over samples[from:to]: the product, in time
// order, of the exponentials of its increments.
func fold(samples [][]float64, from, to, level int) (*tensor.Element, error) {
	acc, err := tensor.Identity(len(samples[from]), level)
	if err != nil {
		return nil, err
	}
	var step *tensor.Element
	for t := from + 1; t < to; t++ {
		if step, err = tensor.Exp(increment(samples[t-1], samples[t]), level); err != nil {
			return nil, err
		}
		if acc, err = tensor.Mul(acc, step); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
