package signature

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsig/matrix"
	"github.com/katalvlaran/pathsig/tensor"
)

// SlidingWindow computes the signature of every window of `window`
// consecutive samples and returns them as columns of an (M, T) matrix,
// M = d + d² + … + d^level (d includes the time channel when enabled).
//
// Column alignment:
//   - columns 0..window-2 hold NaN (no complete window ends there);
//   - column r, r ≥ window-1, holds the signature of samples [r-window+1, r].
//
// Algorithm:
//  1. acc = Compute(samples[0:window]).
//  2. For s = 1..T-window: emit acc at column s+window-2, then
//     acc = exp(X_{s-1} − X_s) · acc            (drop the outgoing increment)
//     acc = acc · exp(X_{s+window-1} − X_{s+window-2})  (append the incoming one)
//  3. Emit the final acc at column T-1.
//
// exp(−Δ) is the exact inverse of exp(Δ) in the truncated algebra, so each
// step costs two products regardless of the window length. With
// WithResync(n) every n-th step recomputes the window from its samples.
//
// Errors:
//   - ErrInvalidConfiguration for level < 1, window < 2 or window > T.
//   - ErrEmptyPath, ErrNaNInf, ErrOptionViolation as for Compute.
//   - any error returned by the OnWindow hook, wrapped with the column.
//
// Complexity: O(T · level · d^level) time, O(M · T) output memory.
func SlidingWindow(path matrix.Reader, window, level int, opts ...Option) (*matrix.Dense, error) {
	o, err := resolveOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("SlidingWindow: %w", err)
	}
	if err = validateLevel(level); err != nil {
		return nil, fmt.Errorf("SlidingWindow: %w", err)
	}
	samples, err := samplesOf(path, o.TimeAugment)
	if err != nil {
		return nil, fmt.Errorf("SlidingWindow: %w", err)
	}
	T := len(samples)
	if window < 2 || window > T {
		return nil, fmt.Errorf("SlidingWindow: window %d for %d samples: %w", window, T, ErrInvalidConfiguration)
	}

	d := len(samples[0])
	out, err := matrix.NewDenseWithOptions(tensor.SignatureLen(d, level), T, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("SlidingWindow: %w", err)
	}
	if err = fillNaN(out, window-1); err != nil {
		return nil, fmt.Errorf("SlidingWindow: %w", err)
	}

	emit := func(right int, sig *tensor.Element) error {
		if hookErr := o.OnWindow(right, sig); hookErr != nil {
			return fmt.Errorf("SlidingWindow: window ending at %d: %w", right, hookErr)
		}

		return writeColumn(out, right, sig.SignatureVector())
	}

	acc, err := fold(samples, 0, window, level)
	if err != nil {
		return nil, fmt.Errorf("SlidingWindow: %w", err)
	}

	var drop, add *tensor.Element
	for s := 1; s <= T-window; s++ {
		if err = emit(s+window-2, acc); err != nil {
			return nil, err
		}

		if o.Resync > 0 && s%o.Resync == 0 {
			if acc, err = fold(samples, s, s+window, level); err != nil {
				return nil, fmt.Errorf("SlidingWindow: %w", err)
			}

			continue
		}

		if drop, err = tensor.Exp(increment(samples[s], samples[s-1]), level); err != nil {
			return nil, fmt.Errorf("SlidingWindow: %w", err)
		}
		if add, err = tensor.Exp(increment(samples[s+window-2], samples[s+window-1]), level); err != nil {
			return nil, fmt.Errorf("SlidingWindow: %w", err)
		}
		if acc, err = tensor.Mul(drop, acc); err != nil {
			return nil, fmt.Errorf("SlidingWindow: %w", err)
		}
		if acc, err = tensor.Mul(acc, add); err != nil {
			return nil, fmt.Errorf("SlidingWindow: %w", err)
		}
	}
	if err = emit(T-1, acc); err != nil {
		return nil, err
	}

	return out, nil
}

// fillNaN marks columns 0..cols-1 as "no value yet".
func fillNaN(out *matrix.Dense, cols int) error {
	nan := math.NaN()
	for j := 0; j < cols; j++ {
		for i := 0; i < out.Rows(); i++ {
			if err := out.Set(i, j, nan); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeColumn stores vec as column j of out.
func writeColumn(out *matrix.Dense, j int, vec []float64) error {
	for i, v := range vec {
		if err := out.Set(i, j, v); err != nil {
			return err
		}
	}

	return nil
}
