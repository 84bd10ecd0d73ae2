// Package signature provides tunable options for signature computation.
package signature

import (
	"fmt"

	"github.com/katalvlaran/pathsig/tensor"
)

// Option configures Compute and SlidingWindow via functional arguments.
// If an Option is invalid (e.g. negative resync period), it is recorded
// internally and surfaced as ErrOptionViolation when the computation runs.
type Option func(*Options)

// Options holds parameters and callbacks for a signature computation.
type Options struct {
	// TimeAugment appends the sample index (0, 1, 2, …) as an extra channel,
	// so d grows by one.
	TimeAugment bool

	// Resync, if > 0, makes SlidingWindow recompute the window signature
	// from its samples every Resync steps instead of updating it
	// incrementally. 0 disables resynchronisation. Ignored by Compute.
	Resync int

	// OnWindow is called by SlidingWindow for every complete window, in time
	// order, with the column index of the window's right edge. A non-nil
	// error aborts the pass. Ignored by Compute.
	OnWindow func(right int, sig *tensor.Element) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no time augmentation
//   - no resynchronisation (pure incremental update)
//   - a no-op OnWindow hook.
func DefaultOptions() Options {
	return Options{
		TimeAugment: false,
		Resync:      0,
		OnWindow:    func(int, *tensor.Element) error { return nil },
	}
}

// WithTimeAugment enables the time channel.
func WithTimeAugment() Option {
	return func(o *Options) { o.TimeAugment = true }
}

// WithResync recomputes the sliding window directly every n steps.
// n < 0 is recorded as an option violation.
func WithResync(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("WithResync(%d): period must be >= 0: %w", n, ErrOptionViolation)

			return
		}
		o.Resync = n
	}
}

// WithOnWindow installs a per-window hook. A nil hook is recorded as an
// option violation.
func WithOnWindow(fn func(right int, sig *tensor.Element) error) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("WithOnWindow(nil): %w", ErrOptionViolation)

			return
		}
		o.OnWindow = fn
	}
}

// resolveOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func resolveOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o, o.err
}
