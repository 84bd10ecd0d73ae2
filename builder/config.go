// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil  (each builder falls back to its seed argument)
//   • amplitude   = 1.0
//   • frequency   = 1.0  (multiplies the chirp sweep)
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//   • stepScale   = 1.0  (random-walk step stdev)
//   • start       = 100  (GBM initial price)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "use the seed argument".
	rng *rand.Rand

	amplitude  float64 // >0
	frequency  float64 // >0, chirp sweep multiplier
	trendK     float64 // any real, added per sample
	noiseSigma float64 // >=0
	stepScale  float64 // >0, random-walk step stdev
	start      float64 // >0, GBM start price
}

const (
	defaultAmplitude  = 1.0
	defaultFrequency  = 1.0
	defaultTrend      = 0.0
	defaultNoiseSigma = 0.0
	defaultStepScale  = 1.0
	defaultStart      = 100.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		stepScale:  defaultStepScale,
		start:      defaultStart,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
