// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// options.go - functional options for path builders. Constructors panic on
// nonsensical values (programmer error); builders themselves never panic.

package builder

import "math/rand"

// BuilderOption mutates builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared across builder calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// It overrides the seed argument of the builder it is passed to.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAmplitude sets the chirp amplitude A (>0).
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) { c.amplitude = A }
}

// WithFrequency scales the chirp sweep (>0).
func WithFrequency(f float64) BuilderOption {
	if f <= 0 {
		panic("builder: WithFrequency(f<=0)")
	}
	return func(c *builderConfig) { c.frequency = f }
}

// WithTrend adds k per sample to every channel (any real value).
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise sets additive Gaussian noise sigma (>=0) for the chirp path.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithStepScale sets the random-walk step standard deviation (>0).
func WithStepScale(s float64) BuilderOption {
	if s <= 0 {
		panic("builder: WithStepScale(s<=0)")
	}
	return func(c *builderConfig) { c.stepScale = s }
}

// WithStart sets the GBM start price. Non-positive values are rejected by
// BuildGBMPath with ErrOptionViolation.
func WithStart(s0 float64) BuilderOption {
	return func(c *builderConfig) { c.start = s0 }
}
