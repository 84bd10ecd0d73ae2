// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// impl_chirp.go - deterministic planar chirp path.
//
// Purpose:
//   - Produce a 2×n path (A·cos θ, A·sin θ) whose angular speed sweeps
//     linearly from f0 to f1; a rotating path with non-trivial Lévy area.
//   - Optional linear trend and Gaussian noise on both channels.
//
// Contract:
//   - BuildChirpPath(n, seed, opts...) returns a 2×n path.
//   - O(n) time, O(n) memory. No panics. No global state.
//
// Determinism policy (aligned with other builders):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).

package builder

import (
	"math"

	"github.com/katalvlaran/pathsig/matrix"
)

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample) > 0
	defChirpF1 = 0.25 // end   frequency (cycles/sample) > 0
)

// BuildChirpPath returns a 2×n planar chirp:
//   - fᵢ  = frequency · (f0 + (f1 − f0) · i/(n−1))
//   - θᵢ₊₁ = θᵢ + τ · fᵢ                      (θ₀ = 0, τ = 2π)
//   - Xᵢ  = (A·cos θᵢ, A·sin θᵢ) + trend·i + noise
//
// Errors:
//   - ErrBadSize for n < 1.
func BuildChirpPath(n int, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	const d = 2
	if err := validateSize(MethodChirp, d, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	path, err := newPath(MethodChirp, d, n)
	if err != nil {
		return nil, err
	}

	var (
		theta float64 // phase accumulator
		frac  float64 // normalized position in [0,1]
		fi    float64 // instantaneous frequency
		x, y  float64
	)
	for i := 0; i < n; i++ {
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		x = cfg.amplitude*math.Cos(theta) + cfg.trendK*float64(i)
		y = cfg.amplitude*math.Sin(theta) + cfg.trendK*float64(i)
		if cfg.noiseSigma > 0 {
			x += cfg.noiseSigma * rng.NormFloat64()
			y += cfg.noiseSigma * rng.NormFloat64()
		}
		if err = path.Set(0, i, x); err != nil {
			return nil, builderErrorf(MethodChirp, err, "sample %d", i)
		}
		if err = path.Set(1, i, y); err != nil {
			return nil, builderErrorf(MethodChirp, err, "sample %d", i)
		}

		fi = cfg.frequency * (defChirpF0 + (defChirpF1-defChirpF0)*frac)
		theta += tau * fi
	}

	return path, nil
}
