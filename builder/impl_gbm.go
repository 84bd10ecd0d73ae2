// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// impl_gbm.go - deterministic multi-asset geometric Brownian motion path.
//
// Purpose:
//   - Emit d independent price channels following discrete GBM; a typical
//     input for windowed signature features on market data.
//
// Contract:
//   - BuildGBMPath(d, n, seed, opts...) returns a d×n strictly positive path.
//   - O(d·n) time and memory. No panics.
//
// Invariants:
//   - column 0 equals the start price on every channel.

package builder

import (
	"math"

	"github.com/katalvlaran/pathsig/matrix"
)

const (
	defGBMDailyMu  = 0.0005 // drift μ per sample
	defGBMDailyVol = 0.02   // volatility σ per sample (≥0)
)

// BuildGBMPath returns d independent GBM channels of length n:
//
//	S_{t+1} = S_t · exp((μ − σ²/2) + σ·Z),  Z ~ N(0,1).
//
// Errors:
//   - ErrBadSize for d < 1 or n < 1.
//   - ErrOptionViolation when WithStart set a non-positive price.
func BuildGBMPath(d, n int, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateSize(MethodGBM, d, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if !(cfg.start > 0) || math.IsInf(cfg.start, 0) {
		return nil, builderErrorf(MethodGBM, ErrOptionViolation, "start price %g", cfg.start)
	}
	rng := rngFrom(cfg, seed)

	path, err := newPath(MethodGBM, d, n)
	if err != nil {
		return nil, err
	}

	drift := defGBMDailyMu - 0.5*defGBMDailyVol*defGBMDailyVol
	price := make([]float64, d)
	var i, t int
	for i = 0; i < d; i++ {
		price[i] = cfg.start
		if err = path.Set(i, 0, price[i]); err != nil {
			return nil, builderErrorf(MethodGBM, err, "channel %d", i)
		}
	}
	for t = 1; t < n; t++ {
		for i = 0; i < d; i++ {
			price[i] *= math.Exp(drift + defGBMDailyVol*rng.NormFloat64())
			if err = path.Set(i, t, price[i]); err != nil {
				return nil, builderErrorf(MethodGBM, err, "sample %d", t)
			}
		}
	}

	return path, nil
}
