// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// impl_walk.go - deterministic Gaussian random walk in R^d.
//
// Contract:
//   - BuildRandomWalk(d, n, seed, opts...) returns a d×n path starting at 0.
//   - X_t = X_{t-1} + stepScale·Z + trend, Z ~ N(0,1) per channel.
//   - O(d·n) time and memory. No panics. No global state.

package builder

import "github.com/katalvlaran/pathsig/matrix"

// BuildRandomWalk returns a d×n Gaussian random-walk path.
//
// Errors:
//   - ErrBadSize for d < 1 or n < 1.
func BuildRandomWalk(d, n int, seed int64, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateSize(MethodRandomWalk, d, n); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	path, err := newPath(MethodRandomWalk, d, n)
	if err != nil {
		return nil, err
	}

	// Running position per channel; column 0 stays at the origin.
	pos := make([]float64, d)
	var i, t int
	for t = 1; t < n; t++ {
		for i = 0; i < d; i++ {
			pos[i] += cfg.stepScale*rng.NormFloat64() + cfg.trendK
			if err = path.Set(i, t, pos[i]); err != nil {
				return nil, builderErrorf(MethodRandomWalk, err, "sample %d", t)
			}
		}
	}

	return path, nil
}
