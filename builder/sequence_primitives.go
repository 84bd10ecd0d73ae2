// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// sequence_primitives.go - shared helpers for path builders.
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/pathsig/matrix"
)

// tau is 2π.
const tau = 2.0 * math.Pi

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// validateSize checks the (d, n) pair shared by all builders.
func validateSize(method string, d, n int) error {
	if d < 1 {
		return builderErrorf(method, ErrBadSize, "dimension %d", d)
	}
	if n < 1 {
		return builderErrorf(method, ErrBadSize, "length %d", n)
	}

	return nil
}

// newPath allocates a d×n path with the default (finite-only) policy.
func newPath(method string, d, n int) (*matrix.Dense, error) {
	p, err := matrix.NewDense(d, n)
	if err != nil {
		return nil, builderErrorf(method, err, "allocate %dx%d", d, n)
	}

	return p, nil
}
