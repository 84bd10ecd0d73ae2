// SPDX-License-Identifier: MIT
// Package: pathsig/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf (method prefix + %w).
//   • Builders MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates invalid sizes for path datasets (dimension < 1,
// length < 1).
// Usage: if errors.Is(err, ErrBadSize) { /* fix d/n */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates that a resolved option combination cannot
// produce a path (e.g. a non-positive GBM start price). Meaningless single
// values panic in their WithX constructor instead.
var ErrOptionViolation = errors.New("builder: invalid option value")

// Canonical constructor names used as error prefixes.
const (
	MethodRandomWalk = "RandomWalk"
	MethodChirp      = "Chirp"
	MethodGBM        = "GBM"
)

// builderErrorf returns "<method>: <formatted message>: <sentinel>" keeping
// the sentinel matchable with errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
