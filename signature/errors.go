// SPDX-License-Identifier: MIT
// Package: pathsig/signature
//
// errors.go - sentinel errors for the signature package.
//
// Error policy:
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Errors caused by lower layers are joined with the local sentinel
//     ("%w: %w"), so both errors.Is(err, ErrNaNInf) and
//     errors.Is(err, matrix.ErrNaNInf) hold.
//   • A single-sample path is not an error: its signature is the identity.

package signature

import "errors"

var (
	// ErrInvalidConfiguration indicates level < 1, window < 2 or window > T.
	ErrInvalidConfiguration = errors.New("signature: invalid configuration")

	// ErrEmptyPath indicates a nil path or a path without channels/samples.
	ErrEmptyPath = errors.New("signature: empty path")

	// ErrNaNInf indicates a non-finite sample in the path.
	ErrNaNInf = errors.New("signature: NaN or Inf in path")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("signature: invalid option supplied")
)
