// Package signature computes truncated path signatures of piecewise-linear
// paths, over the whole path or over a sliding window.
//
// 🚀 What is a path signature?
//
//	The signature of a path X : [0,T] → R^d is the sequence of its iterated
//	integrals. For a piecewise-linear path it factorises over segments
//	(Chen's relation):
//
//	  S(X) = exp(Δ₁) · exp(Δ₂) · … · exp(Δ_{T-1})
//
//	where Δ_t = X_t − X_{t−1} and · is the (non-commutative) product of the
//	truncated tensor algebra (package tensor).
//
// ✨ Key features:
//   - Compute / ComputeVector - full-path signature, as an element or as a
//     flat vector without the constant leading 1.
//   - SlidingWindow - signatures of every window of `window` samples with
//     two tensor products per step: the outgoing increment is removed by
//     left-multiplying with exp(−Δ), the incoming one appended on the right.
//   - WithTimeAugment - append the time index as an extra channel.
//   - WithResync - periodically recompute the window directly to bound drift.
//   - WithOnWindow - per-window hook.
//
// ⚙️ Usage:
//
//	path, _ := matrix.NewDenseFromRows([][]float64{
//	  {0, 1, 1, 2}, // channel 0
//	  {0, 0, 1, 1}, // channel 1
//	})
//	sig, err := signature.ComputeVector(path, 2)
//	win, err := signature.SlidingWindow(path, 3, 2, signature.WithTimeAugment())
//
// Paths are matrix.Reader values of shape (d, T): one row per channel, one
// column per sample. A path with a single sample has the identity signature.
//
// Performance:
//
//   - Compute:       O(T · L · d^L)
//   - SlidingWindow: O(T · L · d^L), independent of the window length.
package signature
