// Package tensor implements the truncated tensor algebra over R^d that path
// signatures live in.
//
// 🚀 What is a truncated tensor-algebra element?
//
//	A graded sequence (e₀, e₁, …, e_L) where grade k is a flattened tensor of
//	order k, i.e. a []float64 of length d^k. Grade 0 is always the scalar 1.
//	The truncation level L bounds the highest grade kept.
//
// ✨ Operations:
//   - Identity(d, L)   - the multiplicative unit (1, 0, 0, …).
//   - Exp(x, L)        - exp(x) = Σ x^⊗k / k!, built iteratively as
//     e_k = e_{k-1} ⊗ x / k.
//   - Mul(a, b)        - truncated convolution  (a·b)_k = Σ_{i=0..k} a_i ⊗ b_{k-i}.
//     Associative and unital, NOT commutative.
//   - ToVector / SignatureVector - flattening (with / without the leading 1).
//   - OuterFlatten     - the row-major flattened outer product behind ⊗.
//
// Key identity:
//
//	Mul(Exp(x), Exp(-x)) == Identity   (up to floating-point rounding)
//
// so Exp(-x) is the exact inverse of Exp(x) inside the truncated algebra.
// The sliding-window signature relies on this to drop the oldest increment.
//
// ⚙️ Usage:
//
//	a, _ := tensor.Exp([]float64{1, 0}, 2)
//	b, _ := tensor.Exp([]float64{0, 1}, 2)
//	ab, _ := tensor.Mul(a, b)
//	fmt.Println(ab.SignatureVector()) // [1 1 0.5 1 0 0.5]
//
// Elements are immutable once built: every operation returns a new value.
//
// Performance:
//
//   - Exp:  O(d^L) time and memory.
//   - Mul:  O(L · d^L) time, O(d + … + d^L) memory.
package tensor
