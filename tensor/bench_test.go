package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathsig/tensor"
)

// benchmarkMul multiplies two generic elements of shape (d, level).
func benchmarkMul(b *testing.B, d, level int) {
	rng := rand.New(rand.NewSource(1))
	x, err := tensor.Exp(randomVec(rng, d), level)
	if err != nil {
		b.Fatalf("Exp failed: %v", err)
	}
	y, err := tensor.Exp(randomVec(rng, d), level)
	if err != nil {
		b.Fatalf("Exp failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tensor.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_D2L4 benchmarks a small planar element.
func BenchmarkMul_D2L4(b *testing.B) { benchmarkMul(b, 2, 4) }

// BenchmarkMul_D5L3 benchmarks a mid-size element (155 coefficients).
func BenchmarkMul_D5L3(b *testing.B) { benchmarkMul(b, 5, 3) }

// BenchmarkExp_D5L4 benchmarks the exponential alone.
func BenchmarkExp_D5L4(b *testing.B) {
	x := []float64{0.1, -0.2, 0.3, -0.4, 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tensor.Exp(x, 4); err != nil {
			b.Fatalf("Exp failed: %v", err)
		}
	}
}
