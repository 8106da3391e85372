// Package matrix_test provides benchmarks for the multiplication kernel,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matfan/matrix"
	"gonum.org/v1/gonum/mat"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkS string
)

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randFloats(b, n, n, 1337)
			B := randFloats(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkGonumMul is the BLAS-backed baseline for BenchmarkMultiply.
func BenchmarkGonumMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, _ := matrix.ToGonum(randFloats(b, n, n, 1337))
			B, _ := matrix.ToGonum(randFloats(b, n, n, 4242))
			var C mat.Dense
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C.Reset()
				C.Mul(A, B)
			}
		})
	}
}

func BenchmarkString(b *testing.B) {
	m := randFloats(b, 64, 64, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = m.String()
	}
}
