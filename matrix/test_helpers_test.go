// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for constructors and kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matfan/matrix"
)

// seq returns [1, 2, ..., n] as T.
func seq[T matrix.Numeric](n int) []T {
	out := make([]T, n)
	var v T
	for i := range out {
		v++ // T(i+1) does not convert for complex T
		out[i] = v
	}

	return out
}

// mustNew builds a matrix or fails the test immediately.
func mustNew[T matrix.Numeric](tb testing.TB, r, c int, data []T) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New(r, c, data)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// randFloats fills an r×c matrix with values in [-1,1) from a fixed seed.
func randFloats(tb testing.TB, r, c int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return mustNew(tb, r, c, data)
}

// naiveAt is an independent reference for (A×B)[i,j] built on the public At accessor.
func naiveAt[T matrix.Numeric](tb testing.TB, a, b *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	var acc T
	for k := 0; k < a.Cols(); k++ {
		av, err := a.At(i, k)
		if err != nil {
			tb.Fatal(err)
		}
		bv, err := b.At(k, j)
		if err != nil {
			tb.Fatal(err)
		}
		acc += av * bv
	}

	return acc
}
