// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels and Transpose.
//
// Purpose:
//   - Companions to Multiply for building test fixtures and small pipelines.
//   - Every kernel allocates exactly one result; operands are never mutated.

package matrix

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// zip applies f pairwise over two same-shape operands into a fresh matrix.
// Shared by Add, Sub and Hadamard so they validate and allocate identically.
func zip[T Numeric](a, b *Matrix[T], tag string, f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := make([]T, len(a.data))
	for idx := range out { // flat 0..n-1
		out[idx] = f(a.data[idx], b.data[idx])
	}

	return &Matrix[T]{r: a.r, c: a.c, data: out}, nil
}

// Add returns C = A + B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ), wrapped with "Add".
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return zip(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub returns C = A - B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ), wrapped with "Sub".
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return zip(a, b, opSub, func(x, y T) T { return x - y })
}

// Hadamard returns the elementwise product A ⊙ B. Use Multiply for A × B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, wrapped with "Hadamard".
func Hadamard[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return zip(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
func Scale[T Numeric](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := make([]T, len(m.data))
	for idx, v := range m.data {
		out[idx] = alpha * v
	}

	return &Matrix[T]{r: m.r, c: m.c, data: out}, nil
}

// Transpose returns Mᵀ with shape (cols × rows).
//
// Implementation:
//   - data[i*cols+j] → out[j*rows+i], fixed i→j order.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Numeric](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	out := make([]T, len(m.data))
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out[j*rows+i] = m.data[base+j]
		}
	}

	return &Matrix[T]{r: cols, c: rows, data: out}, nil
}
