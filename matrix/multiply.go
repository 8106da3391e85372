// SPDX-License-Identifier: MIT
// Package matrix provides the multiplication kernel over Matrix[T].
//
// Purpose:
//   - Textbook dense product C = A × B with fail-fast operand validation.
//   - Fixed i→j→k loop order so float results are bit-reproducible.

package matrix

import "fmt"

// opMul is the operation tag used when wrapping validation failures.
const opMul = "Multiply"

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply returns the matrix product C = A × B as a freshly allocated Matrix.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil operands, a.Cols == b.Rows).
//   - Stage 2: allocate C (a.Rows × b.Cols) zero-filled.
//   - Stage 3: for i, for j, for k: acc += A[i*ac+k] * B[k*bc+j]; C[i*bc+j] = acc.
//
// Behavior highlights:
//   - The accumulator starts at T's zero value and grows with +=.
//   - No zero-skipping, blocking or reordering: for floating-point T the
//     summation order is exactly k = 0..ac-1.
//   - Overflow is whatever T does natively (integers wrap).
//   - Operands are never mutated; the result shares no storage with them.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix[T]: new matrix with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil operand, wrapped with "Multiply").
//   - *DimensionError matching ErrDimensionMismatch (a.Cols != b.Rows),
//     wrapped with "Multiply"; use errors.As to read the four sizes.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	out := make([]T, aRows*bCols)

	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < aCols; k++ {
				acc += a.data[i*aCols+k] * b.data[k*bCols+j]
			}
			out[i*bCols+j] = acc
		}
	}

	return &Matrix[T]{r: aRows, c: bCols, data: out}, nil
}
