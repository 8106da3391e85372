// SPDX-License-Identifier: MIT

// Package matrix - owned row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep the buffer exclusively owned: constructors copy input, readers return copies.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c); Values: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// New creates a rows×cols matrix backed by a private copy of data (row-major).
// MAIN DESCRIPTION:
//   - Public constructor with eager shape validation.
//
// Implementation:
//   - Stage 1: reject negative dimensions and shapes whose element count
//     overflows int (ErrBadShape).
//   - Stage 2: reject len(data) != rows*cols (*ShapeError / ErrShapeMismatch).
//   - Stage 3: copy data into a freshly allocated buffer.
//
// Behavior highlights:
//   - Zero-sized shapes (0×n, n×0) are legal and render as empty groups.
//   - The caller may freely reuse data afterwards; no aliasing remains.
//
// Errors:
//   - ErrBadShape, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Numeric](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrBadShape)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%s(%d,%d): element count overflows int: %w", ctxNew, rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, &ShapeError{Rows: rows, Cols: cols, Len: len(data)}
	}

	buf := make([]T, len(data))
	copy(buf, data) // take ownership

	return &Matrix[T]{r: rows, c: cols, data: buf}, nil
}

// MustNew is like New but panics on error.
// Intended for literals in tests and examples where the shape is known good.
func MustNew[T Numeric](rows, cols int, data []T) *Matrix[T] {
	m, err := New(rows, cols, data)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Matrix[T]) Len() int { return len(m.data) }

// At returns the element at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the error carries the coordinates.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, fmt.Errorf("%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns a row-major copy of the backing buffer.
// Mutating the result never affects m.
func (m *Matrix[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Floats compare with ==, so NaN never equals itself.
func Equal[T Numeric](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
