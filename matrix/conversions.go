// Package matrix provides converters between Matrix and other
// representations: nested row slices and gonum dense matrices.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows builds a Matrix from a slice of equally sized rows.
// An empty input yields a 0×0 matrix. Ragged input returns ErrShapeMismatch.
//
// Time Complexity: O(r*c)
func FromRows[T Numeric](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d elements, want %d: %w",
				i, len(row), cols, ErrShapeMismatch)
		}
		data = append(data, row...)
	}

	return &Matrix[T]{r: len(rows), c: cols, data: data}, nil
}

// ToGonum copies m into a new *mat.Dense.
// gonum forbids zero-sized dense matrices, so an empty shape returns ErrBadShape.
//
// Time Complexity: O(r*c)
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("ToGonum(%dx%d): %w", m.r, m.c, ErrBadShape)
	}

	return mat.NewDense(m.r, m.c, m.Values()), nil
}

// FromGonum copies any gonum matrix into a new Matrix[float64].
//
// Time Complexity: O(r*c)
func FromGonum(src mat.Matrix) (*Matrix[float64], error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = src.At(i, j)
		}
	}

	return &Matrix[float64]{r: r, c: c, data: data}, nil
}
