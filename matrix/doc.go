// Package matrix offers a small, generic, dense matrix type.
//
// The matrix package provides:
//
//   - Matrix[T], an immutable row-major buffer over any built-in numeric
//     element type (see Numeric), created with New / MustNew / FromRows.
//   - Multiply, the textbook O(r·n·c) product with a typed DimensionError
//     when the inner dimensions disagree.
//   - Display ("{1 2 3}, {4 5 6}") and debug
//     ("Matrix(rows=2, cols=3, {1 2 3}, {4 5 6})") renderings wired into fmt.
//   - Converters to and from gonum's mat.Dense for float64 matrices.
//
// A Matrix is never mutated after construction, so any number of goroutines
// may read or multiply shared matrices without coordination.
//
// Quick start:
//
//	a := matrix.MustNew(2, 3, []int{1, 2, 3, 4, 5, 6})
//	b := matrix.MustNew(3, 2, []int{1, 2, 3, 4, 5, 6})
//	c, err := matrix.Multiply(a, b)
//	if err != nil {
//		var dim *matrix.DimensionError
//		if errors.As(err, &dim) { /* dim.ACols != dim.BRows */ }
//	}
//	fmt.Println(c) // {22 28}, {49 64}
package matrix
