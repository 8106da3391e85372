package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matfan/matrix"
)

// ExampleMultiply shows the canonical 2×3 by 3×2 product.
func ExampleMultiply() {
	a := matrix.MustNew(2, 3, []int{1, 2, 3, 4, 5, 6})
	b := matrix.MustNew(3, 2, []int{1, 2, 3, 4, 5, 6})

	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output:
	// {22 28}, {49 64}
}

// ExampleMultiply_mismatch shows how to inspect a rejected product.
func ExampleMultiply_mismatch() {
	a := matrix.MustNew(2, 3, []int{1, 2, 3, 4, 5, 6})
	b := matrix.MustNew(2, 2, []int{1, 2, 3, 4})

	_, err := matrix.Multiply(a, b)
	var dim *matrix.DimensionError
	if errors.As(err, &dim) {
		fmt.Println(dim.ACols, "!=", dim.BRows)
	}
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// 3 != 2
	// true
}

// ExampleMatrix_Debug contrasts the display and debug renderings.
func ExampleMatrix_Debug() {
	m := matrix.MustNew(2, 3, []int{1, 2, 3, 4, 5, 6})

	fmt.Printf("%v\n", m)
	fmt.Printf("%+v\n", m)
	// Output:
	// {1 2 3}, {4 5 6}
	// Matrix(rows=2, cols=3, {1 2 3}, {4 5 6})
}
