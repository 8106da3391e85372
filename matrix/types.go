// SPDX-License-Identifier: MIT

// Package matrix: element capability set and the Matrix type.
// This file intentionally contains ONLY domain-facing types. Errors live in
// errors.go, constructors/accessors in dense.go, kernels in multiply.go.
package matrix

import "golang.org/x/exp/constraints"

// Numeric is the capability set an element type must provide:
// value copy, multiplication and addition closed over the type, in-place
// accumulation (+=) and a usable zero value as additive identity.
//
// Every built-in integer, floating-point and complex type (and any named type
// derived from them) qualifies. Overflow is whatever the type does natively:
// integers wrap, floats round or saturate to ±Inf; nothing is checked.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Matrix is an immutable, dense, row-major matrix of Numeric elements.
//   - r,c hold the shape (rows, cols), both >= 0.
//   - data is the exclusively owned flat buffer; element (i,j) lives at i*c + j.
//
// Invariant: len(data) == r*c. Constructors enforce it; nothing mutates a
// Matrix after construction, so a *Matrix may be shared across goroutines.
type Matrix[T Numeric] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}
