// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and structured shape errors.
// All constructors and kernels MUST return these sentinels (directly or via a
// structured type whose Is method matches them) and tests MUST check them via
// errors.Is / errors.As. No kernel panics on user-triggered error conditions;
// MustNew is the single documented exception.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary only.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> negative shape -> buffer/shape mismatch -> dimension mismatch.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates that the supplied buffer length differs from rows*cols.
	ErrShapeMismatch = errors.New("matrix: buffer length does not match shape")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Multiply where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// DimensionError reports the four operand dimensions of a rejected Multiply.
// It matches ErrDimensionMismatch under errors.Is.
type DimensionError struct {
	ARows, ACols int // left operand shape
	BRows, BCols int // right operand shape
}

// Error renders both shapes so the failing call can be diagnosed from logs alone.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: cannot multiply %dx%d by %dx%d: inner dimensions differ",
		e.ARows, e.ACols, e.BRows, e.BCols)
}

// Is makes errors.Is(err, ErrDimensionMismatch) hold for *DimensionError.
func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// ShapeError reports a constructor call whose buffer cannot back the requested shape.
// It matches ErrShapeMismatch under errors.Is.
type ShapeError struct {
	Rows, Cols int // requested shape
	Len        int // supplied buffer length
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: shape %dx%d needs %d elements, got %d",
		e.Rows, e.Cols, e.Rows*e.Cols, e.Len)
}

// Is makes errors.Is(err, ErrShapeMismatch) hold for *ShapeError.
func (e *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }
