// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. The only panics in the package are
// the trusted fast path AtUnchecked and the Must* literal constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// sentinels with matrixErrorf(op, err) so callers see "Add: matrix: ..." and
// still match with errors.Is.

var (
	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub/Hadamard
	// with different shapes, or Mul where left.Cols != right.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncorrectLength indicates that a flat input or an inserted row does not
	// hold the number of elements the target shape requires.
	ErrIncorrectLength = errors.New("matrix: incorrect length")

	// ErrOutOfRange indicates that a coordinate lies outside the matrix extents.
	// Checked accessors (At, Row) return it; they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested extents are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// DimensionError reports the two offending shapes of a failed binary operation.
// It matches ErrDimensionMismatch under errors.Is.
type DimensionError struct {
	Op    string // operation tag (opAdd, opSub, opHadamard, opMul)
	Left  Shape  // left operand extents
	Right Shape  // right operand extents
}

// Error implements error.
func (e *DimensionError) Error() string {
	if e.Op == opMul {
		return fmt.Sprintf("%s: left columns %d != right rows %d (left %s, right %s)",
			ErrDimensionMismatch, e.Left.Cols, e.Right.Rows, e.Left, e.Right)
	}

	return fmt.Sprintf("%s: left %s, right %s", ErrDimensionMismatch, e.Left, e.Right)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf attaches coordinates to an index failure.
func indexErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, x, y, err)
}
