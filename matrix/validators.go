// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and length checks.
//  - Keep kernels and constructors minimal by delegating guards here.
//  - Return plain sentinels (or *DimensionError) so call sites wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

import "math"

// nilReporter is implemented by pointer-backed variants so that a typed nil
// stored in a Matrix interface is still detected.
type nilReporter interface {
	isNil() bool
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is usable.
// Returns ErrNilMatrix for a nil interface or a typed nil *Dynamic.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if n, ok := m.(nilReporter); ok && n.isNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape checks that a and b have identical extents.
// Assumes both are non-nil. Returns *DimensionError tagged with op.
// Complexity: O(1).
func ValidateSameShape[T Numeric](op string, a, b Matrix[T]) error {
	if a.Cols() != b.Cols() || a.Rows() != b.Rows() {
		return &DimensionError{Op: op, Left: ShapeOf(a), Right: ShapeOf(b)}
	}

	return nil
}

// ValidateBinarySameShape composes ValidateNotNil(a), ValidateNotNil(b) and
// ValidateSameShape. Used by Add, Sub and Hadamard.
func ValidateBinarySameShape[T Numeric](op string, a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(op, a, b)
}

// ValidateMulCompatible checks non-nil operands and a.Cols == b.Rows.
// The returned *DimensionError carries both extents for diagnostics.
// Complexity: O(1).
func ValidateMulCompatible[T Numeric](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return &DimensionError{Op: opMul, Left: ShapeOf(a), Right: ShapeOf(b)}
	}

	return nil
}

// ValidateDims rejects non-positive extents with ErrInvalidDimensions.
func ValidateDims(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateFlatLen checks positive extents and n == cols*rows.
// Extents whose product does not fit in an int are rejected before the
// multiplication with ErrInvalidDimensions.
// Errors: ErrInvalidDimensions, ErrIncorrectLength.
func ValidateFlatLen(n, cols, rows int) error {
	if err := ValidateDims(cols, rows); err != nil {
		return err
	}
	if !extentsFit(cols, rows) {
		return validatorErrorf("ValidateFlatLen", ErrInvalidDimensions)
	}
	if n != cols*rows {
		return validatorErrorf("ValidateFlatLen", ErrIncorrectLength)
	}

	return nil
}

// extentsFit reports whether cols and rows are non-negative and cols*rows
// does not overflow int.
func extentsFit(cols, rows int) bool {
	if cols < 0 || rows < 0 {
		return false
	}

	return rows == 0 || cols <= math.MaxInt/rows
}

// ownedLenOK is the adopt-path check: extents fit and n == cols*rows.
// Zero extents are allowed here (the zero Fixed flows through kernels).
func ownedLenOK(n, cols, rows int) bool {
	return extentsFit(cols, rows) && n == cols*rows
}

// ValidateRows checks that rows is non-empty and rectangular and returns the
// common column count.
// Errors: ErrInvalidDimensions (no rows or empty first row), ErrIncorrectLength (ragged).
// Complexity: O(len(rows)).
func ValidateRows[T Numeric](rows [][]T) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != cols {
			return 0, validatorErrorf("ValidateRows", ErrIncorrectLength)
		}
	}

	return cols, nil
}

// ValidateRowLen checks that an inserted row matches the current column count.
func ValidateRowLen(n, cols int) error {
	if n == 0 || n != cols {
		return validatorErrorf("ValidateRowLen", ErrIncorrectLength)
	}

	return nil
}

// ValidateIndex checks 0 ≤ x < cols and 0 ≤ y < rows.
func ValidateIndex(x, y, cols, rows int) error {
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return ErrOutOfRange
	}

	return nil
}
