// SPDX-License-Identifier: MIT

// Package matrix offers small numeric matrices over any built-in numeric
// element type, in two storage strategies that share one capability interface.
//
// The matrix package provides:
//
//   - Matrix[T], the capability interface: row-major Data, Cols and Rows.
//     Every algorithm (indexing, printing, elementwise and matrix products)
//     is written once over it, so both variants behave identically.
//   - Fixed[T], an immutable value type whose shape is decided at construction.
//   - Dynamic[T], a growable matrix whose rows can be appended with InsertRow.
//   - Cross-variant operations: a Fixed and a Dynamic of the same shape can be
//     added, subtracted, multiplied and compared in either order. The result
//     variant follows the left operand (the receiver).
//
// Coordinates are (x, y) = (column, row) and the row-major offset is y*Cols + x.
// At returns ErrOutOfRange for coordinates outside the extents; AtUnchecked is
// the trusted fast path and panics instead.
//
// Failures are reported as sentinels (ErrDimensionMismatch, ErrIncorrectLength,
// ErrOutOfRange, ErrInvalidDimensions, ErrNilMatrix) wrapped with the operation
// name; match them with errors.Is. Shape mismatches carry both extents in a
// *DimensionError.
//
// See the examples in this package for usage patterns.
package matrix
