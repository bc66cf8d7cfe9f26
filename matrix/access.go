// SPDX-License-Identifier: MIT

// Package matrix - derived accessors over the Matrix capability interface.
//
// Purpose:
//   - Implement indexing, row slicing, copying, comparison and printing ONCE,
//     in terms of Data/Cols/Rows, so both variants behave identically.
//   - Coordinate convention everywhere: x is the column, y is the row, and the
//     row-major offset is y*Cols + x.
//
// Complexity quicksheet:
//   - AtUnchecked/At/Row/First/Last: O(1); Values/ToRows/Equal/Printable: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- method tags ----------

const (
	ctxAt  = "At"
	ctxRow = "Row"
)

// ---------- Formatting literals ----------

const (
	_fmtCellSep = "\t"
	_fmtRowEnd  = "\n"
)

// AtUnchecked returns the element at column x, row y without a recoverable
// bounds check. It is the trusted fast path: an offset outside the backing
// storage panics.
//
// Note the check is on the linear offset y*Cols + x, exactly like a raw
// slice index; an x past the last column wraps into the next row.
// Complexity: O(1).
func AtUnchecked[T Numeric](m Matrix[T], x, y int) T {
	data := m.Data()
	off := y*m.Cols() + x
	if off < 0 || off >= len(data) {
		panic(fmt.Sprintf("matrix: index (%d, %d) is out of range", x, y))
	}

	return data[off]
}

// At returns the element at column x, row y.
// MAIN DESCRIPTION:
//   - Safe element read; the checked counterpart of AtUnchecked.
//
// Implementation:
//   - Stage 1: ValidateNotNil and ValidateIndex (0 ≤ x < Cols, 0 ≤ y < Rows).
//   - Stage 2: load data[y*Cols + x].
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (wrapped with "At(x,y)").
//
// Complexity:
//   - Time O(1), Space O(1).
func At[T Numeric](m Matrix[T], x, y int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, indexErrorf(ctxAt, x, y, err)
	}
	cols := m.Cols()
	if err := ValidateIndex(x, y, cols, m.Rows()); err != nil {
		return zero, indexErrorf(ctxAt, x, y, err)
	}

	return m.Data()[y*cols+x], nil
}

// Row returns a view over the contiguous elements of row y.
// The view aliases the matrix storage and is capacity-capped, so appending
// to it never overwrites the next row.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func Row[T Numeric](m Matrix[T], y int) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, indexErrorf(ctxRow, 0, y, err)
	}
	cols := m.Cols()
	if y < 0 || y >= m.Rows() {
		return nil, indexErrorf(ctxRow, 0, y, ErrOutOfRange)
	}
	start, end := y*cols, (y+1)*cols

	return m.Data()[start:end:end], nil
}

// First returns the first stored element, or false for an empty matrix.
func First[T Numeric](m Matrix[T]) (T, bool) {
	var zero T
	if ValidateNotNil(m) != nil || len(m.Data()) == 0 {
		return zero, false
	}

	return m.Data()[0], true
}

// Last returns the last stored element, or false for an empty matrix.
func Last[T Numeric](m Matrix[T]) (T, bool) {
	var zero T
	if ValidateNotNil(m) != nil {
		return zero, false
	}
	data := m.Data()
	if len(data) == 0 {
		return zero, false
	}

	return data[len(data)-1], true
}

// Values returns an owned copy of the row-major storage.
// NewFixedFlat/NewDynamicFlat(Values(m), m.Cols(), m.Rows()) reconstructs an
// equal matrix.
func Values[T Numeric](m Matrix[T]) []T {
	if ValidateNotNil(m) != nil {
		return nil
	}
	out := make([]T, len(m.Data()))
	copy(out, m.Data())

	return out
}

// ToRows returns an owned row-organized copy of m.
// Complexity: O(r*c) time, two allocations.
func ToRows[T Numeric](m Matrix[T]) [][]T {
	if ValidateNotNil(m) != nil {
		return nil
	}
	cols, rows := m.Cols(), m.Rows()
	flat := Values(m)
	out := make([][]T, rows)
	for y := 0; y < rows; y++ {
		out[y] = flat[y*cols : (y+1)*cols : (y+1)*cols]
	}

	return out
}

// Equal reports whether a and b have the same extents and elementwise equal
// storage, regardless of storage strategy. Two nil matrices are not equal.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func Equal[T Numeric](a, b Matrix[T]) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Cols() != b.Cols() || a.Rows() != b.Rows() {
		return false
	}
	ad, bd := a.Data(), b.Data()
	if len(ad) != len(bd) {
		return false
	}
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}

	return true
}

// Printable renders m as a tab-separated grid: every element is followed by
// a tab and every row by a newline. The format is part of the public contract
// (snapshot tests depend on it), e.g. a 2×2 of 1..4 renders "1\t2\t\n3\t4\t\n".
// Complexity: O(r*c).
func Printable[T Numeric](m Matrix[T]) string {
	if ValidateNotNil(m) != nil {
		return ""
	}
	var sb strings.Builder
	cols, rows := m.Cols(), m.Rows()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			fmt.Fprintf(&sb, "%v", AtUnchecked(m, x, y))
			sb.WriteString(_fmtCellSep)
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}
