// SPDX-License-Identifier: MIT

// Package matrix - Fixed: the fixed-shape storage variant.
//
// Purpose:
//   - A value type whose extents are decided once, at construction, and never
//     change. Storage is allocated exactly once and no method mutates it.
//   - Every method has a value receiver; results are new Fixed values.
//
// Notes:
//   - Go cannot parameterize an array length by type, so the storage is a
//     slice sized exactly Cols*Rows at construction. Shape is still immutable:
//     there is no growth, shrink or element-write operation on Fixed.
//   - Copying a Fixed copies the header only. Because nothing writes to the
//     storage, copies behave as independent values; use Clone when a physically
//     separate buffer is required (e.g. before handing Data() to foreign code).
//
// Complexity quicksheet:
//   - NewFixed/NewFixedFlat: O(r*c); At/Row: O(1); Add/Sub/Hadamard: O(r*c); Mul: O(r*n*c).

package matrix

import "fmt"

// Fixed is an immutable row-major matrix whose shape is fixed for its lifetime.
// The zero value is a valid 0×0 matrix: every operation accepts it, and the
// product of two zero values is again the zero value.
//
// Assigning a Fixed copies the shape and shares the storage. Copies behave as
// independent values only while nobody writes through Data(); callers that
// need to mutate elements should take Values() or Clone() first.
type Fixed[T Numeric] struct {
	cols, rows int // extents; never change after construction
	data       []T // row-major storage, len == cols*rows
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix[int]  = Fixed[int]{}
	_ fmt.Stringer = Fixed[int]{}
)

// NewFixed builds a Fixed matrix from row-organized data, flattening it in
// row-major order. Every row must have the same non-zero length.
// Errors:
//   - ErrInvalidDimensions (no rows, or empty rows).
//   - ErrIncorrectLength (ragged rows).
//
// Complexity: Time O(r*c), one allocation.
func NewFixed[T Numeric](rows [][]T) (Fixed[T], error) {
	cols, err := ValidateRows(rows)
	if err != nil {
		return Fixed[T]{}, matrixErrorf(opNew, err)
	}

	data := make([]T, 0, cols*len(rows))
	for _, row := range rows {
		data = append(data, row...)
	}

	return Fixed[T]{cols: cols, rows: len(rows), data: data}, nil
}

// NewFixedFlat builds a Fixed matrix from row-major data. The input is copied,
// so later writes to data do not leak into the matrix.
// Errors:
//   - ErrInvalidDimensions (cols ≤ 0 or rows ≤ 0).
//   - ErrIncorrectLength (len(data) != cols*rows).
func NewFixedFlat[T Numeric](data []T, cols, rows int) (Fixed[T], error) {
	if err := ValidateFlatLen(len(data), cols, rows); err != nil {
		return Fixed[T]{}, matrixErrorf(opNew, err)
	}

	cp := make([]T, len(data))
	copy(cp, data)

	return Fixed[T]{cols: cols, rows: rows, data: cp}, nil
}

// MustFixed is like NewFixed but panics on error. Intended for literals.
func MustFixed[T Numeric](rows [][]T) Fixed[T] {
	f, err := NewFixed(rows)
	if err != nil {
		panic(err)
	}

	return f
}

// adoptFixed takes ownership of freshly allocated kernel output without
// copying. Kernels always pass len(data) == cols*rows.
func adoptFixed[T Numeric](data []T, cols, rows int) (Fixed[T], error) {
	if !ownedLenOK(len(data), cols, rows) {
		return Fixed[T]{}, ErrIncorrectLength
	}

	return Fixed[T]{cols: cols, rows: rows, data: data}, nil
}

// fixedFromRows is the product factory. An empty row collection, the
// product of 0×0 operands, yields the zero Fixed.
func fixedFromRows[T Numeric](rows [][]T) (Fixed[T], error) {
	if len(rows) == 0 {
		return Fixed[T]{}, nil
	}

	return NewFixed(rows)
}

// Data returns the row-major storage. It must not be modified: the slice is
// shared with every copy of f.
func (f Fixed[T]) Data() []T { return f.data[:len(f.data):len(f.data)] }

// Cols returns the column count.
func (f Fixed[T]) Cols() int { return f.cols }

// Rows returns the row count.
func (f Fixed[T]) Rows() int { return f.rows }

// Shape packs Cols() and Rows() into a single value.
func (f Fixed[T]) Shape() Shape { return Shape{Cols: f.cols, Rows: f.rows} }

// At returns the element at column x, row y, or ErrOutOfRange.
func (f Fixed[T]) At(x, y int) (T, error) { return At[T](f, x, y) }

// AtUnchecked returns the element at column x, row y and panics when the
// row-major offset is outside storage.
func (f Fixed[T]) AtUnchecked(x, y int) T { return AtUnchecked[T](f, x, y) }

// Row returns a read-only view of row y, or ErrOutOfRange.
func (f Fixed[T]) Row(y int) ([]T, error) { return Row[T](f, y) }

// First returns the first stored element.
func (f Fixed[T]) First() (T, bool) { return First[T](f) }

// Last returns the last stored element.
func (f Fixed[T]) Last() (T, bool) { return Last[T](f) }

// Values returns an owned copy of the row-major storage.
func (f Fixed[T]) Values() []T { return Values[T](f) }

// ToRows returns an owned row-organized copy.
func (f Fixed[T]) ToRows() [][]T { return ToRows[T](f) }

// Add returns f + other. other may be any variant with the same shape.
func (f Fixed[T]) Add(other Matrix[T]) (Fixed[T], error) {
	return Add[T, Fixed[T]](f, other, adoptFixed[T])
}

// Sub returns f - other. other may be any variant with the same shape.
func (f Fixed[T]) Sub(other Matrix[T]) (Fixed[T], error) {
	return Sub[T, Fixed[T]](f, other, adoptFixed[T])
}

// Hadamard returns the elementwise product f ⊙ other.
func (f Fixed[T]) Hadamard(other Matrix[T]) (Fixed[T], error) {
	return Hadamard[T, Fixed[T]](f, other, adoptFixed[T])
}

// Mul returns the matrix product f × other with shape (f.Rows × other.Cols).
// Requires f.Cols() == other.Rows().
func (f Fixed[T]) Mul(other Matrix[T]) (Fixed[T], error) {
	return Mul[T, Fixed[T]](f, other, fixedFromRows[T])
}

// Transpose returns fᵀ.
func (f Fixed[T]) Transpose() Fixed[T] {
	t, _ := Transpose[T, Fixed[T]](f, adoptFixed[T]) // cannot fail: f is non-nil and adopt receives cols*rows

	return t
}

// AddScalar returns f with s added to every element.
func (f Fixed[T]) AddScalar(s T) Fixed[T] {
	out, _ := AddScalar[T, Fixed[T]](f, s, adoptFixed[T])

	return out
}

// SubScalar returns f with s subtracted from every element.
func (f Fixed[T]) SubScalar(s T) Fixed[T] {
	out, _ := SubScalar[T, Fixed[T]](f, s, adoptFixed[T])

	return out
}

// MulScalar returns f with every element multiplied by s.
func (f Fixed[T]) MulScalar(s T) Fixed[T] {
	out, _ := MulScalar[T, Fixed[T]](f, s, adoptFixed[T])

	return out
}

// Equal reports shape and elementwise equality with any variant.
func (f Fixed[T]) Equal(other Matrix[T]) bool { return Equal[T](f, other) }

// Clone returns a Fixed with a physically separate copy of the storage.
func (f Fixed[T]) Clone() Fixed[T] {
	cp := make([]T, len(f.data))
	copy(cp, f.data)

	return Fixed[T]{cols: f.cols, rows: f.rows, data: cp}
}

// ToDynamic returns a growable copy of f.
func (f Fixed[T]) ToDynamic() *Dynamic[T] {
	return &Dynamic[T]{cols: f.cols, rows: f.rows, data: f.Values()}
}

// String implements fmt.Stringer using the tab-separated Printable layout.
func (f Fixed[T]) String() string { return Printable[T](f) }
