// SPDX-License-Identifier: MIT

// Package matrix - Dynamic: the growable storage variant.
//
// Purpose:
//   - A row-major matrix whose row count may grow through InsertRow.
//   - Column count is fixed at construction.
//   - Same operation family as Fixed; results are fresh *Dynamic values.
//
// Concurrency:
//   - No internal locking. Concurrent readers are safe while nobody calls
//     InsertRow or writes through MutableData/RowMut. Clone produces an
//     independent copy for handoff across goroutines.
//
// Complexity quicksheet:
//   - NewDynamic/NewDynamicFlat: O(r*c); InsertRow: amortized O(c); Clone: O(r*c).

package matrix

import "fmt"

// Dynamic is a row-major matrix backed by a growable buffer.
type Dynamic[T Numeric] struct {
	cols, rows int // cols is immutable; rows grows by InsertRow
	data       []T // row-major storage, len == cols*rows after every call
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix[int]  = (*Dynamic[int])(nil)
	_ fmt.Stringer = (*Dynamic[int])(nil)
)

// NewDynamic builds a Dynamic matrix from row-organized data.
// Errors:
//   - ErrInvalidDimensions (no rows, or empty rows).
//   - ErrIncorrectLength (ragged rows).
//
// Complexity: Time O(r*c), one allocation.
func NewDynamic[T Numeric](rows [][]T) (*Dynamic[T], error) {
	cols, err := ValidateRows(rows)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	data := make([]T, 0, cols*len(rows))
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dynamic[T]{cols: cols, rows: len(rows), data: data}, nil
}

// NewDynamicFlat builds a Dynamic matrix from row-major data and the
// caller-supplied extents. The input is copied.
// Errors:
//   - ErrInvalidDimensions (cols ≤ 0 or rows ≤ 0).
//   - ErrIncorrectLength (len(data) != cols*rows).
func NewDynamicFlat[T Numeric](data []T, cols, rows int) (*Dynamic[T], error) {
	if err := ValidateFlatLen(len(data), cols, rows); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	cp := make([]T, len(data))
	copy(cp, data)

	return &Dynamic[T]{cols: cols, rows: rows, data: cp}, nil
}

// MustDynamic is like NewDynamic but panics on error. Intended for literals.
func MustDynamic[T Numeric](rows [][]T) *Dynamic[T] {
	d, err := NewDynamic(rows)
	if err != nil {
		panic(err)
	}

	return d
}

// adoptDynamic takes ownership of freshly allocated kernel output.
func adoptDynamic[T Numeric](data []T, cols, rows int) (*Dynamic[T], error) {
	if !ownedLenOK(len(data), cols, rows) {
		return nil, ErrIncorrectLength
	}

	return &Dynamic[T]{cols: cols, rows: rows, data: data}, nil
}

// dynamicFromRows is the product factory. An empty row collection yields
// an empty 0×0 *Dynamic.
func dynamicFromRows[T Numeric](rows [][]T) (*Dynamic[T], error) {
	if len(rows) == 0 {
		return &Dynamic[T]{}, nil
	}

	return NewDynamic(rows)
}

func (d *Dynamic[T]) isNil() bool { return d == nil }

// Data returns the row-major storage as a read-only view.
func (d *Dynamic[T]) Data() []T {
	if d == nil {
		return nil
	}

	return d.data[:len(d.data):len(d.data)]
}

// MutableData returns the row-major storage for in-place element writes.
// The view is invalidated by the next InsertRow.
func (d *Dynamic[T]) MutableData() []T {
	if d == nil {
		return nil
	}

	return d.data[:len(d.data):len(d.data)]
}

// Cols returns the column count.
func (d *Dynamic[T]) Cols() int {
	if d == nil {
		return 0
	}

	return d.cols
}

// Rows returns the row count.
func (d *Dynamic[T]) Rows() int {
	if d == nil {
		return 0
	}

	return d.rows
}

// Shape packs Cols() and Rows() into a single value.
func (d *Dynamic[T]) Shape() Shape { return Shape{Cols: d.Cols(), Rows: d.Rows()} }

// InsertRow appends row as the new last row.
// MAIN DESCRIPTION:
//   - The only mutating operation of the data model; all-or-nothing.
//
// Implementation:
//   - Stage 1: validate len(row) == Cols() (and > 0).
//   - Stage 2: append the row's elements to storage and increment Rows().
//
// Behavior highlights:
//   - On error the matrix is unchanged (shape and contents).
//   - The row is copied; later writes to row do not leak into the matrix.
//   - Views obtained earlier (Data, Row, MutableData) may no longer alias storage.
//
// Errors:
//   - ErrNilMatrix, ErrIncorrectLength.
//
// Complexity:
//   - Amortized O(c) time.
func (d *Dynamic[T]) InsertRow(row []T) error {
	if err := ValidateNotNil[T](d); err != nil {
		return matrixErrorf(opInsertRow, err)
	}
	if err := ValidateRowLen(len(row), d.cols); err != nil {
		return matrixErrorf(opInsertRow, err)
	}

	d.data = append(d.data, row...)
	d.rows++

	return nil
}

// At returns the element at column x, row y, or ErrOutOfRange.
func (d *Dynamic[T]) At(x, y int) (T, error) { return At[T](d, x, y) }

// AtUnchecked returns the element at column x, row y and panics when the
// row-major offset is outside storage.
func (d *Dynamic[T]) AtUnchecked(x, y int) T { return AtUnchecked[T](d, x, y) }

// Row returns a read-only view of row y, or ErrOutOfRange.
func (d *Dynamic[T]) Row(y int) ([]T, error) { return Row[T](d, y) }

// RowMut returns a writable view of row y, or ErrOutOfRange.
// The view is invalidated by the next InsertRow.
func (d *Dynamic[T]) RowMut(y int) ([]T, error) { return Row[T](d, y) }

// First returns the first stored element.
func (d *Dynamic[T]) First() (T, bool) { return First[T](d) }

// Last returns the last stored element.
func (d *Dynamic[T]) Last() (T, bool) { return Last[T](d) }

// Values returns an owned copy of the row-major storage.
func (d *Dynamic[T]) Values() []T { return Values[T](d) }

// ToRows returns an owned row-organized copy.
func (d *Dynamic[T]) ToRows() [][]T { return ToRows[T](d) }

// Add returns d + other. other may be any variant with the same shape.
func (d *Dynamic[T]) Add(other Matrix[T]) (*Dynamic[T], error) {
	return Add[T, *Dynamic[T]](d, other, adoptDynamic[T])
}

// Sub returns d - other. other may be any variant with the same shape.
func (d *Dynamic[T]) Sub(other Matrix[T]) (*Dynamic[T], error) {
	return Sub[T, *Dynamic[T]](d, other, adoptDynamic[T])
}

// Hadamard returns the elementwise product d ⊙ other.
func (d *Dynamic[T]) Hadamard(other Matrix[T]) (*Dynamic[T], error) {
	return Hadamard[T, *Dynamic[T]](d, other, adoptDynamic[T])
}

// Mul returns the matrix product d × other with shape (d.Rows × other.Cols).
// Requires d.Cols() == other.Rows().
func (d *Dynamic[T]) Mul(other Matrix[T]) (*Dynamic[T], error) {
	return Mul[T, *Dynamic[T]](d, other, dynamicFromRows[T])
}

// Transpose returns dᵀ. A nil receiver yields nil.
func (d *Dynamic[T]) Transpose() *Dynamic[T] {
	t, _ := Transpose[T, *Dynamic[T]](d, adoptDynamic[T]) // fails only for nil d

	return t
}

// AddScalar returns d with s added to every element. A nil receiver yields nil.
func (d *Dynamic[T]) AddScalar(s T) *Dynamic[T] {
	out, _ := AddScalar[T, *Dynamic[T]](d, s, adoptDynamic[T])

	return out
}

// SubScalar returns d with s subtracted from every element.
func (d *Dynamic[T]) SubScalar(s T) *Dynamic[T] {
	out, _ := SubScalar[T, *Dynamic[T]](d, s, adoptDynamic[T])

	return out
}

// MulScalar returns d with every element multiplied by s.
func (d *Dynamic[T]) MulScalar(s T) *Dynamic[T] {
	out, _ := MulScalar[T, *Dynamic[T]](d, s, adoptDynamic[T])

	return out
}

// Equal reports shape and elementwise equality with any variant.
func (d *Dynamic[T]) Equal(other Matrix[T]) bool { return Equal[T](d, other) }

// Clone returns an independent deep copy. A nil receiver clones to nil.
func (d *Dynamic[T]) Clone() *Dynamic[T] {
	if d == nil {
		return nil
	}

	return &Dynamic[T]{cols: d.cols, rows: d.rows, data: d.Values()}
}

// ToFixed returns an immutable copy of d. Rows inserted into d afterwards do
// not affect the returned value.
func (d *Dynamic[T]) ToFixed() (Fixed[T], error) {
	if err := ValidateNotNil[T](d); err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{cols: d.cols, rows: d.rows, data: d.Values()}, nil
}

// String implements fmt.Stringer using the tab-separated Printable layout.
func (d *Dynamic[T]) String() string {
	if d == nil {
		return "<nil>"
	}

	return Printable[T](d)
}
