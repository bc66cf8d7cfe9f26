// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage variants.
// This file holds ONLY the capability interface, the shape value and the
// construction contracts. Errors and validators live in dedicated files
// (errors.go, validators.go).
package matrix

import "fmt"

// Matrix is the capability interface every storage strategy implements.
//
// Implementations supply only the primitives below; every algorithm in this
// package (indexing, printing, elementwise arithmetic, products) is written
// once over them, so Fixed and Dynamic share identical semantics.
//
// Layout contract:
//   - Data() is row-major: all elements of row y are contiguous and the
//     element at column x, row y lives at offset y*Cols() + x.
//   - len(Data()) == Cols()*Rows() at all times.
//
// Complexity: all methods are expected O(1).
type Matrix[T Numeric] interface {
	// Data returns the linear row-major backing storage.
	// Callers must treat it as read-only; use Values for an owned copy.
	Data() []T

	// Cols returns the column count (x extent).
	Cols() int

	// Rows returns the row count (y extent).
	Rows() int
}

// Shape is the (columns, rows) pair describing a matrix's extents.
type Shape struct {
	Cols int // x extent
	Rows int // y extent
}

// ShapeOf reads the extents of m.
func ShapeOf[T Numeric](m Matrix[T]) Shape {
	return Shape{Cols: m.Cols(), Rows: m.Rows()}
}

// Len returns the element count Cols*Rows.
func (s Shape) Len() int { return s.Cols * s.Rows }

// String renders the shape as "rows×cols", the usual linear-algebra order.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// FlatFactory builds a concrete matrix from row-major data with explicit
// extents. It is the construction contract consumed by elementwise and
// scalar kernels. Factories must reject len(data) != cols*rows with
// ErrIncorrectLength.
type FlatFactory[T Numeric, M Matrix[T]] func(data []T, cols, rows int) (M, error)

// RowsFactory builds a concrete matrix from a row-organized collection.
// It is the construction contract consumed by Mul, so the receiving
// variant decides how to lay out its storage.
type RowsFactory[T Numeric, M Matrix[T]] func(rows [][]T) (M, error)
