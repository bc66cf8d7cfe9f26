// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixkit/matrix"
)

// ExampleFixed_Add adds two fixed 2×2 matrices and prints the result.
func ExampleFixed_Add() {
	a := matrix.MustFixed([][]int{{1, 2}, {3, 4}})

	sum, err := a.Add(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sum.ToRows())
	// Output:
	// [[2 4] [6 8]]
}

// ExampleDynamic_Mul multiplies a dynamic 3×2 by a fixed 2×3.
// The result follows the left operand's storage strategy.
func ExampleDynamic_Mul() {
	left := matrix.MustDynamic([][]int{{1, 2}, {3, 4}, {5, 6}})
	right := matrix.MustFixed([][]int{{1, 2, 3}, {4, 5, 6}})

	prod, err := left.Mul(right)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(prod.Rows(), "x", prod.Cols())
	fmt.Println(prod.ToRows())
	// Output:
	// 3 x 3
	// [[9 12 15] [19 26 33] [29 40 51]]
}

// ExampleDynamic_InsertRow grows a dynamic matrix and shows a rejected row.
func ExampleDynamic_InsertRow() {
	d := matrix.MustDynamic([][]float64{{1.5, 2}})

	_ = d.InsertRow([]float64{3, 4.25})
	err := d.InsertRow([]float64{5})
	fmt.Println(errors.Is(err, matrix.ErrIncorrectLength))
	fmt.Println(d.ToRows())
	// Output:
	// true
	// [[1.5 2] [3 4.25]]
}

// ExampleAt contrasts the checked accessor with a mismatched product.
func ExampleAt() {
	m := matrix.MustFixed([][]int{{100, 200}, {300, 400}})

	v, _ := matrix.At[int](m, 0, 1)
	fmt.Println(v)

	_, err := m.Mul(matrix.MustFixed([][]int{{1, 2}}))
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	// Output:
	// 300
	// true
}
