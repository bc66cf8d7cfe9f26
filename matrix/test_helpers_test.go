// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the variant and kernel tests.
//   • Keep the worked examples (2×2 add, 3×3 sub, 3×2·2×3 product) in one place.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixkit/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type.
// Kernels must behave identically for foreign implementations, so tests pass
// hide{X} to prove nothing depends on *Dynamic or Fixed internals.
type hide[T matrix.Numeric] struct{ matrix.Matrix[T] }

// Worked-example fixtures (row-organized).
var (
	rowsSquare  = [][]int{{1, 2}, {3, 4}}                          // 2×2
	rowsDoubled = [][]int{{2, 4}, {6, 8}}                          // rowsSquare + rowsSquare
	rowsLeft    = [][]int{{1, 2}, {3, 4}, {5, 6}}                  // 3 rows × 2 cols
	rowsRight   = [][]int{{1, 2, 3}, {4, 5, 6}}                    // 2 rows × 3 cols
	rowsProduct = [][]int{{9, 12, 15}, {19, 26, 33}, {29, 40, 51}} // rowsLeft × rowsRight
)

// filled returns an n×n row collection where every element is v.
func filled(n, v int) [][]int {
	out := make([][]int, n)
	for y := range out {
		out[y] = make([]int, n)
		for x := range out[y] {
			out[y][x] = v
		}
	}

	return out
}

// mustFixed builds a Fixed or fails the test.
func mustFixed[T matrix.Numeric](t *testing.T, rows [][]T) matrix.Fixed[T] {
	t.Helper()
	f, err := matrix.NewFixed(rows)
	require.NoError(t, err)

	return f
}

// mustDynamic builds a Dynamic or fails the test.
func mustDynamic[T matrix.Numeric](t *testing.T, rows [][]T) *matrix.Dynamic[T] {
	t.Helper()
	d, err := matrix.NewDynamic(rows)
	require.NoError(t, err)

	return d
}

// requireShapeInvariant asserts len(Data()) == Cols()*Rows().
func requireShapeInvariant[T matrix.Numeric](t *testing.T, m matrix.Matrix[T]) {
	t.Helper()
	require.Len(t, m.Data(), m.Cols()*m.Rows())
}
