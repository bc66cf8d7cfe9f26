// Package matrix_test contains unit tests for the Fixed storage variant.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewFixedInvalidInput ensures construction rejects empty and ragged input.
func TestNewFixedInvalidInput(t *testing.T) {
	_, err := matrix.NewFixed[int](nil)                  // no rows at all
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewFixed([][]int{{}})                // one empty row
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewFixed([][]int{{1, 2}, {3}})     // ragged rows
	require.ErrorIs(t, err, matrix.ErrIncorrectLength) // expect ErrIncorrectLength
}

// TestNewFixedFlatLength ensures flat construction checks len == cols*rows.
func TestNewFixedFlatLength(t *testing.T) {
	_, err := matrix.NewFixedFlat([]int{1, 2, 3}, 2, 2) // one element short
	require.ErrorIs(t, err, matrix.ErrIncorrectLength)

	_, err = matrix.NewFixedFlat([]int{1, 2, 3, 4, 5}, 2, 2) // one element too many
	require.ErrorIs(t, err, matrix.ErrIncorrectLength)

	_, err = matrix.NewFixedFlat([]int{}, 0, 3) // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	f, err := matrix.NewFixedFlat([]int{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, f.Cols())
	require.Equal(t, 2, f.Rows())
	requireShapeInvariant[int](t, f)
}

// TestNewFixedFlatCopiesInput verifies later writes to the input do not leak.
func TestNewFixedFlatCopiesInput(t *testing.T) {
	src := []int{1, 2, 3, 4}
	f, err := matrix.NewFixedFlat(src, 2, 2)
	require.NoError(t, err)

	src[0] = 99 // mutate caller's slice
	require.Equal(t, 1, f.AtUnchecked(0, 0))
}

// TestFixedIndexRowMajor checks the (x=column, y=row) convention.
func TestFixedIndexRowMajor(t *testing.T) {
	f := mustFixed(t, [][]int{{100, 200}, {300, 400}})

	require.Equal(t, 300, f.AtUnchecked(0, 1)) // second row, first column
	require.Equal(t, 200, f.AtUnchecked(1, 0)) // first row, second column

	v, err := f.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 400, v)
}

// TestFixedAtOutOfRange ensures the checked accessor never panics.
func TestFixedAtOutOfRange(t *testing.T) {
	f := mustFixed(t, rowsSquare)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := f.At(c[0], c[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", c[0], c[1])
	}
}

// TestFixedAtUncheckedPanics ensures the trusted path fails fatally past storage.
func TestFixedAtUncheckedPanics(t *testing.T) {
	f := mustFixed(t, rowsSquare)

	require.Panics(t, func() { f.AtUnchecked(0, 2) })
	require.Panics(t, func() { f.AtUnchecked(-1, 0) })
}

// TestFixedRow verifies row views and bounds.
func TestFixedRow(t *testing.T) {
	f := mustFixed(t, rowsLeft)

	row, err := f.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6}, row)

	_, err = f.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFixedArithmetic covers the worked examples on the fixed variant.
func TestFixedArithmetic(t *testing.T) {
	a := mustFixed(t, rowsSquare)

	sum, err := a.Add(a)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustFixed(t, rowsDoubled)))
	require.False(t, sum.Equal(mustFixed(t, filled(2, 10))))

	diff, err := mustFixed(t, filled(3, 100)).Sub(mustFixed(t, filled(3, 25)))
	require.NoError(t, err)
	require.True(t, diff.Equal(mustFixed(t, filled(3, 75))))

	prod, err := mustFixed(t, rowsLeft).Mul(mustFixed(t, rowsRight))
	require.NoError(t, err)
	require.Equal(t, 3, prod.Rows())
	require.Equal(t, 3, prod.Cols())
	require.True(t, prod.Equal(mustFixed(t, rowsProduct)))
}

// TestFixedImmutableUnderArithmetic verifies operands keep their values.
func TestFixedImmutableUnderArithmetic(t *testing.T) {
	a := mustFixed(t, rowsSquare)
	before := a.Values()

	_, _ = a.Add(a)
	_ = a.MulScalar(7)
	_ = a.Transpose()

	require.Equal(t, before, a.Values())
}

// TestFixedScalar covers scalar add, sub and mul.
func TestFixedScalar(t *testing.T) {
	a := mustFixed(t, rowsSquare)

	require.Equal(t, []int{11, 12, 13, 14}, a.AddScalar(10).Values())
	require.Equal(t, []int{0, 1, 2, 3}, a.SubScalar(1).Values())
	require.Equal(t, []int{3, 6, 9, 12}, a.MulScalar(3).Values())
}

// TestFixedCloneIndependence ensures Clone owns separate storage.
func TestFixedCloneIndependence(t *testing.T) {
	a := mustFixed(t, rowsSquare)
	c := a.Clone()

	require.True(t, a.Equal(c))
	require.NotSame(t, &a.Data()[0], &c.Data()[0])
}

// TestFixedZeroValue verifies the zero Fixed is a usable 0×0 matrix.
func TestFixedZeroValue(t *testing.T) {
	var z matrix.Fixed[float64]

	require.Equal(t, 0, z.Cols())
	require.Equal(t, 0, z.Rows())
	require.Empty(t, z.String())
	_, ok := z.First()
	require.False(t, ok)
}

// TestFixedString checks the tab-separated rendering.
func TestFixedString(t *testing.T) {
	f := mustFixed(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	require.Equal(t, "1\t2\t3\t\n4\t5\t6\t\n", f.String())
}

// TestFixedToDynamic verifies conversion produces an independent growable copy.
func TestFixedToDynamic(t *testing.T) {
	f := mustFixed(t, rowsSquare)
	d := f.ToDynamic()

	require.True(t, f.Equal(d))
	require.NoError(t, d.InsertRow([]int{5, 6}))
	require.False(t, f.Equal(d))
	require.Equal(t, 2, f.Rows())
}

// TestMustFixedPanics ensures the literal constructor panics on bad input.
func TestMustFixedPanics(t *testing.T) {
	require.Panics(t, func() { matrix.MustFixed([][]int{{1}, {2, 3}}) })
	require.NotPanics(t, func() { matrix.MustFixed(rowsSquare) })
}

// TestNewFixedFlatOverflowingExtents ensures cols*rows is never computed past MaxInt.
func TestNewFixedFlatOverflowingExtents(t *testing.T) {
	huge := math.MaxInt/2 + 1 // huge*4 wraps around

	_, err := matrix.NewFixedFlat([]int{}, huge, 4)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDynamicFlat([]int{}, 4, huge)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFixedZeroValueMul verifies the 0×0 zero value multiplies like Add does.
func TestFixedZeroValueMul(t *testing.T) {
	var z matrix.Fixed[int]

	sum, err := z.Add(z)
	require.NoError(t, err)
	require.Equal(t, 0, sum.Rows())

	prod, err := z.Mul(z)
	require.NoError(t, err)
	require.Equal(t, 0, prod.Rows())
	require.Equal(t, 0, prod.Cols())
	requireShapeInvariant[int](t, prod)

	dprod, err := new(matrix.Dynamic[int]).Mul(z)
	require.NoError(t, err)
	require.Equal(t, 0, dprod.Rows())

	fprod, err := matrix.Product[int](z, z)
	require.NoError(t, err)
	require.Equal(t, 0, fprod.Cols())
}

// TestFixedCopySharesStorageCloneDoesNot pins the aliasing contract of Data.
func TestFixedCopySharesStorageCloneDoesNot(t *testing.T) {
	f := mustFixed(t, rowsSquare)
	g := f // shares storage
	c := f.Clone()
	vals := f.Values()

	vals[0] = 99
	require.Equal(t, 1, g.AtUnchecked(0, 0))

	f.Data()[0] = 42
	require.Equal(t, 42, g.AtUnchecked(0, 0))
	require.Equal(t, 1, c.AtUnchecked(0, 0))
}
