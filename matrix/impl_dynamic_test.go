// Package matrix_test contains unit tests for the Dynamic storage variant.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDynamicInvalidInput ensures construction rejects empty and ragged input.
func TestNewDynamicInvalidInput(t *testing.T) {
	_, err := matrix.NewDynamic([][]float64{})           // no rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDynamic([][]float64{{1}, {2, 3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrIncorrectLength)   // expect ErrIncorrectLength

	_, err = matrix.NewDynamicFlat([]float64{1, 2, 3}, 2, 2) // caller-supplied extents disagree
	require.ErrorIs(t, err, matrix.ErrIncorrectLength)
}

// TestDynamicIndexRowMajor checks the (x=column, y=row) convention.
func TestDynamicIndexRowMajor(t *testing.T) {
	d := mustDynamic(t, [][]int{{100, 200}, {300, 400}})

	require.Equal(t, 300, d.AtUnchecked(0, 1)) // second row, first column
	_, err := d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDynamicInsertRow covers the success path of the only mutating operation.
func TestDynamicInsertRow(t *testing.T) {
	d := mustDynamic(t, rowsSquare)

	require.NoError(t, d.InsertRow([]int{5, 6}))
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 2, d.Cols())
	requireShapeInvariant[int](t, d)
	require.True(t, d.Equal(mustDynamic(t, [][]int{{1, 2}, {3, 4}, {5, 6}})))

	// The new row is reachable through row-major indexing at the last row index.
	require.Equal(t, 5, d.AtUnchecked(0, 2))
	require.Equal(t, 6, d.AtUnchecked(1, 2))
}

// TestDynamicInsertRowWrongLength ensures a rejected row leaves the matrix unchanged.
func TestDynamicInsertRowWrongLength(t *testing.T) {
	d := mustDynamic(t, rowsSquare)
	before := d.Values()

	err := d.InsertRow([]int{7, 8, 9})                 // one element too many
	require.ErrorIs(t, err, matrix.ErrIncorrectLength) // expect ErrIncorrectLength

	err = d.InsertRow(nil) // empty row
	require.ErrorIs(t, err, matrix.ErrIncorrectLength)

	require.Equal(t, 2, d.Rows())
	require.Equal(t, before, d.Values())
	requireShapeInvariant[int](t, d)
}

// TestDynamicInsertRowCopiesInput verifies later writes to the row do not leak.
func TestDynamicInsertRowCopiesInput(t *testing.T) {
	d := mustDynamic(t, rowsSquare)
	row := []int{5, 6}
	require.NoError(t, d.InsertRow(row))

	row[0] = 99
	require.Equal(t, 5, d.AtUnchecked(0, 2))
}

// TestDynamicInsertRowNil ensures a nil receiver is reported, not dereferenced.
func TestDynamicInsertRowNil(t *testing.T) {
	var d *matrix.Dynamic[int]

	require.ErrorIs(t, d.InsertRow([]int{1}), matrix.ErrNilMatrix)
}

// TestDynamicArithmetic covers the worked examples on the dynamic variant.
func TestDynamicArithmetic(t *testing.T) {
	a := mustDynamic(t, rowsSquare)

	sum, err := a.Add(a.Clone())
	require.NoError(t, err)
	require.True(t, sum.Equal(mustDynamic(t, rowsDoubled)))

	diff, err := mustDynamic(t, filled(3, 100)).Sub(mustDynamic(t, filled(3, 25)))
	require.NoError(t, err)
	require.True(t, diff.Equal(mustDynamic(t, filled(3, 75))))

	prod, err := mustDynamic(t, rowsLeft).Mul(mustDynamic(t, rowsRight))
	require.NoError(t, err)
	require.True(t, prod.Equal(mustDynamic(t, rowsProduct)))
}

// TestDynamicMutableViews verifies MutableData and RowMut write through.
func TestDynamicMutableViews(t *testing.T) {
	d := mustDynamic(t, rowsSquare)

	d.MutableData()[0] = 10
	row, err := d.RowMut(1)
	require.NoError(t, err)
	row[1] = 40

	require.Equal(t, []int{10, 2, 3, 40}, d.Values())
}

// TestDynamicCloneIndependence ensures Clone returns a deep copy.
func TestDynamicCloneIndependence(t *testing.T) {
	d := mustDynamic(t, rowsSquare)
	c := d.Clone()

	c.MutableData()[0] = 42
	require.NoError(t, c.InsertRow([]int{5, 6}))

	require.Equal(t, 1, d.AtUnchecked(0, 0))
	require.Equal(t, 2, d.Rows())
}

// TestDynamicToFixed verifies the fixed snapshot does not follow later growth.
func TestDynamicToFixed(t *testing.T) {
	d := mustDynamic(t, rowsSquare)
	f, err := d.ToFixed()
	require.NoError(t, err)

	require.NoError(t, d.InsertRow([]int{5, 6}))
	require.Equal(t, 2, f.Rows())
	require.True(t, f.Equal(mustFixed(t, rowsSquare)))
}

// TestDynamicScalarAndTranspose covers scalar ops and transpose.
func TestDynamicScalarAndTranspose(t *testing.T) {
	d := mustDynamic(t, rowsRight)

	require.Equal(t, []int{2, 4, 6, 8, 10, 12}, d.MulScalar(2).Values())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, d.SubScalar(1).Values())
	require.Equal(t, []int{2, 3, 4, 5, 6, 7}, d.AddScalar(1).Values())

	tr := d.Transpose()
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())
}

// TestDynamicNilReceiver ensures accessors on a nil *Dynamic do not panic.
func TestDynamicNilReceiver(t *testing.T) {
	var d *matrix.Dynamic[int]

	require.Equal(t, 0, d.Rows())
	require.Equal(t, "<nil>", d.String())
	require.Nil(t, d.Clone())
	require.Nil(t, d.Transpose())
	_, err := d.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = d.Add(mustDynamic(t, rowsSquare))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDynamicString checks the tab-separated rendering after growth.
func TestDynamicString(t *testing.T) {
	d := mustDynamic(t, filled(2, 100)[:1])
	require.NoError(t, d.InsertRow([]int{200, 200}))

	require.Equal(t, "100\t100\t\n200\t200\t\n", d.String())
}
