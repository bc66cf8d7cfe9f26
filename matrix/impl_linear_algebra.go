// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// elementwise addition, subtraction and multiplication, the matrix product,
// transpose and scalar arithmetic. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Write every storage-independent algorithm once, over Matrix[T].
//   - Let the caller choose the concrete result through a factory, so the
//     same kernel produces a Fixed or a Dynamic matrix.
//
// Notes:
//   - Operands are never mutated; every result owns fresh storage.
//   - Loop orders are fixed, so results are deterministic for any T.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScalar    = "Scalar"
	opInsertRow = "InsertRow"
	opNew       = "New"
)

// ewOp selects the elementwise operator. Dispatch happens once per call,
// outside the hot loop.
type ewOp int

const (
	ewAdd ewOp = iota
	ewSub
	ewMul
)

// ewApply writes out[i] = a[i] (op) b[i] for every i.
// Inputs must have equal length (callers validate shapes first).
func ewApply[T Numeric](op ewOp, out, a, b []T) {
	switch op {
	case ewAdd:
		for i := range out {
			out[i] = a[i] + b[i]
		}
	case ewSub:
		for i := range out {
			out[i] = a[i] - b[i]
		}
	case ewMul:
		for i := range out {
			out[i] = a[i] * b[i]
		}
	}
}

// ewScalar writes out[i] = a[i] (op) s for every i.
func ewScalar[T Numeric](op ewOp, out, a []T, s T) {
	switch op {
	case ewAdd:
		for i := range out {
			out[i] = a[i] + s
		}
	case ewSub:
		for i := range out {
			out[i] = a[i] - s
		}
	case ewMul:
		for i := range out {
			out[i] = a[i] * s
		}
	}
}

// elementwise computes out = a (op) b for identically shaped operands and
// builds the result through the flat-construction contract.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//   - Stage 3: build(out, a.Cols(), a.Rows()).
//
// Errors:
//   - ErrNilMatrix, *DimensionError (matches ErrDimensionMismatch), factory errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func elementwise[T Numeric, M Matrix[T]](opTag string, op ewOp, a, b Matrix[T], build FlatFactory[T, M]) (M, error) {
	var zero M
	if err := ValidateBinarySameShape(opTag, a, b); err != nil {
		return zero, matrixErrorf(opTag, err)
	}

	ad := a.Data()
	out := make([]T, len(ad))
	ewApply(op, out, ad, b.Data())

	res, err := build(out, a.Cols(), a.Rows())
	if err != nil {
		return zero, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the elementwise sum C = A + B.
// Both operands must have identical column and row counts; the result has
// the same shape and is constructed with build.
// Errors: ErrNilMatrix, ErrDimensionMismatch (as *DimensionError).
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Numeric, M Matrix[T]](a, b Matrix[T], build FlatFactory[T, M]) (M, error) {
	return elementwise(opAdd, ewAdd, a, b, build)
}

// Sub computes the elementwise difference C = A - B. Operand order matters:
// Sub(b, a) is the negation of Sub(a, b).
// Errors: ErrNilMatrix, ErrDimensionMismatch (as *DimensionError).
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Numeric, M Matrix[T]](a, b Matrix[T], build FlatFactory[T, M]) (M, error) {
	return elementwise(opSub, ewSub, a, b, build)
}

// Hadamard computes the elementwise product C = A ⊙ B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (as *DimensionError).
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[T Numeric, M Matrix[T]](a, b Matrix[T], build FlatFactory[T, M]) (M, error) {
	return elementwise(opHadamard, ewMul, a, b, build)
}

// Mul performs the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: for each output row r and column c, seed sum at the zero value
//     of T and accumulate over i in [0, B.Rows):
//     sum += A(x=i, y=r) * B(x=c, y=i).
//   - Stage 3: build the (A.Rows × B.Cols) result from rows.
//
// Behavior highlights:
//   - Reads use the same row-major offsets as AtUnchecked, hoisted out of the
//     interface call for speed.
//   - Accumulation order is fixed (i ascending), so integer and floating-point
//     results are reproducible.
//
// Errors:
//   - ErrNilMatrix; *DimensionError carrying both shapes (matches ErrDimensionMismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Numeric, M Matrix[T]](a, b Matrix[T], build RowsFactory[T, M]) (M, error) {
	var zero M
	if err := ValidateMulCompatible(a, b); err != nil {
		return zero, matrixErrorf(opMul, err)
	}

	aCols, aRows := a.Cols(), a.Rows()
	bCols, inner := b.Cols(), b.Rows()
	ad, bd := a.Data(), b.Data()

	flat := make([]T, aRows*bCols) // one backing buffer for all result rows
	out := make([][]T, aRows)
	var (
		r, c, i int
		sum     T
	)
	for r = 0; r < aRows; r++ {
		row := flat[r*bCols : (r+1)*bCols : (r+1)*bCols]
		for c = 0; c < bCols; c++ {
			sum = zeroOf[T]()
			for i = 0; i < inner; i++ {
				sum += ad[r*aCols+i] * bd[i*bCols+c]
			}
			row[c] = sum
		}
		out[r] = row
	}

	res, err := build(out)
	if err != nil {
		return zero, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns mᵀ: element (x, y) of the result is element (y, x) of m.
// Errors: ErrNilMatrix, factory errors.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Numeric, M Matrix[T]](m Matrix[T], build FlatFactory[T, M]) (M, error) {
	var zero M
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opTranspose, err)
	}

	cols, rows := m.Cols(), m.Rows()
	src := m.Data()
	out := make([]T, len(src))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[x*rows+y] = src[y*cols+x]
		}
	}

	res, err := build(out, rows, cols)
	if err != nil {
		return zero, matrixErrorf(opTranspose, err)
	}

	return res, nil
}

// scalar applies (op) s to every element of m and builds a same-shape result.
func scalar[T Numeric, M Matrix[T]](op ewOp, m Matrix[T], s T, build FlatFactory[T, M]) (M, error) {
	var zero M
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opScalar, err)
	}

	src := m.Data()
	out := make([]T, len(src))
	ewScalar(op, out, src, s)

	res, err := build(out, m.Cols(), m.Rows())
	if err != nil {
		return zero, matrixErrorf(opScalar, err)
	}

	return res, nil
}

// AddScalar returns m with s added to every element.
// No shape check is possible, so the only failures are a nil m or a factory error.
func AddScalar[T Numeric, M Matrix[T]](m Matrix[T], s T, build FlatFactory[T, M]) (M, error) {
	return scalar(ewAdd, m, s, build)
}

// SubScalar returns m with s subtracted from every element.
func SubScalar[T Numeric, M Matrix[T]](m Matrix[T], s T, build FlatFactory[T, M]) (M, error) {
	return scalar(ewSub, m, s, build)
}

// MulScalar returns m with every element multiplied by s.
func MulScalar[T Numeric, M Matrix[T]](m Matrix[T], s T, build FlatFactory[T, M]) (M, error) {
	return scalar(ewMul, m, s, build)
}

// zeroOf returns the zero value of T, the accumulator seed.
func zeroOf[T Numeric]() T {
	var z T

	return z
}
