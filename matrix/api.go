// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for callers that do not care which storage
//     variant holds the result: every facade returns a *Dynamic.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.

package matrix

// Sum is Add with a *Dynamic result: element-wise a + b.
// Complexity: O(rc).
func Sum[T Numeric](a, b Matrix[T]) (*Dynamic[T], error) {
	return Add[T, *Dynamic[T]](a, b, adoptDynamic[T])
}

// Diff is Sub with a *Dynamic result: element-wise a − b.
// Complexity: O(rc).
func Diff[T Numeric](a, b Matrix[T]) (*Dynamic[T], error) {
	return Sub[T, *Dynamic[T]](a, b, adoptDynamic[T])
}

// HadamardProd is Hadamard with a *Dynamic result: element-wise a ⊙ b.
// Complexity: O(rc).
func HadamardProd[T Numeric](a, b Matrix[T]) (*Dynamic[T], error) {
	return Hadamard[T, *Dynamic[T]](a, b, adoptDynamic[T])
}

// Product is Mul with a *Dynamic result: the matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Numeric](a, b Matrix[T]) (*Dynamic[T], error) {
	return Mul[T, *Dynamic[T]](a, b, dynamicFromRows[T])
}

// Dot is an alias for Product.
func Dot[T Numeric](a, b Matrix[T]) (*Dynamic[T], error) { return Product(a, b) }

// Transposed is Transpose with a *Dynamic result: mᵀ.
// Complexity: O(rc).
func Transposed[T Numeric](m Matrix[T]) (*Dynamic[T], error) {
	return Transpose[T, *Dynamic[T]](m, adoptDynamic[T])
}

// CloneMatrix returns an independent *Dynamic copy of any variant.
// Complexity: O(r*c).
func CloneMatrix[T Numeric](m Matrix[T]) (*Dynamic[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return &Dynamic[T]{cols: m.Cols(), rows: m.Rows(), data: Values(m)}, nil
}
