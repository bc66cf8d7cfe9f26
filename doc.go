// Package matrixkit is a small, generic matrix toolkit: two storage
// strategies behind one numeric interface, plus YAML documents and a CLI.
//
// 🚀 What is in matrixkit?
//
//	• Fixed: an immutable matrix whose extents never change after construction
//	• Dynamic: a growable matrix that accepts whole rows at runtime
//	• Arithmetic: +, -, Hadamard, product, transpose and scalar ops,
//	  freely mixing the two variants (the result follows the left operand)
//	• Any element type with +, -, * (ints, floats, complex, named numerics)
//
// ✨ Why choose matrixkit?
//
//   - One kernel set: every operation is written once over Matrix[T]
//   - Explicit errors: shape problems are values, never silent truncation
//   - Pure Go generics, no cgo
//
// Under the hood, everything is organized under these packages:
//
//	matrix/             - Numeric, Matrix[T], Fixed, Dynamic, kernels and validators
//	internal/document/  - YAML matrix documents (decode, encode, load)
//	cmd/matrixctl/      - command-line front end over documents
//
// Quick example:
//
//	a := matrix.MustFixed([][]int{{1, 2}, {3, 4}})
//	d := matrix.MustDynamic([][]int{{1, 2}, {3, 4}})
//	sum, _ := a.Add(d) // Fixed[int]{{2,4},{6,8}}
//	_ = d.InsertRow([]int{5, 6})
//
// See matrix/example_test.go for runnable examples.
package matrixkit
