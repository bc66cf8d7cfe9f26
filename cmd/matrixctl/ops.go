// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/matrixkit/matrix"
)

// Operation names, shared by subcommands and the kernel dispatch below.
const (
	opAdd      = "add"
	opSub      = "sub"
	opMul      = "mul"
	opHadamard = "hadamard"
)

// combine applies op to a and b. The result keeps the storage variant of a.
func combine[T matrix.Numeric](op string, a, b matrix.Matrix[T]) (matrix.Matrix[T], error) {
	if _, ok := a.(matrix.Fixed[T]); ok {
		return combineInto[T, matrix.Fixed[T]](op, a, b, matrix.NewFixedFlat[T], matrix.NewFixed[T])
	}

	return combineInto[T, *matrix.Dynamic[T]](op, a, b, matrix.NewDynamicFlat[T], matrix.NewDynamic[T])
}

func combineInto[T matrix.Numeric, M matrix.Matrix[T]](
	op string, a, b matrix.Matrix[T],
	flat matrix.FlatFactory[T, M], rows matrix.RowsFactory[T, M],
) (matrix.Matrix[T], error) {
	var (
		out M
		err error
	)
	switch op {
	case opAdd:
		out, err = matrix.Add[T, M](a, b, flat)
	case opSub:
		out, err = matrix.Sub[T, M](a, b, flat)
	case opHadamard:
		out, err = matrix.Hadamard[T, M](a, b, flat)
	case opMul:
		out, err = matrix.Mul[T, M](a, b, rows)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// scaleBy applies a scalar op to every element of m, keeping its variant.
func scaleBy[T matrix.Numeric](op string, m matrix.Matrix[T], s T) (matrix.Matrix[T], error) {
	if _, ok := m.(matrix.Fixed[T]); ok {
		return scaleInto[T, matrix.Fixed[T]](op, m, s, matrix.NewFixedFlat[T])
	}

	return scaleInto[T, *matrix.Dynamic[T]](op, m, s, matrix.NewDynamicFlat[T])
}

func scaleInto[T matrix.Numeric, M matrix.Matrix[T]](op string, m matrix.Matrix[T], s T, flat matrix.FlatFactory[T, M]) (matrix.Matrix[T], error) {
	var (
		out M
		err error
	)
	switch op {
	case opAdd:
		out, err = matrix.AddScalar[T, M](m, s, flat)
	case opSub:
		out, err = matrix.SubScalar[T, M](m, s, flat)
	case opMul:
		out, err = matrix.MulScalar[T, M](m, s, flat)
	default:
		return nil, fmt.Errorf("unknown scalar operation %q", op)
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// transposeOf returns the transpose of m in m's variant.
func transposeOf[T matrix.Numeric](m matrix.Matrix[T]) (matrix.Matrix[T], error) {
	if f, ok := m.(matrix.Fixed[T]); ok {
		return f.Transpose(), nil
	}

	return matrix.Transposed(m)
}
