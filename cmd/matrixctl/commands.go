// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/matrixkit/internal/document"
	"github.com/katalvlaran/matrixkit/matrix"
	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print FILE",
		Short: "Print a matrix document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byElement(cmd,
				func(s *session[int64]) error { return runPrint(s, args[0]) },
				func(s *session[float64]) error { return runPrint(s, args[0]) })
		},
	}
}

func runPrint[T matrix.Numeric](s *session[T], path string) error {
	m, err := s.load(path)
	if err != nil {
		return err
	}

	return s.emit(m)
}

// newBinaryCmd builds add, sub, mul and hadamard.
func newBinaryCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byElement(cmd,
				func(s *session[int64]) error { return runBinary(s, op, args[0], args[1]) },
				func(s *session[float64]) error { return runBinary(s, op, args[0], args[1]) })
		},
	}
}

func runBinary[T matrix.Numeric](s *session[T], op, a, b string) error {
	left, right, err := s.loadPair(a, b)
	if err != nil {
		return err
	}
	out, err := combine(op, left, right)
	if err != nil {
		return err
	}

	return s.emit(out)
}

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale FILE",
		Short: "Add, subtract or multiply every element by a scalar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, raw := scaleFlag(cmd)

			return byElement(cmd,
				func(s *session[int64]) error { return runScale(s, op, raw, args[0]) },
				func(s *session[float64]) error { return runScale(s, op, raw, args[0]) })
		},
	}
	cmd.Flags().String(opAdd, "", "Add VALUE to every element")
	cmd.Flags().String(opSub, "", "Subtract VALUE from every element")
	cmd.Flags().String(opMul, "", "Multiply every element by VALUE")
	cmd.MarkFlagsMutuallyExclusive(opAdd, opSub, opMul)
	cmd.MarkFlagsOneRequired(opAdd, opSub, opMul)

	return cmd
}

// scaleFlag returns the one scalar flag that was set.
func scaleFlag(cmd *cobra.Command) (op, raw string) {
	for _, name := range []string{opAdd, opSub, opMul} {
		if cmd.Flags().Changed(name) {
			raw, _ = cmd.Flags().GetString(name)

			return name, raw
		}
	}

	return "", ""
}

func runScale[T matrix.Numeric](s *session[T], op, raw, path string) error {
	v, err := document.ParseElement[T](raw)
	if err != nil {
		return err
	}
	m, err := s.load(path)
	if err != nil {
		return err
	}
	out, err := scaleBy(op, m, v)
	if err != nil {
		return err
	}

	return s.emit(out)
}

func newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose FILE",
		Short: "Swap rows and columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byElement(cmd,
				func(s *session[int64]) error { return runTranspose(s, args[0]) },
				func(s *session[float64]) error { return runTranspose(s, args[0]) })
		},
	}
}

func runTranspose[T matrix.Numeric](s *session[T], path string) error {
	m, err := s.load(path)
	if err != nil {
		return err
	}
	out, err := transposeOf(m)
	if err != nil {
		return err
	}

	return s.emit(out)
}

func newInsertRowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert-row FILE",
		Short: "Append a row to a dynamic matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("row")

			return byElement(cmd,
				func(s *session[int64]) error { return runInsertRow(s, raw, args[0]) },
				func(s *session[float64]) error { return runInsertRow(s, raw, args[0]) })
		},
	}
	cmd.Flags().String("row", "", "Comma-separated row values, e.g. 1,2,3")
	_ = cmd.MarkFlagRequired("row")

	return cmd
}

func runInsertRow[T matrix.Numeric](s *session[T], raw, path string) error {
	row, err := document.ParseRow[T](raw)
	if err != nil {
		return err
	}
	m, err := s.load(path)
	if err != nil {
		return err
	}
	d, ok := m.(*matrix.Dynamic[T])
	if !ok {
		return errFixedInsert
	}
	if err = d.InsertRow(row); err != nil {
		return err
	}

	return s.emit(d)
}

func newEqualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Report whether two matrices have equal shape and elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byElement(cmd,
				func(s *session[int64]) error { return runEqual(s, args[0], args[1]) },
				func(s *session[float64]) error { return runEqual(s, args[0], args[1]) })
		},
	}
}

func runEqual[T matrix.Numeric](s *session[T], a, b string) error {
	left, right, err := s.loadPair(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, matrix.Equal(left, right))

	return err
}
