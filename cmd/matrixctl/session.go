// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/matrixkit/internal/document"
	"github.com/katalvlaran/matrixkit/matrix"
	"github.com/spf13/cobra"
)

// Element kinds accepted by --element.
const (
	elementInt   = "int"
	elementFloat = "float"
)

var (
	errUnknownElement = errors.New("unknown element kind (want int or float)")
	errFixedInsert    = errors.New("insert-row: fixed matrices cannot grow (use --variant dynamic)")
)

// session carries the per-invocation settings for one element type.
type session[T matrix.Numeric] struct {
	out    io.Writer
	asYAML bool
	opts   []document.Option
}

// byElement resolves the global flags and runs the int64 or float64 branch.
func byElement(cmd *cobra.Command, ints func(*session[int64]) error, floats func(*session[float64]) error) error {
	element, _ := cmd.Flags().GetString("element")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	variant, _ := cmd.Flags().GetString("variant")

	var opts []document.Option
	if variant != "" {
		v, err := document.ParseVariant(variant)
		if err != nil {
			return err
		}
		opts = append(opts, document.WithVariant(v))
	}

	switch element {
	case elementInt:
		return ints(&session[int64]{out: cmd.OutOrStdout(), asYAML: asYAML, opts: opts})
	case elementFloat:
		return floats(&session[float64]{out: cmd.OutOrStdout(), asYAML: asYAML, opts: opts})
	default:
		return fmt.Errorf("%w: %q", errUnknownElement, element)
	}
}

func (s *session[T]) load(path string) (matrix.Matrix[T], error) {
	return document.Load[T](path, s.opts...)
}

func (s *session[T]) loadPair(a, b string) (matrix.Matrix[T], matrix.Matrix[T], error) {
	left, err := s.load(a)
	if err != nil {
		return nil, nil, err
	}
	right, err := s.load(b)
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

// emit writes m as tab-separated text, or as a document under --yaml.
func (s *session[T]) emit(m matrix.Matrix[T]) error {
	if s.asYAML {
		return document.Encode(s.out, m)
	}
	_, err := io.WriteString(s.out, matrix.Printable(m))

	return err
}
