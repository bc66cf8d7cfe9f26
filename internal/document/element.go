// SPDX-License-Identifier: MIT

package document

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/matrixkit/matrix"
	"gopkg.in/yaml.v3"
)

// ErrInexactElement indicates a scalar that the element type cannot hold
// exactly, e.g. 1.5 for an integer matrix. Such values are rejected, never
// truncated.
var ErrInexactElement = errors.New("document: element not representable exactly")

// errNotScalar indicates a mapping or sequence where an element was expected.
var errNotScalar = errors.New("document: element must be a scalar")

const tagInt = "!!int"

// isInteger reports whether T's underlying kind is an integer.
func isInteger[T matrix.Numeric]() bool {
	switch reflect.TypeOf(*new(T)).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// element decodes a single scalar node into T.
// Integer element types accept only !!int scalars; yaml.v3 reports
// out-of-range integers itself.
func element[T matrix.Numeric](n *yaml.Node) (T, error) {
	var v T
	if n.Kind != yaml.ScalarNode {
		return v, fmt.Errorf("line %d: %w", n.Line, errNotScalar)
	}
	if isInteger[T]() && n.ShortTag() != tagInt {
		return v, fmt.Errorf("line %d: %w: %q as %T", n.Line, ErrInexactElement, n.Value, v)
	}
	if err := n.Decode(&v); err != nil {
		return v, fmt.Errorf("line %d: %w", n.Line, err)
	}

	return v, nil
}

// row decodes a sequence node into a row of T.
func row[T matrix.Numeric](n *yaml.Node) ([]T, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: row must be a sequence", n.Line)
	}
	out := make([]T, len(n.Content))
	for i, c := range n.Content {
		v, err := element[T](c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// parseInline parses a one-line YAML value and returns its root node.
func parseInline(raw string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	return doc.Content[0], nil
}

// ParseElement reads one element written with YAML scalar rules
// ("3", "-1.5", "0x1f"). It applies the same exactness rule as Decode.
func ParseElement[T matrix.Numeric](raw string) (T, error) {
	var zero T
	n, err := parseInline(raw)
	if err != nil {
		return zero, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	v, err := element[T](n)
	if err != nil {
		return zero, fmt.Errorf("invalid value %q: %w", raw, err)
	}

	return v, nil
}

// ParseRow reads a comma-separated row ("1,2,3") with the rules of ParseElement.
func ParseRow[T matrix.Numeric](raw string) ([]T, error) {
	n, err := parseInline("[" + raw + "]")
	if err != nil {
		return nil, fmt.Errorf("invalid row %q: %w", raw, err)
	}
	r, err := row[T](n)
	if err != nil {
		return nil, fmt.Errorf("invalid row %q: %w", raw, err)
	}

	return r, nil
}
