// SPDX-License-Identifier: MIT

// Package document reads and writes matrices as small YAML documents:
//
//	variant: fixed        # or dynamic
//	rows:
//	  - [1, 2]
//	  - [3, 4]
//
// Decoding validates shape through the matrix constructors, so a ragged
// document fails with matrix.ErrIncorrectLength and an empty one with
// matrix.ErrInvalidDimensions.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matrixkit/matrix"
	"gopkg.in/yaml.v3"
)

// Variant names a storage strategy in a document.
type Variant string

const (
	VariantFixed   Variant = "fixed"
	VariantDynamic Variant = "dynamic"
)

// Sentinel errors.
var (
	// ErrUnknownVariant indicates a variant other than "fixed" or "dynamic".
	ErrUnknownVariant = errors.New("document: unknown variant")

	// ErrEmptyDocument indicates the input held no YAML document at all.
	ErrEmptyDocument = errors.New("document: empty document")
)

const (
	opDecode = "document.Decode"
	opEncode = "document.Encode"
	opLoad   = "document.Load"

	keyRows = "rows"
)

// ParseVariant maps a name to a Variant. The empty string yields DefaultVariant.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return DefaultVariant, nil
	}
	v := Variant(s)
	if !v.valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}

	return v, nil
}

func (v Variant) valid() bool { return v == VariantFixed || v == VariantDynamic }

// UnmarshalYAML rejects unknown variant names at decode time, reporting the
// offending line.
func (v *Variant) UnmarshalYAML(n *yaml.Node) error {
	p, err := ParseVariant(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*v = p

	return nil
}

// Document is the serialized form of a matrix.
type Document[T matrix.Numeric] struct {
	Variant Variant `yaml:"variant,omitempty"`
	Rows    [][]T   `yaml:"rows"`
}

// rawDocument is the decode-side shape: rows stay as nodes until element
// checks the exactness rule for T.
type rawDocument struct {
	Variant Variant       `yaml:"variant,omitempty"`
	Rows    [][]yaml.Node `yaml:"rows"`
}

func documentOf[T matrix.Numeric](raw rawDocument) (Document[T], error) {
	doc := Document[T]{Variant: raw.Variant}
	if len(raw.Rows) > 0 {
		doc.Rows = make([][]T, len(raw.Rows))
	}
	for y, nodes := range raw.Rows {
		doc.Rows[y] = make([]T, len(nodes))
		for x := range nodes {
			v, err := element[T](&nodes[x])
			if err != nil {
				return Document[T]{}, err
			}
			doc.Rows[y][x] = v
		}
	}

	return doc, nil
}

// UnmarshalYAML decodes through the exactness rule, so a plain
// yaml.Unmarshal into a Document never truncates elements either.
func (d *Document[T]) UnmarshalYAML(n *yaml.Node) error {
	var raw rawDocument
	if err := n.Decode(&raw); err != nil {
		return err
	}
	doc, err := documentOf[T](raw)
	if err != nil {
		return err
	}
	*d = doc

	return nil
}

// Of captures m as a Document. The variant is VariantFixed for a
// matrix.Fixed and VariantDynamic for everything else.
func Of[T matrix.Numeric](m matrix.Matrix[T]) Document[T] {
	v := VariantDynamic
	if _, ok := m.(matrix.Fixed[T]); ok {
		v = VariantFixed
	}

	return Document[T]{Variant: v, Rows: matrix.ToRows(m)}
}

// Matrix builds the matrix described by d. A non-empty override replaces
// d.Variant. The concrete type is matrix.Fixed[T] or *matrix.Dynamic[T].
func (d Document[T]) Matrix(override Variant) (matrix.Matrix[T], error) {
	v := d.Variant
	if override != "" {
		v = override
	}
	v, err := ParseVariant(string(v))
	if err != nil {
		return nil, err
	}
	if v == VariantFixed {
		f, err := matrix.NewFixed(d.Rows)
		if err != nil {
			return nil, err
		}

		return f, nil
	}

	dyn, err := matrix.NewDynamic(d.Rows)
	if err != nil {
		return nil, err
	}

	return dyn, nil
}

// Decode reads one document from r and builds its matrix.
// Errors:
//   - ErrEmptyDocument when r holds no document.
//   - ErrUnknownVariant, YAML syntax/type errors (wrapped).
//   - ErrInexactElement when a scalar would lose precision in T (1.5 as int64).
//   - matrix.ErrInvalidDimensions, matrix.ErrIncorrectLength from construction.
func Decode[T matrix.Numeric](r io.Reader, opts ...Option) (matrix.Matrix[T], error) {
	o := gatherOptions(opts...)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(o.strict)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", opDecode, ErrEmptyDocument)
		}

		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}
	doc, err := documentOf[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	m, err := doc.Matrix(o.variant)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}

	return m, nil
}

// Load decodes the document stored at path.
func Load[T matrix.Numeric](path string, opts ...Option) (matrix.Matrix[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}
	defer f.Close()

	m, err := Decode[T](f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoad, path, err)
	}

	return m, nil
}

// Encode writes m to w as a document, one flow-style sequence per row.
// A WithVariant option overrides the inferred variant key.
func Encode[T matrix.Numeric](w io.Writer, m matrix.Matrix[T], opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}
	o := gatherOptions(opts...)
	doc := Of(m)
	if o.variant != "" {
		doc.Variant = o.variant
	}

	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}
	flowRows(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}

	return enc.Close()
}

// flowRows renders every row of the "rows" sequence inline ([1, 2]).
func flowRows(n *yaml.Node) {
	if n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != keyRows {
			continue
		}
		for _, r := range n.Content[i+1].Content {
			r.Style = yaml.FlowStyle
		}
	}
}
