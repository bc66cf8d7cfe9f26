// SPDX-License-Identifier: MIT

// Package document: functional configuration for decoding and encoding
// matrix documents. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - A variant set through WithVariant overrides the document's own
//     "variant" key; otherwise the key wins, and DefaultVariant applies when
//     the key is absent.
package document

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVariant is used when neither the document nor an option names one.
	DefaultVariant = VariantDynamic

	// DefaultStrict rejects unknown top-level keys when true.
	DefaultStrict = false
)

const panicVariantInvalid = "document: WithVariant: unknown variant"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	variant Variant // "" means: take it from the document
	strict  bool    // DefaultStrict
}

// WithVariant forces the storage variant of decoded matrices, ignoring the
// document's own key. Panics on a value other than VariantFixed or
// VariantDynamic (programmer error).
func WithVariant(v Variant) Option {
	if !v.valid() {
		panic(panicVariantInvalid)
	}

	return func(o *Options) { o.variant = v }
}

// WithStrict makes Decode reject keys other than "variant" and "rows".
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{strict: DefaultStrict}
	for _, set := range user {
		set(&o)
	}

	return o
}
