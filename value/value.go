/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value defines the generic, JSON-compatible value tree produced
// by resource parsing.
package value

import "fmt"

// Kind identifies the variant of a Value.
type Kind int

const (
	// KindNull is the null/nil variant.
	KindNull Kind = iota

	// KindBool is the boolean variant.
	KindBool

	// KindInt is the integer variant.
	KindInt

	// KindFloat is the floating-point variant.
	KindFloat

	// KindString is the string variant.
	KindString

	// KindColor is the RGBA color variant.
	KindColor

	// KindVector2 is the 2D vector variant.
	KindVector2

	// KindArray is the ordered sequence variant.
	KindArray

	// KindMap is the ordered string-keyed mapping variant.
	KindMap
)

// Value is the universal result type for parsed literals.
// The set of implementations is closed: Null, Bool, Int, Float, String,
// Color, Vector2, Array and *Map. Every Value marshals to JSON.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind
}

// Null represents a null/nil literal.
type Null struct{}

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }

// MarshalJSON encodes Null as the JSON null literal.
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Bool represents a boolean literal.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }

// Int represents an integer literal.
type Int int64

// Kind implements Value.
func (Int) Kind() Kind { return KindInt }

// Float represents a floating-point literal.
type Float float64

// Kind implements Value.
func (Float) Kind() Kind { return KindFloat }

// String represents a string literal, including the raw-text fallback
// for unrecognized syntax.
type String string

// Kind implements Value.
func (String) Kind() Kind { return KindString }

// Color represents an RGBA color literal with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Kind implements Value.
func (Color) Kind() Kind { return KindColor }

// Vector2 represents a 2D vector literal.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind implements Value.
func (Vector2) Kind() Kind { return KindVector2 }

// Array represents an ordered sequence of values.
type Array []Value

// Kind implements Value.
func (Array) Kind() Kind { return KindArray }

// FromGo converts a plain Go scalar to a Value. It supports the types
// that appear in configuration files: nil, bool, string, integers and
// float64. Composite Go values are not supported.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}
