/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tres_test

import (
	"reflect"
	"testing"

	"bennypowers.dev/tresport/tres"
	"bennypowers.dev/tresport/value"
)

func mapOf(pairs ...any) *value.Map {
	m := value.NewMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1].(value.Value))
	}
	return m
}

func TestClassify_ArrayNesting(t *testing.T) {
	// Commas inside nested brackets and inside quoted strings must not
	// split top-level elements.
	got := tres.Classify(`[1, [2, 3], "a,b"]`)
	want := value.Array{
		value.Int(1),
		value.Array{value.Int(2), value.Int(3)},
		value.String("a,b"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_ArrayEmpty(t *testing.T) {
	tests := []string{"[]", "[ ]", "[\t]"}
	for _, raw := range tests {
		got := tres.Classify(raw)
		if !reflect.DeepEqual(got, value.Array{}) {
			t.Errorf("Classify(%q) = %#v, want empty Array", raw, got)
		}
	}
}

func TestClassify_ArrayMixed(t *testing.T) {
	got := tres.Classify(`["weak", "slow"]`)
	want := value.Array{value.String("weak"), value.String("slow")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_ArrayOfMaps(t *testing.T) {
	got := tres.Classify(`[{"type": "burn", "turns": 2}, {"type": "stun", "turns": 1}]`)
	want := value.Array{
		mapOf("type", value.String("burn"), "turns", value.Int(2)),
		mapOf("type", value.String("stun"), "turns", value.Int(1)),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_ArrayEscapedQuote(t *testing.T) {
	// An escaped quote does not end the string, so the comma after it
	// stays inside the element.
	got := tres.Classify(`["say \"hi\", friend", 2]`)
	want := value.Array{
		value.String(`say \"hi\", friend`),
		value.Int(2),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_ArrayFailSoft(t *testing.T) {
	// Malformed composites degrade to an empty Array, never an error.
	tests := []string{
		"[1, 2",   // unterminated array
		"[1, [2]", // unbalanced nesting
		`["a, 2]`, // unterminated string
		"[",       // bare opener
	}

	for _, raw := range tests {
		got := tres.Classify(raw)
		if !reflect.DeepEqual(got, value.Array{}) {
			t.Errorf("Classify(%q) = %#v, want empty Array", raw, got)
		}
	}
}

func TestClassify_MapKeyValueSplit(t *testing.T) {
	got := tres.Classify(`{"a": 1, "b": [1,2]}`)
	want := mapOf(
		"a", value.Int(1),
		"b", value.Array{value.Int(1), value.Int(2)},
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_MapNested(t *testing.T) {
	got := tres.Classify(`{"drops": {"gold": 5, "items": ["slime_gel"]}, "xp": 12}`)
	want := mapOf(
		"drops", mapOf(
			"gold", value.Int(5),
			"items", value.Array{value.String("slime_gel")},
		),
		"xp", value.Int(12),
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_MapUnquotedKeys(t *testing.T) {
	got := tres.Classify(`{fire: 0.5, ice: 2.0}`)
	want := mapOf(
		"fire", value.Float(0.5),
		"ice", value.Float(2.0),
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_MapValueWithColon(t *testing.T) {
	// A colon inside a quoted value must not restart key parsing, and a
	// colon after the first only counts at depth zero in key mode.
	got := tres.Classify(`{"url": "res://icons/a.png"}`)
	want := mapOf("url", value.String("res://icons/a.png"))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestClassify_MapEmpty(t *testing.T) {
	tests := []string{"{}", "{ }"}
	for _, raw := range tests {
		got := tres.Classify(raw)
		if !reflect.DeepEqual(got, value.NewMap()) {
			t.Errorf("Classify(%q) = %#v, want empty Map", raw, got)
		}
	}
}

func TestClassify_MapFailSoft(t *testing.T) {
	tests := []string{
		`{"a": 1`,   // unterminated map
		`{"a": [1}`, // unbalanced nesting
		`{"a: 1}`,   // unterminated string
		"{",         // bare opener
	}

	for _, raw := range tests {
		got := tres.Classify(raw)
		if !reflect.DeepEqual(got, value.NewMap()) {
			t.Errorf("Classify(%q) = %#v, want empty Map", raw, got)
		}
	}
}

func TestClassify_MapOrderPreserved(t *testing.T) {
	got := tres.Classify(`{"z": 1, "a": 2, "m": 3}`)
	m, ok := got.(*value.Map)
	if !ok {
		t.Fatalf("expected *value.Map, got %#v", got)
	}

	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Errorf("key order = %v, want %v", m.Keys(), want)
	}
}
