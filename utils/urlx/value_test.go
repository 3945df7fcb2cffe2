// File: value_test.go
// Title: Value Tests
// Description: Tests for tagged values, ordered maps and JSON rendering.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Number literals, FromAny, ordered JSON

package urlx

import (
	"math"
	"reflect"
	"testing"

	tkerror "github.com/hrimthurs/Tackle/core/error"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{100, "100"},
		{-0.5, "-0.5"},
		{123456789012, "123456789012"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			lit, ok := Number(tt.input).Literal()
			if !ok || lit != tt.expected {
				t.Errorf("Number(%v).Literal() = %q, %v, want %q", tt.input, lit, ok, tt.expected)
			}
		})
	}
}

func TestNumberNotFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if v := Number(f); !v.IsNull() {
			t.Errorf("Number(%v) = %#v, want null", f, v)
		}
	}
}

func TestNumberLiteral(t *testing.T) {
	v, err := NumberLiteral("1.50")
	if err != nil {
		t.Fatalf("NumberLiteral() error = %v", err)
	}
	if lit, _ := v.Literal(); lit != "1.50" {
		t.Errorf("Literal() = %q, want 1.50", lit)
	}
	if f, _ := v.AsFloat(); f != 1.5 {
		t.Errorf("AsFloat() = %v, want 1.5", f)
	}

	for _, bad := range []string{"01", "1.", "+1", "NaN", "0x10", ""} {
		if _, err := NumberLiteral(bad); !tkerror.HasCode(err, tkerror.CodeInvalidFormat) {
			t.Errorf("NumberLiteral(%q) error = %v, want INVALID_FORMAT", bad, err)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	var undefined Value
	if !undefined.IsUndefined() || undefined.Kind() != KindUndefined {
		t.Error("zero Value must be undefined")
	}

	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Error("Bool(true).AsBool() failed")
	}
	if _, ok := String("x").AsBool(); ok {
		t.Error("String.AsBool() must report false")
	}
	if s, ok := String("x").AsString(); !ok || s != "x" {
		t.Error("String(x).AsString() failed")
	}

	list := List(String("a"), num("2"))
	if list.Len() != 2 || !list.Index(1).Equal(num("2")) {
		t.Errorf("list = %#v", list)
	}
	if !list.Index(5).IsUndefined() {
		t.Error("Index out of range must be undefined")
	}
	items, _ := list.AsList()
	items[0] = Null()
	if !list.Index(0).Equal(String("a")) {
		t.Error("AsList() must return a copy")
	}

	m := obj("x", num("1"))
	if !m.Get("x").Equal(num("1")) || !m.Get("y").IsUndefined() {
		t.Errorf("Get() on %#v", m)
	}
	inner, _ := m.AsMap()
	inner.Set("y", Null())
	if m.Len() != 1 {
		t.Error("AsMap() must return a copy")
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"numbers by value", num("1.0"), Number(1), true},
		{"different numbers", num("1"), num("2"), false},
		{"kind mismatch", String("1"), num("1"), false},
		{"null", Null(), Null(), true},
		{"undefined is not null", Value{}, Null(), false},
		{"map order ignored", obj("a", num("1"), "b", num("2")), obj("b", num("2"), "a", num("1")), true},
		{"list order matters", List(num("1"), num("2")), List(num("2"), num("1")), false},
		{"nested", List(obj("k", List(Bool(false)))), List(obj("k", List(Bool(false)))), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("%#v.Equal(%#v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"undefined", Value{}, "null"},
		{"string", String(`a"b`), `"a\"b"`},
		{"literal kept", num("1.50"), "1.50"},
		{"list with undefined", List(num("1"), Value{}), "[1,null]"},
		{"map keeps order", obj("b", num("1"), "a", String("x")), `{"b":1,"a":"x"}`},
		{"map skips undefined", obj("a", Value{}, "b", Bool(true)), `{"b":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.JSON(); got != tt.expected {
				t.Errorf("JSON() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestFromAny(t *testing.T) {
	got := FromAny(map[string]any{
		"b": 1,
		"a": []any{"x", true, nil},
		"c": map[string]float64{"z": 0.5},
		"d": uint8(7),
	})

	want := obj(
		"a", List(String("x"), Bool(true), Null()),
		"b", num("1"),
		"c", obj("z", num("0.5")),
		"d", num("7"),
	)
	if !got.Equal(want) {
		t.Errorf("FromAny() = %#v, want %#v", got, want)
	}

	m, _ := got.AsMap()
	if keys := m.Keys(); !reflect.DeepEqual(keys, []string{"a", "b", "c", "d"}) {
		t.Errorf("FromAny() keys = %v, want sorted", keys)
	}
	if v := FromAny(nil); !v.IsNull() {
		t.Errorf("FromAny(nil) = %#v, want null", v)
	}
}

func TestValueInterface(t *testing.T) {
	v := obj("n", num("2"), "l", List(String("s"), Null()))
	want := map[string]any{"n": 2.0, "l": []any{"s", nil}}
	if got := v.Interface(); !reflect.DeepEqual(got, want) {
		t.Errorf("Interface() = %v, want %v", got, want)
	}
}

func TestMap(t *testing.T) {
	m := NewMap().Set("z", num("1")).Set("a", num("2")).Set("z", num("3"))

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"z", "a"}) {
		t.Errorf("Keys() = %v, want [z a]", got)
	}
	if v, _ := m.Get("z"); !v.Equal(num("3")) {
		t.Errorf("Get(z) = %#v, want 3", v)
	}

	m.Delete("z")
	m.Delete("missing")
	if m.Len() != 1 || m.Has("z") {
		t.Errorf("after Delete: %v", m.Keys())
	}

	var visited []string
	NewMap().Set("a", Null()).Set("b", Null()).Set("c", Null()).Range(func(k string, _ Value) bool {
		visited = append(visited, k)
		return k != "b"
	})
	if !reflect.DeepEqual(visited, []string{"a", "b"}) {
		t.Errorf("Range stopped at %v, want [a b]", visited)
	}

	var nilMap *Map
	if nilMap.Len() != 0 || nilMap.Has("a") || nilMap.Keys() != nil {
		t.Error("nil Map must behave as empty")
	}
}

func TestParams(t *testing.T) {
	p := ParamsFromMap(map[string]any{"b": "x", "a": 1})
	if got := p.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", got)
	}

	other := NewParams().Set("b", String("x")).Set("a", num("1"))
	if !p.Equal(other) {
		t.Error("Params with the same entries must be equal")
	}

	var nilParams *Params
	if !nilParams.Equal(NewParams()) || nilParams.Len() != 0 {
		t.Error("nil Params must equal empty Params")
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindUndefined: "undefined",
		KindNull:      "null",
		KindBool:      "bool",
		KindNumber:    "number",
		KindString:    "string",
		KindList:      "list",
		KindMap:       "map",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON(`{"z":1,"a":[true,null],"m":{}}`)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	m, _ := v.AsMap()
	if keys := m.Keys(); !reflect.DeepEqual(keys, []string{"z", "a", "m"}) {
		t.Errorf("keys = %v, want document order", keys)
	}

	for _, bad := range []string{"", "{", "NaN", "01", "'x'"} {
		if _, err := ParseJSON(bad); !tkerror.HasCode(err, tkerror.CodeInvalidFormat) {
			t.Errorf("ParseJSON(%q) error = %v, want INVALID_FORMAT", bad, err)
		}
	}
}

func TestParseValue(t *testing.T) {
	if v := ParseValue(`["a",1]`); !v.Equal(List(String("a"), num("1"))) {
		t.Errorf("ParseValue(list) = %#v", v)
	}
	if v := ParseValue("x:1"); !v.Equal(String("x:1")) {
		t.Errorf("ParseValue(x:1) = %#v", v)
	}
}
