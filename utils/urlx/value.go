// File: value.go
// Title: Tagged Parameter Values
// Description: Value is the tagged union produced by decoding and consumed
//              by encoding. Map is an insertion-ordered string-keyed map of
//              Values; Params is the ordered result of decoding a URL.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Number literals, FromAny conversion

package urlx

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	tkerrors "github.com/hrimthurs/Tackle/core/errors"
	"github.com/hrimthurs/Tackle/utils/mapx"
)

// Kind identifies the type held by a Value
type Kind int

const (
	// KindUndefined is the zero Value; the encoder skips it
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged value. The zero Value is undefined.
type Value struct {
	kind Kind
	b    bool
	s    string // string content or number literal
	list []Value
	m    *Map
}

// Null returns the null value
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a number value written the way JavaScript prints
// numbers: 1.5, 100, 1e+21, 1e-7. NaN and infinities have no JSON form
// and become null.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return Value{kind: KindNumber, s: formatNumber(f)}
}

// NumberLiteral returns a number value keeping lit verbatim. lit must be
// a JSON number literal.
func NumberLiteral(lit string) (Value, error) {
	if !isJSONNumber(lit) {
		return Value{}, tkerrors.InvalidFormat(tkerrors.ModuleURLx, lit, "JSON number literal")
	}
	return Value{kind: KindNumber, s: lit}, nil
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// List returns a list of the given values
func List(values ...Value) Value {
	list := make([]Value, len(values))
	copy(list, values)
	return Value{kind: KindList, list: list}
}

// MapOf returns a map value holding a copy of m; nil gives an empty map
func MapOf(m *Map) Value {
	if m == nil {
		return Value{kind: KindMap, m: NewMap()}
	}
	return Value{kind: KindMap, m: m.Clone()}
}

// FromAny converts plain Go data to a Value. Maps with string keys become
// maps with sorted keys, slices and arrays become lists, numeric types
// become numbers and nil becomes null. Anything else is formatted with
// fmt and stored as a string.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null()
	case Value:
		return val
	case *Map:
		return MapOf(val)
	case *Params:
		if val == nil {
			return MapOf(nil)
		}
		return MapOf(&val.Map)
	case []Value:
		return List(val...)
	case bool:
		return Bool(val)
	case string:
		return String(val)
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	case int:
		return Value{kind: KindNumber, s: strconv.Itoa(val)}
	case int64:
		return Value{kind: KindNumber, s: strconv.FormatInt(val, 10)}
	case fmt.Stringer:
		return String(val.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{kind: KindNumber, s: strconv.FormatInt(rv.Int(), 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{kind: KindNumber, s: strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		list := make([]Value, rv.Len())
		for i := range list {
			list[i] = FromAny(rv.Index(i).Interface())
		}
		return Value{kind: KindList, list: list}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null()
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.Set(k, FromAny(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
		}
		return Value{kind: KindMap, m: m}
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	}

	return String(fmt.Sprint(v))
}

// Kind returns the kind of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsUndefined reports whether v is the zero Value
func (v Value) IsUndefined() bool {
	return v.kind == KindUndefined
}

// IsNull reports whether v is null
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsFloat returns the number held by v as a float64
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	// literals beyond float64 range give ±Inf
	f, _ := strconv.ParseFloat(v.s, 64)
	return f, true
}

// Literal returns the literal text of a number value
func (v Value) Literal() (string, bool) {
	return v.s, v.kind == KindNumber
}

// AsString returns the string held by v
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsList returns a copy of the elements of a list value
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	list := make([]Value, len(v.list))
	copy(list, v.list)
	return list, true
}

// Len returns the number of elements of a list or entries of a map
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return v.m.Len()
	default:
		return 0
	}
}

// Index returns element i of a list value
func (v Value) Index(i int) Value {
	if v.kind != KindList || i < 0 || i >= len(v.list) {
		return Value{}
	}
	return v.list[i]
}

// AsMap returns a copy of the map held by v
func (v Value) AsMap() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m.Clone(), true
}

// Get returns the entry key of a map value; undefined when absent
func (v Value) Get(key string) Value {
	if v.kind != KindMap {
		return Value{}
	}
	val, _ := v.m.Get(key)
	return val
}

// Interface converts v to plain Go data: nil, bool, float64, string,
// []any or map[string]any. Undefined and null both give nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		f, _ := v.AsFloat()
		return f
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		return v.m.Interface()
	default:
		return nil
	}
}

// Equal reports deep equality. Numbers compare by value, maps ignore
// entry order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindUndefined, KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		if v.s == other.s {
			return true
		}
		a, _ := v.AsFloat()
		b, _ := other.AsFloat()
		return a == b
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(other.m)
	}
	return false
}

// JSON returns the JSON text of v. Undefined renders as null.
func (v Value) JSON() string {
	return stringify(v)
}

// GoString implements fmt.GoStringer for readable test failures
func (v Value) GoString() string {
	if v.kind == KindUndefined {
		return "urlx.Value(undefined)"
	}
	return "urlx.Value(" + v.JSON() + ")"
}

// formatNumber writes f like JavaScript's Number.prototype.toString
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Map is a string-keyed map that remembers insertion order
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty map
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores val under key. An existing key keeps its position.
func (m *Map) Set(key string, val Value) *Map {
	if m.values == nil {
		m.values = make(map[string]Value)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = val
	return m
}

// Get returns the value stored under key
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	val, ok := m.values[key]
	return val, ok
}

// Has reports whether key is present
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key; deleting a missing key is a no-op
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for each entry in order until fn returns false
func (m *Map) Range(fn func(key string, val Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a copy of m. Values are immutable, so the copy is deep.
func (m *Map) Clone() *Map {
	clone := &Map{
		keys:   make([]string, 0, m.Len()),
		values: make(map[string]Value, m.Len()),
	}
	m.Range(func(k string, v Value) bool {
		clone.keys = append(clone.keys, k)
		clone.values[k] = v
		return true
	})
	return clone
}

// Equal reports whether both maps hold equal values under the same keys,
// in any order
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(k string, v Value) bool {
		ov, ok := other.Get(k)
		equal = ok && v.Equal(ov)
		return equal
	})
	return equal
}

// Interface converts the map to map[string]any
func (m *Map) Interface() map[string]any {
	out := make(map[string]any, m.Len())
	m.Range(func(k string, v Value) bool {
		out[k] = v.Interface()
		return true
	})
	return out
}

// JSON returns the map as a JSON object with keys in insertion order
func (m *Map) JSON() string {
	return stringify(Value{kind: KindMap, m: m})
}

// Params is the ordered mapping of parameter names to decoded values
type Params struct {
	Map
}

// NewParams returns empty Params
func NewParams() *Params {
	return &Params{Map: Map{values: make(map[string]Value)}}
}

// ParamsFromMap builds Params from plain Go data. Keys are added in
// sorted order; values are converted with FromAny.
func ParamsFromMap(m map[string]any) *Params {
	p := NewParams()
	for _, k := range mapx.Keys(m) {
		p.Set(k, FromAny(m[k]))
	}
	return p
}

// Set stores val under key, keeping the position of an existing key
func (p *Params) Set(key string, val Value) *Params {
	p.Map.Set(key, val)
	return p
}

// Equal reports whether both Params hold equal values under the same names
func (p *Params) Equal(other *Params) bool {
	if p == nil || other == nil {
		return p.Len() == other.Len()
	}
	return p.Map.Equal(&other.Map)
}

// Len returns the number of parameters; nil Params are empty
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return p.Map.Len()
}
