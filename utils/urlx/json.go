// File: json.go
// Title: JSON Bridge
// Description: Strict JSON parsing into Values and JSON rendering of
//              Values, both built on fastjson so that object key order
//              survives in both directions.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Strict number literals, control character escapes

package urlx

import (
	"regexp"

	"github.com/valyala/fastjson"

	tkerrors "github.com/hrimthurs/Tackle/core/errors"
)

var (
	// fastjson accepts NaN, Inf and leading zeros; JSON does not
	jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

	// one layer of surrounding quotes, single or double
	quoteWrapped = regexp.MustCompile(`^["'](.*)["']$`)
)

func isJSONNumber(lit string) bool {
	return jsonNumber.MatchString(lit)
}

// stripQuotes removes one layer of surrounding quotes, if any
func stripQuotes(s string) string {
	if m := quoteWrapped.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

// ParseValue reads s the way a decoded token is read: as JSON when it
// parses after stripping one layer of quotes, otherwise as the string s
func ParseValue(s string) Value {
	return tryJSON(s)
}

// ParseJSON parses a strict JSON document. Object keys keep their
// document order.
func ParseJSON(s string) (Value, error) {
	v, ok := parseJSON(s)
	if !ok {
		return Value{}, tkerrors.InvalidFormat(tkerrors.ModuleURLx, s, "JSON document")
	}
	return v, nil
}

// tryJSON parses s as JSON after stripping one layer of quotes. When that
// fails the original text, quotes included, is returned as a string.
func tryJSON(s string) Value {
	if v, ok := parseJSON(stripQuotes(s)); ok {
		return v
	}
	return String(s)
}

// parseJSON parses s strictly as a JSON document
func parseJSON(s string) (Value, bool) {
	if fastjson.Validate(s) != nil {
		return Value{}, false
	}

	var p fastjson.Parser
	doc, err := p.Parse(s)
	if err != nil {
		return Value{}, false
	}
	return fromFastJSON(doc)
}

func fromFastJSON(jv *fastjson.Value) (Value, bool) {
	switch jv.Type() {
	case fastjson.TypeNull:
		return Null(), true
	case fastjson.TypeTrue:
		return Bool(true), true
	case fastjson.TypeFalse:
		return Bool(false), true
	case fastjson.TypeNumber:
		lit := string(jv.MarshalTo(nil))
		if !isJSONNumber(lit) {
			return Value{}, false
		}
		return Value{kind: KindNumber, s: lit}, true
	case fastjson.TypeString:
		return String(string(jv.GetStringBytes())), true
	case fastjson.TypeArray:
		items := jv.GetArray()
		list := make([]Value, 0, len(items))
		for _, item := range items {
			v, ok := fromFastJSON(item)
			if !ok {
				return Value{}, false
			}
			list = append(list, v)
		}
		return Value{kind: KindList, list: list}, true
	case fastjson.TypeObject:
		obj := jv.GetObject()
		m := NewMap()
		ok := true
		// Visit walks keys in document order; a repeated key keeps its
		// first position and takes the last value
		obj.Visit(func(key []byte, item *fastjson.Value) {
			if !ok {
				return
			}
			var v Value
			if v, ok = fromFastJSON(item); ok {
				m.Set(string(key), v)
			}
		})
		if !ok {
			return Value{}, false
		}
		return Value{kind: KindMap, m: m}, true
	}
	return Value{}, false
}

// stringify renders v as compact JSON. Undefined renders as null at the
// top level and inside lists, and is left out of maps.
func stringify(v Value) string {
	var a fastjson.Arena
	return string(fixEscapes(toFastJSON(&a, v).MarshalTo(nil)))
}

func toFastJSON(a *fastjson.Arena, v Value) *fastjson.Value {
	switch v.kind {
	case KindBool:
		if v.b {
			return a.NewTrue()
		}
		return a.NewFalse()
	case KindNumber:
		return a.NewNumberString(v.s)
	case KindString:
		return a.NewString(v.s)
	case KindList:
		arr := a.NewArray()
		for i, item := range v.list {
			arr.SetArrayItem(i, toFastJSON(a, item))
		}
		return arr
	case KindMap:
		obj := a.NewObject()
		v.m.Range(func(k string, item Value) bool {
			if !item.IsUndefined() {
				obj.Set(k, toFastJSON(a, item))
			}
			return true
		})
		return obj
	default:
		return a.NewNull()
	}
}

// fixEscapes rewrites the Go-style escapes \a, \v and \xNN that
// strconv.Quote may leave in marshaled strings into JSON \u00NN escapes.
// Valid JSON output passes through unchanged.
func fixEscapes(b []byte) []byte {
	const hex = "0123456789abcdef"

	needsFix := false
	for i := 0; i+1 < len(b); i++ {
		if b[i] != '\\' {
			continue
		}
		switch b[i+1] {
		case 'a', 'v', 'x':
			needsFix = true
		}
		i++
	}
	if !needsFix {
		return b
	}

	out := make([]byte, 0, len(b)+16)
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch next := b[i+1]; {
		case next == 'a':
			out = append(out, `\u0007`...)
			i++
		case next == 'v':
			out = append(out, `\u000b`...)
			i++
		case next == 'x' && i+3 < len(b):
			out = append(out, '\\', 'u', '0', '0', lower(b[i+2], hex), lower(b[i+3], hex))
			i += 3
		default:
			out = append(out, b[i], next)
			i++
		}
	}
	return out
}

func lower(c byte, hex string) byte {
	if c >= 'A' && c <= 'F' {
		return hex[c-'A'+10]
	}
	return c
}
