// File: encode.go
// Title: URL Parameter Encoder
// Description: Writes Params into the query of a URL in the textual form
//              the decoder reads back.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Ordered query editing, optional component escaping

package urlx

import (
	"net/url"
	"strings"
)

// Encode parses rawURL the way Decode does and writes params into its
// query. A rawURL that does not resolve to an absolute URL is a URL_PARSE
// error.
func Encode(rawURL string, params *Params, percent bool) (*url.URL, error) {
	u, err := parseSource("Encode", rawURL)
	if err != nil {
		return nil, err
	}
	return EncodeURL(u, params, percent), nil
}

// EncodeURL writes params into the query of u and returns u. Each defined
// parameter replaces every existing pair of the same name; other pairs and
// the rest of the URL are left alone. Undefined values are skipped.
//
// With percent set, each value is escaped as a URI component before the
// query itself is form-encoded, so it survives the whole-URL decode that
// Decode applies.
func EncodeURL(u *url.URL, params *Params, percent bool) *url.URL {
	if u == nil || params == nil {
		return u
	}

	q := ParseQuery(u.RawQuery)
	params.Range(func(key string, val Value) bool {
		if val.IsUndefined() {
			return true
		}
		text := encodeValue(val)
		if percent {
			text = escapeComponent(text)
		}
		q.Set(key, text)
		return true
	})
	u.RawQuery = q.Encode()
	return u
}

// encodeValue renders a parameter value. Lists join their elements with
// ','; maps join k:v entries with ','. An empty list or map is written as
// its JSON form so the decoder reads it back unchanged.
func encodeValue(v Value) string {
	switch v.kind {
	case KindList:
		if len(v.list) == 0 {
			return "[]"
		}
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = encodeElement(item)
		}
		return strings.Join(parts, ",")
	case KindMap:
		parts := make([]string, 0, v.m.Len())
		v.m.Range(func(key string, item Value) bool {
			if !item.IsUndefined() {
				parts = append(parts, key+":"+encodeElement(item))
			}
			return true
		})
		if len(parts) == 0 {
			return "{}"
		}
		return strings.Join(parts, ",")
	default:
		return encodeScalar(v)
	}
}

// encodeElement renders a list element or map entry value: strings as
// written, Undefined as an empty string, everything else as JSON
func encodeElement(v Value) string {
	switch v.kind {
	case KindString:
		return v.s
	case KindUndefined:
		return ""
	default:
		return stringify(v)
	}
}

func encodeScalar(v Value) string {
	switch v.kind {
	case KindString, KindNumber:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return "null"
	}
}

// escapeComponent escapes s like encodeURIComponent, writing spaces as
// %20 rather than '+'
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
