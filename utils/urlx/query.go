// File: query.go
// Title: Ordered Query Editor
// Description: An ordered view of a raw query string. Unlike url.Values it
//              keeps parameter order, repeated names and presence-only
//              flags, and re-encodes only the pairs it changes.
// Author: hrimthurs
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package urlx

import (
	"net/url"
	"strings"
)

type queryPair struct {
	raw      string // original text, written back untouched
	name     string
	value    string
	hasValue bool // false for presence-only flags such as ?debug
}

// Query is an ordered, editable query string. The zero value is empty.
type Query struct {
	pairs []queryPair
}

// ParseQuery splits a raw query on '&' and form-decodes every name and
// value. Invalid escapes are kept as written.
func ParseQuery(rawQuery string) *Query {
	q := &Query{}
	if rawQuery == "" {
		return q
	}

	for _, raw := range strings.Split(rawQuery, "&") {
		if raw == "" {
			continue
		}
		name, value, hasValue := strings.Cut(raw, "=")
		q.pairs = append(q.pairs, queryPair{
			raw:      raw,
			name:     unescapeForm(name),
			value:    unescapeForm(value),
			hasValue: hasValue,
		})
	}
	return q
}

func unescapeForm(s string) string {
	if out, err := url.QueryUnescape(s); err == nil {
		return out
	}
	return strings.ReplaceAll(s, "+", " ")
}

// Len returns the number of pairs, repeated names included
func (q *Query) Len() int {
	return len(q.pairs)
}

// Keys returns every distinct name in order of first appearance
func (q *Query) Keys() []string {
	seen := make(map[string]struct{}, len(q.pairs))
	keys := make([]string, 0, len(q.pairs))
	for _, p := range q.pairs {
		if _, ok := seen[p.name]; ok {
			continue
		}
		seen[p.name] = struct{}{}
		keys = append(keys, p.name)
	}
	return keys
}

// Get returns the value of the first pair named name. hasValue is false
// for a presence-only flag; ok is false when the name is absent.
func (q *Query) Get(name string) (value string, hasValue, ok bool) {
	for _, p := range q.pairs {
		if p.name == name {
			return p.value, p.hasValue, true
		}
	}
	return "", false, false
}

// Has reports whether a pair named name exists
func (q *Query) Has(name string) bool {
	_, _, ok := q.Get(name)
	return ok
}

// Set replaces the first pair named name and removes the others, or
// appends a new pair when the name is absent
func (q *Query) Set(name, value string) {
	pair := queryPair{
		raw:      url.QueryEscape(name) + "=" + url.QueryEscape(value),
		name:     name,
		value:    value,
		hasValue: true,
	}

	out := q.pairs[:0]
	replaced := false
	for _, p := range q.pairs {
		if p.name != name {
			out = append(out, p)
			continue
		}
		if !replaced {
			out = append(out, pair)
			replaced = true
		}
	}
	if !replaced {
		out = append(out, pair)
	}
	q.pairs = out
}

// Del removes every pair named name
func (q *Query) Del(name string) {
	out := q.pairs[:0]
	for _, p := range q.pairs {
		if p.name != name {
			out = append(out, p)
		}
	}
	q.pairs = out
}

// Encode joins the pairs with '&'. Untouched pairs keep their original
// text; pairs written by Set are form-encoded.
func (q *Query) Encode() string {
	parts := make([]string, len(q.pairs))
	for i, p := range q.pairs {
		parts[i] = p.raw
	}
	return strings.Join(parts, "&")
}
