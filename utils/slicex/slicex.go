// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers. Results are fresh slices; arguments
//              are never modified. A nil input gives a nil result.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with generic slice utilities
// - 2026-10-14 v0.2.0: AsSlice, Exclude, IsSubset, collated SortStrings

package slicex

import (
	"reflect"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type set[T comparable] map[T]struct{}

func setOf[T comparable](items []T) set[T] {
	s := make(set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s set[T]) has(item T) bool {
	_, ok := s[item]
	return ok
}

// Of collects its arguments into a new slice, never nil
func Of[T any](values ...T) []T {
	return append(make([]T, 0, len(values)), values...)
}

// AsSlice turns v into a slice whatever its type: a slice or array is
// copied element by element, nil becomes an empty slice and anything else
// is wrapped.
func AsSlice(v any) []any {
	rv := reflect.ValueOf(v)
	switch {
	case v == nil:
		return []any{}
	case rv.Kind() == reflect.Slice && rv.IsNil():
		return []any{}
	case rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array:
		return []any{v}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Unique drops repeated elements, keeping the first of each
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}
	seen := make(set[T], len(s))
	return Filter(s, func(item T) bool {
		if seen.has(item) {
			return false
		}
		seen[item] = struct{}{}
		return true
	})
}

// Exclude drops the elements found in skip
func Exclude[T comparable](s []T, skip ...T) []T {
	drop := setOf(skip)
	return Filter(s, func(item T) bool { return !drop.has(item) })
}

// IsSubset reports whether main holds every element of sub. sub may not
// be longer than main; with strict both lengths must match.
func IsSubset[T comparable](sub, main []T, strict bool) bool {
	if len(sub) > len(main) || (strict && len(sub) != len(main)) {
		return false
	}
	in := setOf(main)
	for _, item := range sub {
		if !in.has(item) {
			return false
		}
	}
	return true
}

// SortStrings returns s ordered by the collation of tag; language.Und is
// the root collation
func SortStrings(s []string, tag language.Tag) []string {
	out := slices.Clone(s)
	if out != nil {
		collate.New(tag).SortStrings(out)
	}
	return out
}

// Filter keeps the elements for which keep is true
func Filter[T any](s []T, keep func(T) bool) []T {
	if s == nil || keep == nil {
		return nil
	}
	out := make([]T, 0, len(s))
	for _, item := range s {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Map applies fn to every element
func Map[T, R any](s []T, fn func(T) R) []R {
	if s == nil || fn == nil {
		return nil
	}
	out := make([]R, len(s))
	for i, item := range s {
		out[i] = fn(item)
	}
	return out
}

func Contains[T comparable](s []T, item T) bool { return slices.Contains(s, item) }

func Clone[T any](s []T) []T { return slices.Clone(s) }

func Equal[T comparable](a, b []T) bool { return slices.Equal(a, b) }
