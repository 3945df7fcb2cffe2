// File: mapx.go
// Title: Core Map Utilities
// Description: Omit, Pick, Keys, Clone and Merge. Inputs are never
//              modified; a nil input gives a nil result.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with map utilities
// - 2026-10-14 v0.2.0: Keys sorted, built on maps and slices iterators

package mapx

import (
	"cmp"
	"maps"
	"slices"
)

// Keys lists the keys of m in ascending order
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m))
}

// Omit copies m without keys
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Pick copies the entries of m whose key is among keys
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Clone is a shallow copy
func Clone[K comparable, V any](m map[K]V) map[K]V { return maps.Clone(m) }

// Merge returns a new map with the entries of every argument; on equal
// keys the later map wins
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}
