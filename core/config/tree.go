// File: tree.go
// Title: Nested Value Tree
// Description: Dotted-path access to the nested maps decoded from a file.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Split out of config.go

package config

import "strings"

type tree map[string]interface{}

func splitKey(key string) []string { return strings.Split(key, ".") }

// get returns the value at path, or nil when any step is missing
func (t tree) get(path []string) interface{} {
	node := map[string]interface{}(t)
	last := len(path) - 1
	for _, k := range path[:last] {
		child, ok := node[k].(map[string]interface{})
		if !ok {
			return nil
		}
		node = child
	}
	return node[path[last]]
}

// put stores value at path, replacing non-table nodes on the way
func (t tree) put(path []string, value interface{}) {
	node := map[string]interface{}(t)
	last := len(path) - 1
	for _, k := range path[:last] {
		child, ok := node[k].(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			node[k] = child
		}
		node = child
	}
	node[path[last]] = value
}

// fill stores every default whose key is absent. "log.level" and a
// nested {"log": {"level": ...}} land in the same place.
func (t tree) fill(defaults map[string]interface{}) {
	for k, v := range defaults {
		if nested, ok := v.(map[string]interface{}); ok {
			for nk, nv := range nested {
				t.fill(map[string]interface{}{k + "." + nk: nv})
			}
			continue
		}
		path := splitKey(k)
		if t.get(path) == nil {
			t.put(path, v)
		}
	}
}

func (t tree) clone() map[string]interface{} {
	out := make(map[string]interface{}, len(t))
	for k, v := range t {
		switch v := v.(type) {
		case map[string]interface{}:
			out[k] = tree(v).clone()
		case []interface{}:
			out[k] = append([]interface{}(nil), v...)
		default:
			out[k] = v
		}
	}
	return out
}
