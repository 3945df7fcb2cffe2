// File: mapx_test.go
// Title: Map Utility Tests
// Description: Tests for Omit, Pick, Keys, Clone and Merge.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Sorted Keys

package mapx

import (
	"fmt"
	"reflect"
	"testing"
)

func TestKeys(t *testing.T) {
	got := Keys(map[string]int{"c": 3, "a": 1, "b": 2})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if Keys[string, int](nil) != nil {
		t.Error("Keys(nil) should be nil")
	}
}

func TestOmit(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]int
		keys     []string
		expected map[string]int
	}{
		{"omit one", map[string]int{"a": 1, "b": 2}, []string{"a"}, map[string]int{"b": 2}},
		{"omit missing", map[string]int{"a": 1}, []string{"z"}, map[string]int{"a": 1}},
		{"omit all", map[string]int{"a": 1}, []string{"a"}, map[string]int{}},
		{"no keys", map[string]int{"a": 1}, nil, map[string]int{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Omit(tt.input, tt.keys...); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Omit() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOmitLeavesInput(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2}
	_ = Omit(src, "a")
	if len(src) != 2 {
		t.Error("Omit() modified its input")
	}
}

func TestPick(t *testing.T) {
	got := Pick(map[string]int{"a": 1, "b": 2, "c": 3}, "a", "c", "z")
	if !reflect.DeepEqual(got, map[string]int{"a": 1, "c": 3}) {
		t.Errorf("Pick() = %v", got)
	}
}

func TestCloneAndMerge(t *testing.T) {
	src := map[string]int{"a": 1}
	clone := Clone(src)
	clone["a"] = 9
	if src["a"] != 1 {
		t.Error("Clone() shares storage with its input")
	}

	merged := Merge(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3}, nil)
	if !reflect.DeepEqual(merged, map[string]int{"a": 1, "b": 3}) {
		t.Errorf("Merge() = %v", merged)
	}
}

func ExampleOmit() {
	params := map[string]any{"token": "secret", "page": 2}
	fmt.Println(Omit(params, "token"))
	// Output: map[page:2]
}
