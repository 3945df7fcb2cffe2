// File: slicex_test.go
// Title: Slice Utility Tests
// Description: Tests for the generic slice helpers and collated sorting.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: AsSlice, Exclude, IsSubset, SortStrings

package slicex

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestAsSlice(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected []any
	}{
		{"nil", nil, []any{}},
		{"nil slice", []int(nil), []any{}},
		{"scalar", "x", []any{"x"}},
		{"int slice", []int{1, 2}, []any{1, 2}},
		{"array", [2]string{"a", "b"}, []any{"a", "b"}},
		{"map is a scalar", map[string]int{"a": 1}, []any{map[string]int{"a": 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsSlice(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("AsSlice(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAsSliceCopies(t *testing.T) {
	src := []any{1, 2}
	got := AsSlice(src)
	got[0] = 9
	if src[0] != 1 {
		t.Error("AsSlice() must copy its input")
	}
}

func TestOf(t *testing.T) {
	if got := Of[int](); got == nil || len(got) != 0 {
		t.Errorf("Of() = %#v, want empty non-nil", got)
	}
	if got := Of("a", "b"); !Equal(got, []string{"a", "b"}) {
		t.Errorf("Of() = %v", got)
	}
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{"first occurrence order", []int{3, 1, 3, 2, 1}, []int{3, 1, 2}},
		{"already unique", []int{1, 2}, []int{1, 2}},
		{"empty", []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unique(tt.input); !Equal(got, tt.expected) {
				t.Errorf("Unique() = %v, want %v", got, tt.expected)
			}
		})
	}

	if Unique[int](nil) != nil {
		t.Error("Unique(nil) should be nil")
	}
}

func TestExclude(t *testing.T) {
	got := Exclude([]string{"a", "b", "c", "b"}, "b", "z")
	if !Equal(got, []string{"a", "c"}) {
		t.Errorf("Exclude() = %v", got)
	}
	if got := Exclude([]int{1, 2}); !Equal(got, []int{1, 2}) {
		t.Errorf("Exclude() without skip = %v", got)
	}
}

func TestIsSubset(t *testing.T) {
	tests := []struct {
		name   string
		sub    []int
		main   []int
		strict bool
		want   bool
	}{
		{"subset", []int{1, 3}, []int{1, 2, 3}, false, true},
		{"missing element", []int{1, 4}, []int{1, 2, 3}, false, false},
		{"longer sub", []int{1, 1, 1, 1}, []int{1, 2, 3}, false, false},
		{"strict same length", []int{3, 2, 1}, []int{1, 2, 3}, true, true},
		{"strict shorter", []int{1, 2}, []int{1, 2, 3}, true, false},
		{"empty sub", nil, []int{1}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubset(tt.sub, tt.main, tt.strict); got != tt.want {
				t.Errorf("IsSubset(%v, %v, %v) = %v, want %v", tt.sub, tt.main, tt.strict, got, tt.want)
			}
		})
	}
}

func TestSortStrings(t *testing.T) {
	input := []string{"banana", "Apple", "cherry", "apple"}
	got := SortStrings(input, language.English)

	want := []string{"apple", "Apple", "banana", "cherry"}
	if !Equal(got, want) {
		t.Errorf("SortStrings() = %v, want %v", got, want)
	}
	if input[0] != "banana" {
		t.Error("SortStrings() modified its input")
	}
}

func TestSortStringsLocale(t *testing.T) {
	// Swedish sorts ö after z, German treats it like o
	input := []string{"öl", "zebra", "ost"}

	if got := SortStrings(input, language.Swedish); !Equal(got, []string{"ost", "zebra", "öl"}) {
		t.Errorf("SortStrings(sv) = %v", got)
	}
	if got := SortStrings(input, language.German); !Equal(got, []string{"öl", "ost", "zebra"}) {
		t.Errorf("SortStrings(de) = %v", got)
	}
}

func TestFilterMapContains(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
	if !Equal(even, []int{2, 4}) {
		t.Errorf("Filter() = %v", even)
	}

	doubled := Map([]int{1, 2}, func(x int) int { return x * 2 })
	if !Equal(doubled, []int{2, 4}) {
		t.Errorf("Map() = %v", doubled)
	}

	if !Contains([]string{"a", "b"}, "b") || Contains([]string{"a"}, "z") {
		t.Error("Contains() mismatch")
	}

	if Filter[int](nil, nil) != nil || Map[int, int](nil, nil) != nil || Clone[int](nil) != nil {
		t.Error("nil input should give nil output")
	}
}

func BenchmarkUnique(b *testing.B) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = i % 100
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Unique(data)
	}
}

func BenchmarkSortStrings(b *testing.B) {
	data := []string{"delta", "Alpha", "charlie", "bravo", "echo", "alpha"}
	for i := 0; i < b.N; i++ {
		_ = SortStrings(data, language.English)
	}
}
