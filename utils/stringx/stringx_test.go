// File: stringx_test.go
// Title: Unit Tests for String Utilities
// Description: Table-driven tests for blank checks, truncation, padding
//              and FormatNumber.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: FormatNumber cases

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "flag", "other"); got != "flag" {
		t.Errorf("FirstNonBlank() = %q", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"cut with ellipsis", "hello world", 8, "...", "hello..."},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"zero length", "hello", 0, "...", ""},
		{"unicode", "こんにちは世界", 4, "…", "こんに…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q", tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := PadLeft("7", 3, '0'); got != "007" {
		t.Errorf("PadLeft() = %q", got)
	}
	if got := PadRight("ü", 3, '.'); got != "ü.." {
		t.Errorf("PadRight() = %q", got)
	}
	if got := PadLeft("long", 2, '0'); got != "long" {
		t.Errorf("PadLeft() = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		n         float64
		lenTotal  int
		precision int
		expected  string
	}{
		{"integer leading zeros", 7, 3, 0, "007"},
		{"negative integer", -42, 5, 0, "-0042"},
		{"float trailing zeros", 1.5, 5, 0, "1.500"},
		{"negative float", -1.5, 6, 0, "-1.500"},
		{"precision rounds", 3.14159, 0, 2, "3.14"},
		{"precision half away from zero", 0.125, 0, 2, "0.13"},
		{"integer with precision", 5, 6, 2, "5.0000"},
		{"already longer", 123456, 3, 0, "123456"},
		{"exact length", 123, 3, 0, "123"},
		{"zero", 0, 2, 0, "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.n, tt.lenTotal, tt.precision); got != tt.expected {
				t.Errorf("FormatNumber(%v, %d, %d) = %q; want %q", tt.n, tt.lenTotal, tt.precision, got, tt.expected)
			}
		})
	}
}

func BenchmarkFormatNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FormatNumber(-3.5, 8, 2)
	}
}
