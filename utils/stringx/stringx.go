// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks, truncation and padding. Lengths count runes.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation with core utilities
// - 2026-10-14 v0.2.0: Trimmed to the helpers the codec and CLI use

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s holds nothing but white space
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

func IsNotBlank(s string) bool { return !IsBlank(s) }

// FirstNonBlank returns the first value that is not blank, or ""
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate cuts s to at most maxLen runes. A cut string ends in ellipsis
// unless the ellipsis alone would not fit.
func Truncate(s string, maxLen int, ellipsis string) string {
	switch {
	case maxLen <= 0:
		return ""
	case utf8.RuneCountInString(s) <= maxLen:
		return s
	}

	keep := maxLen - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		keep, ellipsis = maxLen, ""
	}
	return prefix(s, keep) + ellipsis
}

// prefix returns the first n runes of s
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// PadLeft prepends pad until s is width runes long
func PadLeft(s string, width int, pad rune) string {
	return padding(s, width, pad) + s
}

// PadRight appends pad until s is width runes long
func PadRight(s string, width int, pad rune) string {
	return s + padding(s, width, pad)
}

func padding(s string, width int, pad rune) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return strings.Repeat(string(pad), n)
	}
	return ""
}
