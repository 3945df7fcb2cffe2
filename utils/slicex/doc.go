// Package slicex implements generic slice helpers for Tackle.
//
// Package: slicex
// Title: Slice Utilities
// Description: Normalising values to slices, de-duplication, exclusion,
//              subset checks and locale-aware string sorting backed by
//              golang.org/x/text/collate.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Collation-based SortStrings, IsSubset
//
// No function modifies its input; results are always new slices.
//
// Usage:
//
//	slicex.AsSlice("x")                         // []any{"x"}
//	slicex.Unique([]int{3, 1, 3, 2})            // [3 1 2]
//	slicex.Exclude([]string{"a", "b", "c"}, "b") // [a c]
//	slicex.SortStrings([]string{"b", "A", "a"}, language.English)
package slicex
