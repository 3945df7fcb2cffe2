// Package stringx provides string helpers used across Tackle.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, Unicode-aware truncation and padding, and
//              fixed-width number formatting.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: FormatNumber
//
// Usage:
//
//	stringx.FormatNumber(7, 3, 0)     // "007"
//	stringx.FormatNumber(-1.5, 6, 0)  // "-1.500"
//	stringx.FormatNumber(3.14159, 0, 2) // "3.14"
package stringx
