// Package mathx provides float trimming and byte-size conversions.
//
// Package: mathx
// Title: Numeric Utilities
// Description: Rounds floats to a fixed number of decimals, walks nested
//              values trimming every float they contain, and converts byte
//              counts to kilobytes and megabytes.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: TrimFloats over nested values
//
// Rounding is half away from zero on the scaled value, so 0.125 trimmed to
// two decimals is 0.13.
//
// Usage:
//
//	mathx.BytesToKB(1536, 2)                          // 1.5
//	mathx.TrimFloat(3.14159, 3)                        // 3.142
//	mathx.TrimFloats(map[string]any{"x": 0.3333}, 2)   // map[x:0.33]
package mathx
