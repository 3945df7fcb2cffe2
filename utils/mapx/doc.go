// Package mapx provides generic helpers for Go maps.
//
// Package: mapx
// Title: Map Utilities
// Description: Key selection and exclusion, sorted key listing, shallow
//              copies and merging. Inputs are never modified.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Sorted Keys
package mapx
