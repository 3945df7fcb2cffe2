// File: round.go
// Title: Number Rounding
// Description: Rounds the fractional numbers inside decoded values.
// Author: hrimthurs
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package urlx

import (
	"strings"

	"github.com/hrimthurs/Tackle/utils/mathx"
)

// Round returns v with every fractional number, nested ones included,
// rounded to precision decimals half away from zero. Integer literals are
// kept verbatim so large ids do not lose digits.
func (v Value) Round(precision int) Value {
	switch v.kind {
	case KindNumber:
		if !strings.ContainsAny(v.s, ".eE") {
			return v
		}
		f, _ := v.AsFloat()
		return Number(mathx.TrimFloat(f, precision))
	case KindList:
		list := make([]Value, len(v.list))
		for i, item := range v.list {
			list[i] = item.Round(precision)
		}
		return Value{kind: KindList, list: list}
	case KindMap:
		return Value{kind: KindMap, m: v.m.round(precision)}
	}
	return v
}

func (m *Map) round(precision int) *Map {
	out := NewMap()
	m.Range(func(key string, item Value) bool {
		out.Set(key, item.Round(precision))
		return true
	})
	return out
}

// Round returns a copy of p with its numbers rounded like Value.Round
func (p *Params) Round(precision int) *Params {
	if p == nil {
		return nil
	}
	return &Params{Map: *p.Map.round(precision)}
}
