// File: round_test.go
// Title: Number Rounding Tests
// Description: Rounding of fractional numbers in scalars, lists and maps.
// Author: hrimthurs
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package urlx

import (
	"testing"
)

func TestValueRound(t *testing.T) {
	tests := []struct {
		name      string
		in        Value
		precision int
		want      string
	}{
		{"fraction", num("3.14159"), 2, "3.14"},
		{"half away from zero", num("-0.125"), 2, "-0.13"},
		{"integer literal kept", num("12345678901234567890"), 0, "12345678901234567890"},
		{"exponent", num("1.25e1"), 0, "13"},
		{"string untouched", String("3.14159"), 2, `"3.14159"`},
		{"list", List(num("1.25"), String("x"), num("2")), 1, `[1.3,"x",2]`},
		{"map", obj("w", num("0.333"), "h", Bool(true)), 2, `{"w":0.33,"h":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Round(tt.precision).JSON(); got != tt.want {
				t.Errorf("Round(%d) = %s, want %s", tt.precision, got, tt.want)
			}
		})
	}
}

func TestParamsRound(t *testing.T) {
	p := NewParams().Set("b", num("2.555")).Set("a", List(num("0.05")))
	got := p.Round(1)

	if got.JSON() != `{"b":2.6,"a":[0.1]}` {
		t.Errorf("Round() = %s", got.JSON())
	}
	if p.JSON() != `{"b":2.555,"a":[0.05]}` {
		t.Errorf("Round() modified its receiver: %s", p.JSON())
	}

	var nilParams *Params
	if nilParams.Round(2) != nil {
		t.Error("Round() of nil Params should be nil")
	}
}
