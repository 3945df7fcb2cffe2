// File: mathx.go
// Title: Float Trimming and Byte Conversions
// Description: TrimFloat rounds one value; TrimFloats rebuilds slices and
//              maps with every float trimmed; TrimFloatsJSON returns the
//              trimmed value as JSON text.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Nested trimming, JSON output

package mathx

import (
	"encoding/json"
	"math"

	tkerrors "github.com/hrimthurs/Tackle/core/errors"
)

const (
	bytesPerKB = 1024
	bytesPerMB = 1024 * 1024

	// MaxPrecision is the largest number of decimals TrimFloat applies;
	// float64 carries no more significant digits than this
	MaxPrecision = 15
)

// BytesToKB converts a byte count to kilobytes rounded to precision decimals
func BytesToKB(n int64, precision int) float64 {
	return TrimFloat(float64(n)/bytesPerKB, precision)
}

// BytesToMB converts a byte count to megabytes rounded to precision decimals
func BytesToMB(n int64, precision int) float64 {
	return TrimFloat(float64(n)/bytesPerMB, precision)
}

// TrimFloat rounds f to precision decimals, half away from zero.
// Negative precision counts as zero, NaN and infinities are returned as is.
func TrimFloat(f float64, precision int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		return f
	}

	scale := math.Pow10(precision)
	scaled := f * scale
	if math.IsInf(scaled, 0) {
		return f
	}
	return math.Round(scaled) / scale
}

// TrimFloats returns a copy of v with every float trimmed to precision.
// Slices and maps are walked recursively; other values pass through.
func TrimFloats(v any, precision int) any {
	switch val := v.(type) {
	case float64:
		return TrimFloat(val, precision)
	case float32:
		return TrimFloat(float64(val), precision)
	case []float64:
		out := make([]float64, len(val))
		for i, f := range val {
			out[i] = TrimFloat(f, precision)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = TrimFloats(item, precision)
		}
		return out
	case map[string]float64:
		out := make(map[string]float64, len(val))
		for k, f := range val {
			out[k] = TrimFloat(f, precision)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = TrimFloats(item, precision)
		}
		return out
	default:
		return v
	}
}

// TrimFloatsJSON trims v like TrimFloats and encodes the result as JSON
func TrimFloatsJSON(v any, precision int) (string, error) {
	data, err := json.Marshal(TrimFloats(v, precision))
	if err != nil {
		return "", tkerrors.OperationFailed(tkerrors.ModuleMathx, "trim_floats_json", err)
	}
	return string(data), nil
}
