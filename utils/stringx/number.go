// File: number.go
// Title: Fixed-Width Number Formatting
// Description: Formats numbers to a fixed total length by padding with
//              zeros: leading zeros for integers, trailing zeros for
//              floats.
// Author: hrimthurs
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"math"
	"strconv"

	"github.com/hrimthurs/Tackle/utils/mathx"
)

// FormatNumber renders n so that the result, sign included, is lenTotal
// characters long. Integers formatted without precision get leading zeros;
// everything else gets trailing zeros. A precision above zero fixes the
// number of decimals first, rounding half away from zero. Results already
// longer than lenTotal are returned unchanged.
func FormatNumber(n float64, lenTotal, precision int) string {
	sign := ""
	if n < 0 {
		sign = "-"
	}
	abs := math.Abs(n)

	var digits string
	if precision > 0 {
		digits = strconv.FormatFloat(mathx.TrimFloat(abs, precision), 'f', precision, 64)
	} else {
		digits = strconv.FormatFloat(abs, 'f', -1, 64)
	}

	width := lenTotal - len(sign)
	if len(digits) >= width {
		return sign + digits
	}

	if precision == 0 && n == math.Trunc(n) {
		return sign + PadLeft(digits, width, '0')
	}
	return sign + PadRight(digits, width, '0')
}
