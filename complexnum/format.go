// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"
	"strconv"
)

// String renders z in the notation accepted on the command line:
//
//	0       both parts zero
//	3.5     imaginary part zero
//	i, -i   unit imaginary
//	2i      purely imaginary
//	1+2i    positive imaginary part
//	1-2i    otherwise
//
// Parts are printed in shortest round-trip form without an exponent;
// infinities print as inf and -inf, NaN as NaN.
func (z Complex) String() string {
	switch {
	case z.Re == 0 && z.Im == 0:
		return "0"
	case z.Im == 0:
		return formatFloat(z.Re)
	case z.Re == 0:
		switch z.Im {
		case 1:
			return "i"
		case -1:
			return "-i"
		}
		return formatFloat(z.Im) + "i"
	case z.Im > 0:
		return formatFloat(z.Re) + "+" + formatFloat(z.Im) + "i"
	default:
		return formatFloat(z.Re) + formatFloat(z.Im) + "i"
	}
}

func formatFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
