// SPDX-License-Identifier: MIT

package polynomial

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/polyroots/complexnum"
)

// String renders the polynomial from the highest power down, e.g.
// "X^2 - 3X + 2" or "2+1iX - i". Each coefficient is rounded to two
// decimals first and terms that round to zero are skipped. Coefficients
// ±1 are elided in front of X. The zero polynomial renders as "0".
func (p *Polynomial) String() string {
	var sb strings.Builder
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		c := p.coeffs[k].Round2()
		if c.IsZero() {
			continue
		}
		first := sb.Len() == 0
		switch {
		case c.Equal(complexnum.One):
			if !first {
				sb.WriteString(" + ")
			}
			sb.WriteString(unitTerm(k))
		case c.Equal(complexnum.FromReal(-1)):
			if first {
				sb.WriteString("-")
			} else {
				sb.WriteString(" - ")
			}
			sb.WriteString(unitTerm(k))
		case first:
			sb.WriteString(c.String() + power(k))
		case c.Re < 0 || c.Re == 0 && c.Im <= 0:
			sb.WriteString(" - " + c.Neg().String() + power(k))
		default:
			sb.WriteString(" + " + c.String() + power(k))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// unitTerm renders X^k with an implicit coefficient of one.
func unitTerm(k int) string {
	if k == 0 {
		return "1"
	}
	return power(k)
}

// power renders the X^k suffix: "" for k = 0, "X" for k = 1.
func power(k int) string {
	switch k {
	case 0:
		return ""
	case 1:
		return "X"
	}
	return "X^" + strconv.Itoa(k)
}
