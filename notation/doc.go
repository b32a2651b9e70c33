// SPDX-License-Identifier: MIT

// Package notation parses the command-line polynomial notation.
//
// Complex literals:
//
//	""      → 1 (omitted coefficient)
//	3, -2.5 → real
//	i, -i   → unit imaginary
//	4i      → imaginary
//	3+4i    → sum of parts, evaluated left to right
//
// Terms are whitespace-separated tokens. A lone "-" or "+" sets the sign of
// every following term until the next sign token:
//
//	X^5 + 4X^4 + 3iX^3 - 2+3ix^2 + (i+3)x^2 - x + 1
//
// A token containing x or X is "<coefficient>X[^power]"; anything else is
// a constant. Terms of equal power accumulate, and the result is trimmed.
package notation
