// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyroots/complexnum"
)

// ParseComplex parses a complex literal such as "3+4i", "-i" or "2.5".
// The empty string is 1, so "X^2" has an implicit unit coefficient, and a
// bare sign is ±1.
func ParseComplex(s string) (complexnum.Complex, error) {
	if s == "" {
		return complexnum.One, nil
	}
	return parseParts(s, s, true)
}

// parseParts consumes one signed part of s and recurses on the rest.
// lit is the whole literal, kept for error messages. A bare sign is only
// accepted as the whole literal; "3+" is rejected.
func parseParts(s, lit string, whole bool) (complexnum.Complex, error) {
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" && !whole {
		return complexnum.Zero, fmt.Errorf("%w: %q", ErrBadCoefficient, lit)
	}

	val := 1.0
	if !strings.HasPrefix(s, "i") {
		end := strings.IndexAny(s, "+-i")
		if end < 0 {
			end = len(s)
		}
		num := s[:end]
		switch {
		case num != "":
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return complexnum.Zero, fmt.Errorf("%w: %q", ErrBadCoefficient, lit)
			}
			val = v
		case end < len(s):
			// a second sign right after the first one
			return complexnum.Zero, fmt.Errorf("%w: %q", ErrBadCoefficient, lit)
		}
		s = s[end:]
	}

	var part complexnum.Complex
	if strings.HasPrefix(s, "i") {
		s = s[1:]
		part = complexnum.New(0, sign*val)
	} else {
		part = complexnum.FromReal(sign * val)
	}
	if s == "" {
		return part, nil
	}

	rest, err := parseParts(s, lit, false)
	if err != nil {
		return complexnum.Zero, err
	}
	return part.Add(rest), nil
}
