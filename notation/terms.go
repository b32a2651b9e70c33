// SPDX-License-Identifier: MIT

package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/polynomial"
)

// MaxPower is the largest exponent accepted on an X term.
const MaxPower = 1 << 16

// ParseTerms assembles a polynomial from command-line tokens.
//
// Rules:
//   - "-" and "+" set the sign for all following terms.
//   - "<c>X", "<c>X^k" (x or X): coefficient is the text before the first
//     x, power the text after the last x. A tail without '^' must be empty.
//   - "(<c>)X^k" unwraps the parenthesized coefficient.
//   - any other token is a constant term.
//
// The returned polynomial is trimmed.
func ParseTerms(tokens []string) (*polynomial.Polynomial, error) {
	p := &polynomial.Polynomial{}
	sign := complexnum.One
	for _, tok := range tokens {
		switch tok {
		case "-":
			sign = complexnum.FromReal(-1)
			continue
		case "+":
			sign = complexnum.One
			continue
		}

		power, coef, err := ParseTerm(tok)
		if err != nil {
			return nil, err
		}
		if err := p.AddTerm(power, sign.Mul(coef)); err != nil {
			return nil, fmt.Errorf("notation: term %q: %w", tok, err)
		}
	}
	p.TrimZeros()
	return p, nil
}

// ParseTerm parses a single token into its power and coefficient.
func ParseTerm(tok string) (int, complexnum.Complex, error) {
	first := strings.IndexAny(tok, "xX")
	if first < 0 {
		c, err := ParseComplex(tok)
		return 0, c, err
	}

	coefText := tok[:first]
	tail := tok[strings.LastIndexAny(tok, "xX")+1:]

	power := 1
	if i := strings.LastIndex(tail, "^"); i >= 0 {
		v, err := strconv.Atoi(tail[i+1:])
		if err != nil || v < 0 {
			return 0, complexnum.Zero, fmt.Errorf("%w at %s", ErrInvalidPower, tok)
		}
		if v > MaxPower {
			return 0, complexnum.Zero, fmt.Errorf("%w at %s: exceeds %d", ErrInvalidPower, tok, MaxPower)
		}
		power = v
	} else if tail != "" {
		return 0, complexnum.Zero, fmt.Errorf("%w at %s; use ax^k to signify a power", ErrInvalidPower, tok)
	}

	if strings.HasPrefix(coefText, "(") {
		inner, ok := strings.CutSuffix(coefText[1:], ")")
		if !ok {
			return 0, complexnum.Zero, fmt.Errorf("%w: unbalanced parenthesis in %q", ErrBadCoefficient, tok)
		}
		coefText = inner
	}

	c, err := ParseComplex(coefText)
	if err != nil {
		return 0, complexnum.Zero, err
	}
	return power, c, nil
}
