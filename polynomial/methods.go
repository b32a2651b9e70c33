// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"

	"github.com/katalvlaran/polyroots/complexnum"
)

// Len returns the number of stored coefficients, trailing zeros included.
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Degree returns max(Len, 1) − 1.
// An empty polynomial reports 0 by convention; untrimmed trailing zeros count.
func (p *Polynomial) Degree() int {
	return max(len(p.coeffs), 1) - 1
}

// IsZero reports whether every stored coefficient is exactly zero
// (an empty polynomial is zero).
func (p *Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Coefficient returns the coefficient of X^k.
func (p *Polynomial) Coefficient(k int) (complexnum.Complex, error) {
	if k < 0 || k >= len(p.coeffs) {
		return complexnum.Zero, ErrOutOfRange
	}
	return p.coeffs[k], nil
}

// SetCoefficient overwrites the coefficient of X^k. It never grows the
// polynomial; use AddZeros first.
func (p *Polynomial) SetCoefficient(k int, c complexnum.Complex) error {
	if k < 0 || k >= len(p.coeffs) {
		return ErrOutOfRange
	}
	p.coeffs[k] = c
	return nil
}

// AddTerm accumulates c into the coefficient of X^power, padding with
// zeros first when the polynomial is too short. A power of math.MaxInt
// has no representable length and yields ErrOutOfRange.
func (p *Polynomial) AddTerm(power int, c complexnum.Complex) error {
	if power < 0 {
		return ErrNegativePower
	}
	if power >= math.MaxInt {
		return ErrOutOfRange
	}
	p.AddZeros(power + 1)
	p.coeffs[power] = p.coeffs[power].Add(c)
	return nil
}

// Coefficients returns a copy of the coefficient slice.
func (p *Polynomial) Coefficients() []complexnum.Complex {
	out := make([]complexnum.Complex, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Clone returns an independent deep copy.
func (p *Polynomial) Clone() *Polynomial {
	return New(p.coeffs...)
}

// AddZeros appends zero coefficients until Len() == newLength.
// It is a no-op when the polynomial is already that long or longer.
func (p *Polynomial) AddZeros(newLength int) {
	for len(p.coeffs) < newLength {
		p.coeffs = append(p.coeffs, complexnum.Zero)
	}
}

// TrimZeros removes trailing zero coefficients. The result may be empty,
// which represents the zero polynomial.
func (p *Polynomial) TrimZeros() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	clear(p.coeffs[n:])
	p.coeffs = p.coeffs[:n]
}
