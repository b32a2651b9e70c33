// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"

	"github.com/katalvlaran/polyroots/complexnum"
)

// Sentinel errors for indexed access.
var (
	// ErrOutOfRange indicates that a coefficient index is outside [0, Len).
	ErrOutOfRange = errors.New("polynomial: index out of range")

	// ErrNegativePower indicates that a term was requested at a negative power.
	ErrNegativePower = errors.New("polynomial: negative power")
)

// Polynomial is an ordered, owned sequence of complex coefficients indexed
// by power. The zero value is the zero polynomial and is ready to use.
type Polynomial struct {
	coeffs []complexnum.Complex
}

// New returns a polynomial holding a copy of coeffs (ascending powers).
// Trailing zeros are kept; call TrimZeros to normalize.
func New(coeffs ...complexnum.Complex) *Polynomial {
	p := &Polynomial{}
	if len(coeffs) > 0 {
		p.coeffs = make([]complexnum.Complex, len(coeffs))
		copy(p.coeffs, coeffs)
	}
	return p
}

// FromReals is a convenience constructor for real coefficients.
func FromReals(coeffs ...float64) *Polynomial {
	p := &Polynomial{coeffs: make([]complexnum.Complex, len(coeffs))}
	for i, c := range coeffs {
		p.coeffs[i] = complexnum.FromReal(c)
	}
	return p
}
