// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/polyroots/complexnum"

// Deflate divides the polynomial by (X − r) in place using synthetic
// division, discards the remainder and shortens the polynomial by exactly
// one coefficient. An empty polynomial is left unchanged.
//
// Algorithm:
//  1. running = 0.
//  2. For i = Len−1 down to 1: running = running·r + c[i]; q[i−1] = running.
//  3. Drop c[Len−1] and store q[0..Len−2].
//
// For a finite r the leading coefficient is carried over unchanged
// (q[Len−2] = c[Len−1]).
// Because r is usually approximate, repeated deflation compounds rounding
// error into every later root search; nothing here compensates for it.
//
// Complexity: O(Len).
func (p *Polynomial) Deflate(r complexnum.Complex) {
	n := len(p.coeffs)
	if n == 0 {
		return
	}

	running := complexnum.Zero
	next := p.coeffs[n-1]
	for i := n - 1; i >= 1; i-- {
		running = running.Mul(r).Add(next)
		next = p.coeffs[i-1]
		p.coeffs[i-1] = running
	}
	p.coeffs[n-1] = complexnum.Zero
	p.coeffs = p.coeffs[:n-1]
}
