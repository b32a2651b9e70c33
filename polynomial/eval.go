// SPDX-License-Identifier: MIT

package polynomial

import "github.com/katalvlaran/polyroots/complexnum"

// ValueAt evaluates the polynomial at x.
//
// Algorithm (bottom-up Horner):
//  1. sum = 0, factor = 1.
//  2. For k = 0..Len−1: sum += factor·c[k]; factor *= x.
//
// The accumulation order is fixed: floating-point addition is not
// associative and the root locator's trajectory depends on the exact bits.
// An empty polynomial evaluates to 0 everywhere.
//
// Complexity: O(Len) complex multiplications.
func (p *Polynomial) ValueAt(x complexnum.Complex) complexnum.Complex {
	factor := complexnum.One
	sum := complexnum.Zero
	for _, c := range p.coeffs {
		sum = sum.Add(factor.Mul(c))
		factor = factor.Mul(x)
	}
	return sum
}
