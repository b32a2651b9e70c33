// SPDX-License-Identifier: MIT

package rootfind

import "github.com/katalvlaran/polyroots/complexnum"

// Search parameters. Changing any of them changes every reported root.
const (
	// InitialStep is the first real (and imaginary) step size.
	InitialStep = 1e20

	// OuterIterations bounds the real-step halvings.
	OuterIterations = 150

	// InnerIterations bounds the imaginary-step halvings per outer round.
	InnerIterations = 150
)

// Locate returns a point where |e(z)| is small. See Search.
func Locate(e Evaluator) complexnum.Complex {
	return Search(e).Root
}

// Search runs the compass search and reports the final point together
// with the number of evaluations it spent.
//
// Algorithm:
//  1. z = 0, sRe = InitialStep, v = e(z).
//  2. Repeat OuterIterations times:
//     a. sIm = sRe.
//     b. Repeat up to InnerIterations times:
//     - for d in [(sRe,sIm), (−sRe,sIm), (sRe,−sIm), (−sRe,−sIm)]:
//     if e(z+d) is closer to zero than v, move z to z+d and stop testing;
//     - if v == 0+0i exactly, leave the inner loop;
//     - sIm /= 2.
//     c. sRe /= 2.
//
// Values compared against NaN are never closer, so a NaN at z freezes the
// search in place. Evaluations are bounded by
// 1 + 4·OuterIterations·InnerIterations.
func Search(e Evaluator) SearchResult {
	var res SearchResult
	z := complexnum.Zero
	v := e.ValueAt(z)
	res.Evaluations = 1

	stepRe := InitialStep
	for outer := 0; outer < OuterIterations; outer++ {
		stepIm := stepRe
		for inner := 0; inner < InnerIterations; inner++ {
			candidates := [4]complexnum.Complex{
				{Re: stepRe, Im: stepIm},
				{Re: -stepRe, Im: stepIm},
				{Re: stepRe, Im: -stepIm},
				{Re: -stepRe, Im: -stepIm},
			}
			for _, d := range candidates {
				next := z.Add(d)
				nv := e.ValueAt(next)
				res.Evaluations++
				if closerToZero(nv, v) {
					z, v = next, nv
					break
				}
			}
			if v.IsZero() {
				res.ExactZero = true
				break
			}
			stepIm /= 2
		}
		stepRe /= 2
	}

	res.Root = z
	return res
}

// closerToZero reports |a|² < |b|². It is the only ordering the locator
// uses and is not a mathematical order on complex numbers.
func closerToZero(a, b complexnum.Complex) bool {
	return a.AbsSq() < b.AbsSq()
}
