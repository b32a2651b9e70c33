// SPDX-License-Identifier: MIT

// Package complexnum provides the double-precision complex scalar used by
// the polyroots engine.
//
// 🚀 What is it?
//
//	A tiny value type (Re, Im float64) with the arithmetic the root finder
//	needs: Add, Sub, Mul, Div, Neg, conversion from a real scalar and the
//	"two decimals" rounding used when reporting roots.
//
// ✨ Properties:
//   - Immutable by convention: every operation returns a new value.
//   - Equality is exact component-wise IEEE-754 equality (no epsilon).
//   - No ordering is defined on the type. Only the squared magnitude is
//     exposed; "closer to zero" comparisons live next to the locator.
//   - Products and squared magnitudes round every partial product to
//     float64, so results are bit-identical on platforms that would
//     otherwise fuse multiply-add.
//   - Non-finite values (NaN/±Inf) are never rejected; they propagate.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyroots/complexnum"
//
//	z := complexnum.New(3, 4)
//	w := z.Mul(complexnum.FromReal(2)) // 6+8i
//	fmt.Println(w, z.Round2())
package complexnum
