// SPDX-License-Identifier: MIT

// Package polynomial implements a univariate polynomial with complex
// coefficients stored in ascending-power order, together with the two
// numeric kernels the root finder relies on: evaluation (Horner's rule,
// applied bottom-up) and deflation (synthetic division by X − r).
//
// 🚀 Representation:
//
//	index k of the coefficient slice holds the coefficient of X^k.
//	[-1, 0, 1]  ⇔  X^2 − 1
//
// ✨ Structural operations:
//   - AddZeros(n)  — pad with zero coefficients up to length n (never truncates)
//   - TrimZeros()  — drop trailing zero coefficients; empty ⇒ zero polynomial
//   - Degree()     — max(Len, 1) − 1; the zero polynomial has degree 0
//   - ValueAt(x)   — Σ c[k]·x^k accumulated from k = 0 upwards
//   - Deflate(r)   — divide by (X − r) in place, drop the remainder, Len−1
//
// The "last coefficient is non-zero" invariant holds only right after
// TrimZeros; Deflate and AddZeros may break it.
//
// Numeric policy:
//
//	Nothing here validates finiteness. NaN/Inf coefficients or points are
//	accepted and propagate through ValueAt and Deflate silently. Only the
//	indexed accessors report errors (ErrOutOfRange, ErrNegativePower).
//
// Concurrency:
//
//	A Polynomial is not safe for concurrent mutation. The root-extraction
//	driver owns its working copy exclusively for one run.
package polynomial
