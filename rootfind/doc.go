// SPDX-License-Identifier: MIT

// Package rootfind approximates every root of a complex polynomial by
// repeated (locate, record, deflate) rounds.
//
// 🚀 Pipeline:
//
//	Extract ─► Locate ─► Polynomial.ValueAt   (≤ 22 500 evaluations per root)
//	   │
//	   └─────► Polynomial.Deflate + TrimZeros  (degree − 1)
//
// Locate is a derivative-free compass (pattern) search on |P(z)|²:
//   - start at 0+0i with step s = 1e20;
//   - 150 outer rounds, each re-seeding the imaginary step from the real
//     step and halving the real step at its end;
//   - 150 inner rounds testing the four diagonal offsets (+,+), (−,+),
//     (+,−), (−,−) in that order, moving to the FIRST one that is strictly
//     closer to zero, then halving the imaginary step;
//   - the inner loop stops early only when P(z) is exactly 0+0i.
//
// The trajectory, iteration bounds and candidate order are part of the
// observable behavior: results are bit-for-bit reproducible for a given
// input. There is no convergence test, no restart and no error bound; a
// search can stall in a local minimum (X^2 + 1 stalls at 0).
//
// Extract fixes the number of rounds to the degree of the trimmed input
// before the first deflation. Roots are reported rounded to two decimals
// while the raw values are used for deflation, so error compounds from
// one round to the next.
//
// ⚙️ Usage:
//
//	p := polynomial.FromReals(-1, 0, 1) // X^2 − 1
//	res, err := rootfind.Extract(p, rootfind.WithLogger(slog.Default()))
//	fmt.Println(rootfind.FormatRoots(res.Roots)) // { 1, -1 }
//
// Concurrency:
//
//	Extract works on a private clone of its input, so independent calls may
//	run in parallel; a single call is strictly sequential.
package rootfind
