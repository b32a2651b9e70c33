// Package polyroots approximates every root of a polynomial with complex
// coefficients.
//
// 🚀 What is polyroots?
//
//	A small, deterministic numerical engine plus a command-line front end:
//		• Complex scalar with exact equality and two-decimal reporting
//		• Polynomial container: pad, trim, Horner evaluation, deflation
//		• Derivative-free compass search for one root at a time
//		• Driver that locates, records and deflates until degree 0
//		• Term notation parser (X^3 - 6x^2 + 11x - 6, (i+3)x^2, -i)
//		• Optional Prometheus counters and a SQLite run journal
//
// ✨ Guarantees:
//
//   - Same input ⇒ same roots, bit for bit (fixed iteration bounds, no randomness)
//   - No panics on pathological input; NaN/Inf propagate silently
//   - Pure Go – the SQLite journal uses a cgo-free driver
//
// Layout:
//
//	complexnum/    — Complex value type and rendering
//	polynomial/    — coefficient container, ValueAt, Deflate, rendering
//	rootfind/      — compass-search locator and root-extraction driver
//	notation/      — complex literal and term parser
//	metrics/       — Prometheus collector fed by driver round events
//	history/       — SQLite journal of runs
//	internal/cli/  — flags, report rendering, exit codes
//	cmd/polyroots/ — the binary
//
// Quick example:
//
//	p := polynomial.FromReals(-1, 0, 1) // X^2 − 1
//	res, _ := rootfind.Extract(p)
//	fmt.Println(rootfind.FormatRoots(res.Roots)) // { 1, -1 }
//
// Not a production root finder: there is no error bound, no convergence
// test and no polishing step; naive sequential deflation compounds error.
//
//	go install github.com/katalvlaran/polyroots/cmd/polyroots@latest
package polyroots
