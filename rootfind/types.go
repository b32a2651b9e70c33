// SPDX-License-Identifier: MIT

package rootfind

import (
	"errors"
	"time"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/polynomial"
)

// ErrNilPolynomial is returned when Extract is given a nil polynomial.
var ErrNilPolynomial = errors.New("rootfind: polynomial is nil")

// Evaluator maps a point to the value of a function there.
// *polynomial.Polynomial satisfies it.
type Evaluator interface {
	ValueAt(x complexnum.Complex) complexnum.Complex
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(x complexnum.Complex) complexnum.Complex

// ValueAt calls f(x).
func (f EvaluatorFunc) ValueAt(x complexnum.Complex) complexnum.Complex { return f(x) }

// SearchResult is the outcome of one compass search.
type SearchResult struct {
	// Root is the final search point (not rounded).
	Root complexnum.Complex

	// Evaluations counts calls to the evaluator, the initial one included.
	Evaluations int

	// ExactZero is true when the evaluator returned exactly 0+0i at Root.
	ExactZero bool
}

// RoundEvent describes one completed extraction round.
type RoundEvent struct {
	Round       int                    // 0-based round index
	Root        complexnum.Complex     // root rounded to two decimals
	RawRoot     complexnum.Complex     // root used for deflation
	Evaluations int                    // evaluator calls spent on this root
	ExactZero   bool                   // search hit P(z) == 0 exactly
	Duration    time.Duration          // wall time of the search
	Remaining   *polynomial.Polynomial // deflated, trimmed polynomial (a copy)
}

// Observer receives a RoundEvent after every deflation.
type Observer interface {
	OnRound(ev RoundEvent)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ev RoundEvent)

// OnRound calls f(ev).
func (f ObserverFunc) OnRound(ev RoundEvent) { f(ev) }

// Result holds the outcome of Extract.
type Result struct {
	// Roots are the located roots rounded to two decimals, in discovery order.
	Roots []complexnum.Complex

	// RawRoots are the unrounded roots, index-aligned with Roots.
	RawRoots []complexnum.Complex

	// Steps holds the trimmed polynomial after each deflation.
	Steps []*polynomial.Polynomial

	// Degree is the degree of the trimmed input, i.e. the planned round count.
	Degree int

	// Evaluations is the total number of evaluator calls across all rounds.
	Evaluations int
}
