// SPDX-License-Identifier: MIT

package rootfind

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/polyroots/polynomial"
)

// Extract approximates all roots of p.
//
// The input is cloned and trimmed; p itself is never modified. The number
// of rounds is fixed up front to the trimmed degree. Each round:
//  1. Search the working polynomial for a root r.
//  2. Record r rounded to two decimals (Result.Roots) and raw (RawRoots).
//  3. Deflate by the raw r, trim, and record a copy in Result.Steps.
//  4. Notify observers.
//
// A zero or empty polynomial has degree 0: no rounds, empty root set.
//
// Errors:
//   - ErrNilPolynomial if p is nil.
func Extract(p *polynomial.Polynomial, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilPolynomial
	}
	o := gatherOptions(opts...)

	work := p.Clone()
	work.TrimZeros()
	res := Result{Degree: work.Degree()}
	o.logger.Debug("extraction started",
		slog.Int("degree", res.Degree),
		slog.String("polynomial", work.String()),
	)

	for round := 0; round < res.Degree; round++ {
		if o.policy == GuardRounds && work.Degree() == 0 {
			o.logger.Warn("polynomial became constant before all rounds ran",
				slog.Int("round", round),
				slog.Int("planned", res.Degree),
			)
			break
		}

		start := time.Now()
		sr := Search(work)
		elapsed := time.Since(start)

		rounded := sr.Root.Round2()
		res.Roots = append(res.Roots, rounded)
		res.RawRoots = append(res.RawRoots, sr.Root)
		res.Evaluations += sr.Evaluations

		work.Deflate(sr.Root)
		work.TrimZeros()
		res.Steps = append(res.Steps, work.Clone())

		o.logger.Debug("root located",
			slog.Int("round", round),
			slog.String("root", rounded.String()),
			slog.Int("evaluations", sr.Evaluations),
			slog.Bool("exact_zero", sr.ExactZero),
			slog.Duration("duration", elapsed),
			slog.Int("remaining_degree", work.Degree()),
		)

		ev := RoundEvent{
			Round:       round,
			Root:        rounded,
			RawRoot:     sr.Root,
			Evaluations: sr.Evaluations,
			ExactZero:   sr.ExactZero,
			Duration:    elapsed,
			Remaining:   work.Clone(),
		}
		for _, obs := range o.observers {
			obs.OnRound(ev)
		}
	}

	return res, nil
}
