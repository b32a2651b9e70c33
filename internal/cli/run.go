// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/history"
	"github.com/katalvlaran/polyroots/metrics"
	"github.com/katalvlaran/polyroots/notation"
	"github.com/katalvlaran/polyroots/polynomial"
	"github.com/katalvlaran/polyroots/rootfind"
)

// Run parses args and executes them. It returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv, err := ParseInvocation(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitCode(err)
	}
	return Execute(ctx, inv, stdout, stderr)
}

// Execute runs a parsed invocation.
func Execute(ctx context.Context, inv Invocation, stdout, stderr io.Writer) int {
	if inv.Help {
		fmt.Fprintln(stdout, HelpText)
		return ExitSuccess
	}

	logger := slog.New(slog.DiscardHandler)
	if inv.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var store *history.Store
	if inv.HistoryPath != "" {
		db, err := history.Open(inv.HistoryPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternalError
		}
		defer db.Close()
		if store, err = history.NewStore(ctx, db); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternalError
		}
	}

	if inv.List > 0 {
		if err := printHistory(ctx, stdout, store, inv.List); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternalError
		}
		if len(inv.Terms) == 0 {
			return ExitSuccess
		}
	}

	p, err := notation.ParseTerms(inv.Terms)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitParseFailure
	}

	opts := []rootfind.Option{rootfind.WithLogger(logger)}
	var collector *metrics.Collector
	if inv.Metrics {
		collector = metrics.NewCollector()
		opts = append(opts, rootfind.WithObserver(collector))
	}
	if !inv.JSON {
		fmt.Fprintln(stdout, "Horner results:")
		opts = append(opts, rootfind.WithObserver(rootfind.ObserverFunc(func(ev rootfind.RoundEvent) {
			fmt.Fprintln(stdout, ev.Remaining)
		})))
	}

	res, err := rootfind.Extract(p, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitInternalError
	}

	if inv.JSON {
		if err := writeJSON(stdout, p, res); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternalError
		}
	} else {
		fmt.Fprintf(stdout, "The roots of %s are: S = %s\n", p, rootfind.FormatRoots(res.Roots))
	}

	if collector != nil {
		if err := collector.WriteSummary(stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternalError
		}
	}

	if store != nil {
		id, err := store.Save(ctx, history.FromResult(p, res))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return ExitInternalError
		}
		logger.Info("run saved", slog.String("id", id), slog.String("path", inv.HistoryPath))
	}
	return ExitSuccess
}

type jsonComplex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

type jsonReport struct {
	Polynomial  string        `json:"polynomial"`
	Roots       []jsonComplex `json:"roots"`
	Steps       []string      `json:"steps"`
	Evaluations int           `json:"evaluations"`
}

func toJSONComplex(vals []complexnum.Complex) []jsonComplex {
	out := make([]jsonComplex, len(vals))
	for i, v := range vals {
		out[i] = jsonComplex{Re: v.Re, Im: v.Im}
	}
	return out
}

// writeJSON fails on non-finite roots, which JSON cannot represent.
func writeJSON(w io.Writer, p *polynomial.Polynomial, res rootfind.Result) error {
	steps := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = s.String()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Polynomial:  p.String(),
		Roots:       toJSONComplex(res.Roots),
		Steps:       steps,
		Evaluations: res.Evaluations,
	})
}

func printHistory(ctx context.Context, w io.Writer, store *history.Store, limit int) error {
	runs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %s  %s  S = %s\n",
			r.CreatedAt.Format("2006-01-02T15:04:05Z"), r.ID, r.Polynomial, rootfind.FormatRoots(r.Roots))
	}
	return nil
}
