// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"log/slog"
)

// RoundPolicy decides what Extract does when the working polynomial
// reaches degree 0 before the planned number of rounds has run.
//
// With trimmed, finite input the two policies agree: every deflation keeps
// the leading coefficient, so the degree drops by exactly one per round.
type RoundPolicy int

const (
	// GuardRounds stops as soon as the working polynomial is constant.
	GuardRounds RoundPolicy = iota

	// FixedRounds always runs exactly Degree rounds; extra rounds search a
	// constant polynomial and deflate it down to empty.
	FixedRounds
)

// Defaults.
const (
	DefaultRoundPolicy = GuardRounds
)

const (
	panicNilLogger     = "rootfind: WithLogger: logger must not be nil"
	panicNilObserver   = "rootfind: WithObserver: observer must not be nil"
	panicUnknownPolicy = "rootfind: WithRoundPolicy: unknown policy %d"
)

// Option configures Extract.
type Option func(*Options)

// Options is the resolved configuration; build it through Option setters.
type Options struct {
	logger    *slog.Logger
	observers []Observer
	policy    RoundPolicy
}

// WithLogger routes per-round debug records and guard warnings to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) {
		o.logger = l
	}
}

// WithObserver appends o to the observers notified after every round.
// Observers run synchronously, in registration order. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}
	return func(o *Options) {
		o.observers = append(o.observers, obs)
	}
}

// WithRoundPolicy selects the round policy. Panics on an unknown value.
func WithRoundPolicy(p RoundPolicy) Option {
	if p != GuardRounds && p != FixedRounds {
		panic(fmt.Sprintf(panicUnknownPolicy, p))
	}
	return func(o *Options) {
		o.policy = p
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger: slog.New(slog.DiscardHandler),
		policy: DefaultRoundPolicy,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	o.logger = o.logger.With(slog.String("component", "rootfind"))
	return o
}
