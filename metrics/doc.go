// SPDX-License-Identifier: MIT

// Package metrics exports root-extraction counters through Prometheus.
//
// A Collector is a rootfind.Observer: register it with
// rootfind.WithObserver and every completed round updates
//
//	polyroots_rounds_total                  counter
//	polyroots_evaluations_total             counter
//	polyroots_exact_zero_total              counter
//	polyroots_locate_duration_seconds       histogram
//	polyroots_remaining_degree              gauge
//
// Each Collector owns its own registry, so several can coexist in one
// process (tests, parallel runs) without duplicate-registration panics.
package metrics
