// SPDX-License-Identifier: MIT

// Package history keeps a journal of root-extraction runs in SQLite.
//
// It uses the pure-Go modernc.org/sqlite driver, so no cgo toolchain is
// needed. Complex slices are stored as BLOBs of little-endian IEEE-754
// float64 pairs (re, im), which round-trips NaN and ±Inf bit for bit.
//
//	db, _ := history.Open("runs.db")
//	store, _ := history.NewStore(ctx, db)
//	id, _ := store.Save(ctx, history.FromResult(p, res))
//	run, _ := store.Get(ctx, id)
package history
