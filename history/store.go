// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/polynomial"
	"github.com/katalvlaran/polyroots/rootfind"
)

var (
	// ErrNilDB is returned by NewStore for a nil database handle.
	ErrNilDB = errors.New("history: db is nil")

	// ErrNotFound is returned by Get for an unknown run id.
	ErrNotFound = errors.New("history: run not found")
)

// Run is one journaled extraction.
type Run struct {
	ID           string
	Polynomial   string               // rendered input
	Coefficients []complexnum.Complex // input, ascending powers
	Roots        []complexnum.Complex // rounded roots in discovery order
	Steps        []string             // rendered polynomial after each deflation
	Evaluations  int
	CreatedAt    time.Time
}

// FromResult builds a Run from an extraction input and its result.
func FromResult(p *polynomial.Polynomial, res rootfind.Result) Run {
	steps := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = s.String()
	}
	return Run{
		Polynomial:   p.String(),
		Coefficients: p.Coefficients(),
		Roots:        append([]complexnum.Complex(nil), res.Roots...),
		Steps:        steps,
		Evaluations:  res.Evaluations,
	}
}

// Store persists runs in the runs table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps db and ensures the schema exists.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("history: ensure schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Save inserts run and returns its id. A missing id is generated and a
// zero CreatedAt is set to the current time.
func (s *Store) Save(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(id, polynomial, coefficients, roots, steps, evaluations, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Polynomial, encodeComplex(run.Coefficients), encodeComplex(run.Roots),
		strings.Join(run.Steps, "\n"), run.Evaluations, run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("history: save %s: %w", run.ID, err)
	}
	return run.ID, nil
}

const selectRuns = `SELECT id, polynomial, coefficients, roots, steps, evaluations, created_at FROM runs`

// Get loads a run by id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return run, err
}

// List returns up to limit runs, most recent first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, selectRuns+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run           Run
		coeffs, roots []byte
		steps         string
		created       int64
	)
	if err := sc.Scan(&run.ID, &run.Polynomial, &coeffs, &roots, &steps, &run.Evaluations, &created); err != nil {
		return Run{}, err
	}
	var err error
	if run.Coefficients, err = decodeComplex(coeffs); err != nil {
		return Run{}, err
	}
	if run.Roots, err = decodeComplex(roots); err != nil {
		return Run{}, err
	}
	if steps != "" {
		run.Steps = strings.Split(steps, "\n")
	}
	run.CreatedAt = time.Unix(0, created).UTC()
	return run, nil
}
