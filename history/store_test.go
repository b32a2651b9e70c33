package history_test

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyroots/complexnum"
	"github.com/katalvlaran/polyroots/history"
	"github.com/katalvlaran/polyroots/polynomial"
	"github.com/katalvlaran/polyroots/rootfind"
)

// newStore opens a fresh file-backed journal under the test's temp dir.
func newStore(t *testing.T) *history.Store {
	t.Helper()
	db, err := history.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := history.NewStore(context.Background(), db)
	require.NoError(t, err)
	return store
}

// TestNewStore_NilDB rejects a nil handle.
func TestNewStore_NilDB(t *testing.T) {
	_, err := history.NewStore(context.Background(), nil)
	assert.ErrorIs(t, err, history.ErrNilDB)
}

// TestStore_SaveGetRoundTrip journals a real extraction and reads it back.
func TestStore_SaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	p := polynomial.FromReals(-1, 0, 1)
	res, err := rootfind.Extract(p)
	require.NoError(t, err)

	id, err := store.Save(ctx, history.FromResult(p, res))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	run, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "X^2 - 1", run.Polynomial)
	assert.Equal(t, p.Coefficients(), run.Coefficients)
	assert.Equal(t, res.Roots, run.Roots)
	assert.Equal(t, []string{"X + 1", "1"}, run.Steps)
	assert.Equal(t, res.Evaluations, run.Evaluations)
	assert.False(t, run.CreatedAt.IsZero())
}

// TestStore_NonFiniteRoundTrip keeps NaN and ±Inf bit for bit.
func TestStore_NonFiniteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	in := history.Run{
		Polynomial: "weird",
		Roots:      []complexnum.Complex{complexnum.New(math.Inf(1), math.NaN()), complexnum.New(0, math.Inf(-1))},
	}
	id, err := store.Save(ctx, in)
	require.NoError(t, err)

	run, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, run.Roots, 2)
	assert.True(t, math.IsInf(run.Roots[0].Re, 1))
	assert.True(t, math.IsNaN(run.Roots[0].Im))
	assert.True(t, math.IsInf(run.Roots[1].Im, -1))
	assert.Nil(t, run.Coefficients)
	assert.Nil(t, run.Steps)
}

// TestStore_GetMissing returns ErrNotFound.
func TestStore_GetMissing(t *testing.T) {
	_, err := newStore(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, history.ErrNotFound)
}

// TestStore_DuplicateID fails on the primary key.
func TestStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Save(ctx, history.Run{ID: "fixed", Polynomial: "X"})
	require.NoError(t, err)
	_, err = store.Save(ctx, history.Run{ID: "fixed", Polynomial: "X"})
	assert.Error(t, err)
}

// TestStore_ListOrder returns the most recent runs first and honors limit.
func TestStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		_, err := store.Save(ctx, history.Run{
			ID:         name,
			Polynomial: name,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].ID)
	assert.Equal(t, "first", all[2].ID)
	assert.True(t, base.Add(2*time.Minute).Equal(all[0].CreatedAt))

	two, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, []string{"third", "second"}, []string{two[0].ID, two[1].ID})
}
