// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/danielhkuo/star-atlas/cliparse"
	"github.com/danielhkuo/star-atlas/models"
	"github.com/danielhkuo/star-atlas/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNames(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := NewRouter(db, testutil.GetTestConfig())

	names := r.Names()
	require.Len(t, names, 11)
	assert.Equal(t, "constellation-distances", names[0])
	assert.Equal(t, "cleaning-audit", names[len(names)-1])

	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(t, seen[name], "duplicate report name %s", name)
		seen[name] = true
	}
}

func TestRun_SingleReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCatalog(t, db)
	r := NewRouter(db, testutil.GetTestConfig())

	results, err := r.Resolve(context.Background(), "planet-count-check")
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "planet-count-check", result.Name)
	assert.Equal(t, 1, result.Count)

	rows, ok := result.Rows.([]models.PlanetCountMismatch)
	require.True(t, ok, "unexpected row type %T", result.Rows)
	assert.Equal(t, "47 UMa", rows[0].StarID)
}

func TestRun_UnknownReport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := NewRouter(db, testutil.GetTestConfig())

	_, err := r.Resolve(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownReport))
}

func TestRunAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCatalog(t, db)
	r := NewRouter(db, testutil.GetTestConfig())

	results, err := r.Resolve(context.Background(), cliparse.AllReports)
	require.NoError(t, err)
	require.Len(t, results, len(r.Names()))

	for i, name := range r.Names() {
		assert.Equal(t, name, results[i].Name, "results keep canonical order")
		assert.NotEmpty(t, results[i].Title)
		assert.NotNil(t, results[i].Rows, "report %s", name)
	}

	// Audit of a consistent database is empty
	last := results[len(results)-1]
	assert.Equal(t, "cleaning-audit", last.Name)
	assert.Equal(t, 0, last.Count)
}

func TestRunAll_Repeatable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedCatalog(t, db)
	r := NewRouter(db, testutil.GetTestConfig())

	first, err := r.RunAll(context.Background())
	require.NoError(t, err)
	second, err := r.RunAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunAll_CanceledContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := NewRouter(db, testutil.GetTestConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RunAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWithLogging_PassesThrough(t *testing.T) {
	called := false
	run := WithLogging("test", func(ctx context.Context) (any, int, error) {
		called = true
		return []string{"a", "b"}, 2, nil
	})

	rows, count, err := run(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"a", "b"}, rows)

	boom := errors.New("boom")
	failing := WithLogging("failing", func(ctx context.Context) (any, int, error) {
		return nil, 0, boom
	})
	_, _, err = failing(context.Background())
	assert.ErrorIs(t, err, boom)
}
