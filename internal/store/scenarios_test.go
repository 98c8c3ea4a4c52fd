package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/nestplan/internal/config"
	"github.com/theirongolddev/nestplan/internal/model"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "nested", "scenarios.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func input(income, savings float64) model.PlanInput {
	return model.PlanInput{Income: income, SavingsPercent: savings, AnnualReturn: 0.10, HorizonYears: 5}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	saved, err := lib.Save(ctx, Scenario{Name: " baseline ", Input: input(37000, 32)})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "baseline", saved.Name)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := lib.Get(ctx, "baseline")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, input(37000, 32), got.Input)
}

func TestSaveUpsertsByName(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lib.now = func() time.Time { return clock }

	first, err := lib.Save(ctx, Scenario{Name: "raise", Input: input(37000, 32)})
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	second, err := lib.Save(ctx, Scenario{Name: "raise", Input: input(45000, 40)})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, input(45000, 40), second.Input)

	all, err := lib.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	_, err := lib.Save(ctx, Scenario{Name: "", Input: input(37000, 32)})
	require.Error(t, err)

	_, err = lib.Save(ctx, Scenario{Name: "too-rich", Input: input(500000, 32)})
	assert.ErrorIs(t, err, config.ErrIncomeOutOfRange)
}

func TestListOrderedByName(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := lib.Save(ctx, Scenario{Name: name, Input: input(37000, 32)})
		require.NoError(t, err)
	}

	all, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "mid", all[1].Name)
	assert.Equal(t, "zeta", all[2].Name)
}

func TestGetAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	_, err := lib.Get(ctx, "ghost")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = lib.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	_, err := lib.Save(ctx, Scenario{Name: "temp", Input: input(20000, 15)})
	require.NoError(t, err)
	require.NoError(t, lib.Delete(ctx, "temp"))

	all, err := lib.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scenarios.db")

	lib, err := Open(path)
	require.NoError(t, err)
	_, err = lib.Save(ctx, Scenario{Name: "kept", Input: input(60000, 25)})
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	lib, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = lib.Close() }()

	got, err := lib.Get(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, 60000.0, got.Input.Income)
}
