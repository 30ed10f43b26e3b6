package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, repo SearchHistoryRepository, userID string, n int, base time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		loc := fmt.Sprintf("City %d", i)
		require.NoError(t, repo.Create(context.Background(), &models.SearchHistory{
			UserID:      userID,
			Location:    loc,
			LocationKey: fmt.Sprintf("city %d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}
}

func TestHistoryListRecentNewestFirstWithLimit(t *testing.T) {
	repo := NewGormSearchHistoryRepository(newTestDB(t))
	seedHistory(t, repo, "u1", 15, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	entries, err := repo.ListRecent(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	assert.Equal(t, "City 14", entries[0].Location)
	assert.Equal(t, "city 14", entries[0].LocationKey)
	assert.Equal(t, "City 5", entries[9].Location)
}

func TestHistoryListBreaksTimestampTiesByInsertion(t *testing.T) {
	repo := NewGormSearchHistoryRepository(newTestDB(t))
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for _, loc := range []string{"Paris", "Paris", "Tokyo"} {
		require.NoError(t, repo.Create(context.Background(), &models.SearchHistory{
			UserID: "u1", Location: loc, LocationKey: loc, CreatedAt: at,
		}))
	}

	entries, err := repo.ListRecent(context.Background(), "u1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Tokyo", "Paris", "Paris"},
		[]string{entries[0].Location, entries[1].Location, entries[2].Location})
}

func TestHistoryPruneKeepsNewest(t *testing.T) {
	repo := NewGormSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	seedHistory(t, repo, "u1", 12, base)
	seedHistory(t, repo, "u2", 3, base)

	removed, err := repo.Prune(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	entries, err := repo.ListRecent(ctx, "u1", 100)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	assert.Equal(t, "City 2", entries[9].Location)

	other, err := repo.ListRecent(ctx, "u2", 100)
	require.NoError(t, err)
	assert.Len(t, other, 3, "other users are untouched")
}

func TestHistoryDeleteAllByUser(t *testing.T) {
	repo := NewGormSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Now()
	seedHistory(t, repo, "u1", 4, base)
	seedHistory(t, repo, "u2", 2, base)

	removed, err := repo.DeleteAllByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	entries, err := repo.ListRecent(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)

	other, err := repo.ListRecent(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Len(t, other, 2)
}
