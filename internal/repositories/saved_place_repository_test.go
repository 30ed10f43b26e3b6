package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlace(userID, name, location string, at time.Time) *models.SavedPlace {
	return &models.SavedPlace{
		UserID:    userID,
		PlaceName: name,
		PlaceType: models.PlaceTypePlace,
		Location:  location,
		CreatedAt: at,
	}
}

func TestSavedPlaceCreateAssignsIDAndIsIdempotent(t *testing.T) {
	repo := NewGormSavedPlaceRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	first := newPlace("u1", "Eiffel Tower", "paris", now)
	created, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, first.ID, 36)

	created, err = repo.Create(ctx, newPlace("u1", "Eiffel Tower", "paris", now))
	require.NoError(t, err)
	assert.False(t, created, "duplicate (user, name, location) writes nothing")

	all, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSavedPlaceUniquenessIsPerUserAndLocation(t *testing.T) {
	repo := NewGormSavedPlaceRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	for _, p := range []*models.SavedPlace{
		newPlace("u1", "Sushi", "tokyo", now),
		newPlace("u2", "Sushi", "tokyo", now),
		newPlace("u1", "Sushi", "new york", now),
		newPlace("u1", "sushi", "tokyo", now),
	} {
		created, err := repo.Create(ctx, p)
		require.NoError(t, err)
		assert.True(t, created, p.UserID+"/"+p.PlaceName+"/"+p.Location)
	}
}

func TestSavedPlaceExists(t *testing.T) {
	repo := NewGormSavedPlaceRepository(newTestDB(t))
	ctx := context.Background()
	_, err := repo.Create(ctx, newPlace("u1", "Big Ben", "london", time.Now()))
	require.NoError(t, err)

	ok, err := repo.Exists(ctx, "u1", "Big Ben", "london")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, args := range [][3]string{
		{"u2", "Big Ben", "london"},
		{"u1", "big ben", "london"},
		{"u1", "Big Ben", "paris"},
	} {
		ok, err := repo.Exists(ctx, args[0], args[1], args[2])
		require.NoError(t, err)
		assert.False(t, ok, args)
	}
}

func TestSavedPlaceListsNewestFirst(t *testing.T) {
	repo := NewGormSavedPlaceRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	_, _ = repo.Create(ctx, newPlace("u1", "Big Ben", "london", base))
	_, _ = repo.Create(ctx, newPlace("u1", "Dishoom", "london", base.Add(time.Minute)))
	_, _ = repo.Create(ctx, newPlace("u1", "Sushi", "tokyo", base.Add(2*time.Minute)))

	all, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Sushi", all[0].PlaceName)
	assert.Equal(t, "Big Ben", all[2].PlaceName)

	london, err := repo.ListByUserAndLocation(ctx, "u1", "london")
	require.NoError(t, err)
	require.Len(t, london, 2)
	assert.Equal(t, "Dishoom", london[0].PlaceName)

	none, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSavedPlaceDeleteIsScopedToUser(t *testing.T) {
	repo := NewGormSavedPlaceRepository(newTestDB(t))
	ctx := context.Background()
	p := newPlace("u1", "Burj Khalifa", "dubai", time.Now())
	_, err := repo.Create(ctx, p)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "u2", p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "u1", p.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
