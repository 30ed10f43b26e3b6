package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/anonto42/travel-discover/backend/internal/repositories"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errStoreDown = errors.New("connection refused")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.SavedPlace{}, &models.SearchHistory{}))
	return db
}

// stepClock returns a strictly increasing time on every call
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newSavedPlaces(t *testing.T) *SavedPlaceService {
	svc := NewSavedPlaceService(repositories.NewGormSavedPlaceRepository(newTestDB(t)), zap.NewNop())
	svc.now = newStepClock().Now
	return svc
}

// failingPlaces is a SavedPlaceRepository whose every call fails
type failingPlaces struct{}

func (failingPlaces) Create(context.Context, *models.SavedPlace) (bool, error) {
	return false, errStoreDown
}
func (failingPlaces) Delete(context.Context, string, string) (bool, error) { return false, errStoreDown }
func (failingPlaces) Exists(context.Context, string, string, string) (bool, error) {
	return false, errStoreDown
}
func (failingPlaces) ListByUser(context.Context, string) ([]models.SavedPlace, error) {
	return nil, errStoreDown
}
func (failingPlaces) ListByUserAndLocation(context.Context, string, string) ([]models.SavedPlace, error) {
	return nil, errStoreDown
}

// racingPlaces reports no existing row but then loses the insert
type racingPlaces struct{ failingPlaces }

func (racingPlaces) Exists(context.Context, string, string, string) (bool, error) { return false, nil }
func (racingPlaces) Create(context.Context, *models.SavedPlace) (bool, error)       { return false, nil }

// failingHistory is a SearchHistoryRepository whose every call fails
type failingHistory struct{ creates int }

func (f *failingHistory) Create(context.Context, *models.SearchHistory) error {
	f.creates++
	return errStoreDown
}
func (f *failingHistory) ListRecent(context.Context, string, int) ([]models.HistoryEntry, error) {
	return nil, errStoreDown
}
func (f *failingHistory) Prune(context.Context, string, int) (int64, error) { return 0, errStoreDown }
func (f *failingHistory) DeleteAllByUser(context.Context, string) (int64, error) {
	return 0, errStoreDown
}
