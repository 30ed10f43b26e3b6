package repositories

import (
	"context"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"gorm.io/gorm"
)

// SearchHistoryRepository defines the interface for search history storage
type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *models.SearchHistory) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error)
	// Prune deletes everything but the newest keep entries of the user.
	Prune(ctx context.Context, userID string, keep int) (int64, error)
	DeleteAllByUser(ctx context.Context, userID string) (int64, error)
}

// GormSearchHistoryRepository implements SearchHistoryRepository on PostgreSQL or SQLite
type GormSearchHistoryRepository struct {
	db *gorm.DB
}

func NewGormSearchHistoryRepository(db *gorm.DB) *GormSearchHistoryRepository {
	return &GormSearchHistoryRepository{db: db}
}

func (r *GormSearchHistoryRepository) Create(ctx context.Context, entry *models.SearchHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListRecent orders by insertion id after created_at so entries recorded
// within the same clock tick keep their order.
func (r *GormSearchHistoryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.HistoryEntry, error) {
	var rows []models.SearchHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]models.HistoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.ToEntry()
	}
	return entries, nil
}

func (r *GormSearchHistoryRepository) Prune(ctx context.Context, userID string, keep int) (int64, error) {
	newest := r.db.Model(&models.SearchHistory{}).
		Select("id").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(keep)
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id NOT IN (?)", userID, newest).
		Delete(&models.SearchHistory{})
	return res.RowsAffected, res.Error
}

func (r *GormSearchHistoryRepository) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SearchHistory{})
	return res.RowsAffected, res.Error
}
