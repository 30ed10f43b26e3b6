package repositories

import (
	"context"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavedPlaceRepository defines the interface for saved place operations.
// Every call is scoped to one user.
type SavedPlaceRepository interface {
	// Create inserts place unless (user, name, location) already exists, and
	// reports whether a row was written.
	Create(ctx context.Context, place *models.SavedPlace) (bool, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
	Exists(ctx context.Context, userID, placeName, location string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavedPlace, error)
	ListByUserAndLocation(ctx context.Context, userID, location string) ([]models.SavedPlace, error)
}

// GormSavedPlaceRepository implements SavedPlaceRepository on PostgreSQL or SQLite
type GormSavedPlaceRepository struct {
	db *gorm.DB
}

func NewGormSavedPlaceRepository(db *gorm.DB) *GormSavedPlaceRepository {
	return &GormSavedPlaceRepository{db: db}
}

// Create relies on the idx_user_place_location unique index: a conflicting
// insert writes nothing instead of failing or duplicating the row.
func (r *GormSavedPlaceRepository) Create(ctx context.Context, place *models.SavedPlace) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(place)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormSavedPlaceRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.SavedPlace{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormSavedPlaceRepository) Exists(ctx context.Context, userID, placeName, location string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedPlace{}).
		Where("user_id = ? AND place_name = ? AND location = ?", userID, placeName, location).
		Count(&count).Error
	return count > 0, err
}

func (r *GormSavedPlaceRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedPlace, error) {
	saved := []models.SavedPlace{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}

func (r *GormSavedPlaceRepository) ListByUserAndLocation(ctx context.Context, userID, location string) ([]models.SavedPlace, error) {
	saved := []models.SavedPlace{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND location = ?", userID, location).
		Order("created_at DESC").
		Find(&saved).Error
	return saved, err
}
