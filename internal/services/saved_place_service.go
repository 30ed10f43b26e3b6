package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/discovery"
	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/anonto42/travel-discover/backend/internal/repositories"
	"github.com/anonto42/travel-discover/backend/validators"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SavedPlaceService is the per-user saved places store. Locations are kept in
// canonical form so lookups match whatever casing the user typed.
type SavedPlaceService struct {
	repo     repositories.SavedPlaceRepository
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewSavedPlaceService creates a new SavedPlaceService
func NewSavedPlaceService(repo repositories.SavedPlaceRepository, logger *zap.Logger) *SavedPlaceService {
	return &SavedPlaceService{
		repo:     repo,
		validate: validators.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Save bookmarks a result item for userID. A place the user already saved
// under the same location fails with errs.ErrAlreadyExists and writes nothing.
func (s *SavedPlaceService) Save(ctx context.Context, userID string, req models.SavePlaceRequest) (*models.SavedPlace, error) {
	if userID == "" {
		return nil, errs.ErrNotAuthenticated
	}

	req.PlaceName = strings.TrimSpace(req.PlaceName)
	req.Location = strings.TrimSpace(req.Location)
	if err := s.validate.Struct(req); err != nil {
		return nil, errs.Validation(validators.Describe(err))
	}
	location := discovery.Canonicalize(req.Location)

	exists, err := s.repo.Exists(ctx, userID, req.PlaceName, location)
	if err != nil {
		return nil, errs.TransientStore("failed to check saved place", err)
	}
	if exists {
		return nil, errs.ErrAlreadyExists
	}

	place := &models.SavedPlace{
		UserID:    userID,
		PlaceName: req.PlaceName,
		PlaceType: req.PlaceType,
		Location:  location,
		Rating:    clampRating(req.Rating),
		CreatedAt: s.now(),
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		place.Description = &desc
	}

	created, err := s.repo.Create(ctx, place)
	if err != nil {
		return nil, errs.TransientStore("failed to save place", err)
	}
	if !created {
		// lost a race with a concurrent save of the same place
		return nil, errs.ErrAlreadyExists
	}

	s.logger.Info("place saved",
		zap.String("user_id", userID),
		zap.String("place_name", place.PlaceName),
		zap.String("location", location),
	)
	return place, nil
}

// Unsave removes one saved place of userID. An id the user does not own is
// reported as errs.ErrNotFound.
func (s *SavedPlaceService) Unsave(ctx context.Context, userID, id string) error {
	if userID == "" {
		return errs.ErrNotAuthenticated
	}
	if strings.TrimSpace(id) == "" {
		return errs.Validation("id is required")
	}
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return errs.TransientStore("failed to remove saved place", err)
	}
	if !deleted {
		return errs.NotFound("Saved place not found")
	}
	return nil
}

func (s *SavedPlaceService) ListAll(ctx context.Context, userID string) ([]models.SavedPlace, error) {
	if userID == "" {
		return []models.SavedPlace{}, nil
	}
	saved, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.TransientStore("failed to list saved places", err)
	}
	return saved, nil
}

func (s *SavedPlaceService) ListByLocation(ctx context.Context, userID, location string) ([]models.SavedPlace, error) {
	if userID == "" {
		return []models.SavedPlace{}, nil
	}
	saved, err := s.repo.ListByUserAndLocation(ctx, userID, discovery.Canonicalize(location))
	if err != nil {
		return nil, errs.TransientStore("failed to list saved places", err)
	}
	return saved, nil
}

// Exists reports whether userID saved placeName under location. Names compare
// exactly; locations compare in canonical form.
func (s *SavedPlaceService) Exists(ctx context.Context, userID, placeName, location string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := s.repo.Exists(ctx, userID, strings.TrimSpace(placeName), discovery.Canonicalize(location))
	if err != nil {
		return false, errs.TransientStore("failed to check saved place", err)
	}
	return ok, nil
}

// clampRating drops ratings outside (0, 5]
func clampRating(r *float64) *float64 {
	if r == nil || math.IsNaN(*r) || *r <= 0 || *r > 5 {
		return nil
	}
	v := *r
	return &v
}
