package services

import (
	"context"
	"strings"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/discovery"
	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
	"github.com/anonto42/travel-discover/backend/internal/repositories"
	"go.uber.org/zap"
)

// HistoryLimit is how many searches are kept per user
const HistoryLimit = 10

// HistoryService records and lists recent searches
type HistoryService struct {
	repo   repositories.SearchHistoryRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewHistoryService(repo repositories.SearchHistoryRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{repo: repo, logger: logger, now: time.Now}
}

// Append records raw for userID. It never fails: missing sessions and
// invalid input are ignored and store errors are only logged.
func (s *HistoryService) Append(ctx context.Context, userID, raw string) {
	if userID == "" {
		return
	}
	key, err := discovery.Normalize(raw)
	if err != nil {
		return
	}

	entry := &models.SearchHistory{
		UserID:      userID,
		Location:    strings.TrimSpace(raw),
		LocationKey: key,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record search", zap.String("user_id", userID), zap.String("location", key), zap.Error(err))
		return
	}

	if removed, err := s.repo.Prune(ctx, userID, HistoryLimit); err != nil {
		s.logger.Warn("failed to prune search history", zap.String("user_id", userID), zap.Error(err))
	} else if removed > 0 {
		s.logger.Debug("pruned search history", zap.String("user_id", userID), zap.Int64("removed", removed))
	}
}

// List returns up to HistoryLimit entries, most recent first
func (s *HistoryService) List(ctx context.Context, userID string) ([]models.HistoryEntry, error) {
	if userID == "" {
		return []models.HistoryEntry{}, nil
	}
	entries, err := s.repo.ListRecent(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, errs.TransientStore("failed to load search history", err)
	}
	return entries, nil
}

// Clear deletes every entry of userID and returns how many were removed
func (s *HistoryService) Clear(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errs.ErrNotAuthenticated
	}
	removed, err := s.repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, errs.TransientStore("failed to clear search history", err)
	}
	return removed, nil
}
