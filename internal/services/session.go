package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
)

// save failures stay on screen for a shorter time than search failures
const saveNoticeWindow = 3 * time.Second

var (
	ErrSearchInProgress = errors.New("a search is already in progress")
	ErrNoSearch         = errs.Validation("Search for a location first")
)

// Notice is a user-visible error message that disappears on its own
type Notice struct {
	Message   string
	Kind      errs.Kind
	ExpiresAt time.Time
}

// SearchSession holds one user's current search: at most one search in
// flight, the last successful view and the latest error notice.
type SearchSession struct {
	explorer *Explorer
	userID   string
	now      func() time.Time

	mu        sync.Mutex
	searching bool
	view      *SearchView
	notice    *Notice
}

func NewSearchSession(explorer *Explorer, userID string) *SearchSession {
	return &SearchSession{explorer: explorer, userID: userID, now: time.Now}
}

// Search replaces the current view with the result for raw. A failed search
// clears the view and leaves a notice.
func (s *SearchSession) Search(ctx context.Context, raw string) (SearchView, error) {
	s.mu.Lock()
	if s.searching {
		s.mu.Unlock()
		return SearchView{}, ErrSearchInProgress
	}
	s.searching = true
	s.notice = nil
	s.mu.Unlock()

	view, err := s.explorer.Search(ctx, s.userID, raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searching = false
	if err != nil {
		s.view = nil
		s.setNotice(err, errs.DismissAfter(err))
		return SearchView{}, err
	}
	s.view = view
	return *view, nil
}

// Save saves item from the current view and marks it saved
func (s *SearchSession) Save(ctx context.Context, item models.ItemRef) error {
	s.mu.Lock()
	view := s.view
	s.mu.Unlock()
	if view == nil {
		return ErrNoSearch
	}

	index, err := s.explorer.Save(ctx, s.userID, view.Key, item, view.Saved)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setNotice(err, saveNoticeWindow)
		return err
	}
	// a search that finished meanwhile has its own index
	if s.view == view {
		s.view.Saved = index
	}
	return nil
}

// View returns the current view, if any
func (s *SearchSession) View() (SearchView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return SearchView{}, false
	}
	return *s.view, true
}

func (s *SearchSession) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searching
}

// ActiveNotice returns the latest notice unless it has expired at now
func (s *SearchSession) ActiveNotice(now time.Time) (Notice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notice == nil || !now.Before(s.notice.ExpiresAt) {
		return Notice{}, false
	}
	return *s.notice, true
}

func (s *SearchSession) setNotice(err error, window time.Duration) {
	s.notice = &Notice{
		Message:   errs.Message(err),
		Kind:      errs.KindOf(err),
		ExpiresAt: s.now().Add(window),
	}
}
