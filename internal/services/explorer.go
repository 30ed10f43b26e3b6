package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anonto42/travel-discover/backend/internal/discovery"
	"github.com/anonto42/travel-discover/backend/internal/errs"
	"github.com/anonto42/travel-discover/backend/internal/models"
)

// Discoverer resolves a raw location for a user
type Discoverer interface {
	Discover(ctx context.Context, userID, raw string) (discovery.Discovery, error)
}

// PlaceSaver persists a saved place
type PlaceSaver interface {
	Save(ctx context.Context, userID string, req models.SavePlaceRequest) (*models.SavedPlace, error)
}

// SearchView is one discovery result together with what the user already saved from it
type SearchView struct {
	discovery.Discovery
	Saved SavedStateIndex `json:"saved"`
}

// Explorer runs the search and save pipelines
type Explorer struct {
	discoverer Discoverer
	reconciler *Reconciler
	saver      PlaceSaver
}

func NewExplorer(discoverer Discoverer, reconciler *Reconciler, saver PlaceSaver) *Explorer {
	return &Explorer{discoverer: discoverer, reconciler: reconciler, saver: saver}
}

// Search discovers raw and marks the items the user already saved
func (e *Explorer) Search(ctx context.Context, userID, raw string) (*SearchView, error) {
	d, err := e.discoverer.Discover(ctx, userID, raw)
	if err != nil {
		return nil, err
	}
	return &SearchView{
		Discovery: d,
		Saved:     e.reconciler.Reconcile(ctx, d.Result, d.Key, userID),
	}, nil
}

// Save stores item under key and returns index with the item marked. Saving
// an item that is already saved succeeds.
func (e *Explorer) Save(ctx context.Context, userID, key string, item models.ItemRef, index SavedStateIndex) (SavedStateIndex, error) {
	_, err := e.saver.Save(ctx, userID, models.SavePlaceRequest{
		PlaceName:   item.Name,
		PlaceType:   item.Type,
		Location:    key,
		Description: item.Description,
		Rating:      item.Rating,
	})
	if err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
		return index, err
	}
	return MarkSaved(index, strings.TrimSpace(item.Name)), nil
}
