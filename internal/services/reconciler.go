package services

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/anonto42/travel-discover/backend/internal/models"
	"go.uber.org/zap"
)

// SavedChecker answers whether a user saved a place under a location
type SavedChecker interface {
	Exists(ctx context.Context, userID, placeName, location string) (bool, error)
}

// SavedStateIndex is the set of result names already saved for the current
// location. It is a value: MarkSaved returns a new index and never touches
// the one it was given.
type SavedStateIndex struct {
	names map[string]struct{}
}

func (i SavedStateIndex) Has(name string) bool {
	_, ok := i.names[name]
	return ok
}

func (i SavedStateIndex) Len() int { return len(i.names) }

// Names returns the saved names in sorted order
func (i SavedStateIndex) Names() []string {
	names := make([]string, 0, len(i.names))
	for n := range i.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (i SavedStateIndex) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Names())
}

// MarkSaved returns a copy of index that also contains name
func MarkSaved(index SavedStateIndex, name string) SavedStateIndex {
	names := make(map[string]struct{}, len(index.names)+1)
	for n := range index.names {
		names[n] = struct{}{}
	}
	if name != "" {
		names[name] = struct{}{}
	}
	return SavedStateIndex{names: names}
}

// Reconciler builds a SavedStateIndex for a fresh discovery result
type Reconciler struct {
	store  SavedChecker
	logger *zap.Logger
}

func NewReconciler(store SavedChecker, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: store, logger: logger}
}

// Reconcile checks every item of result against the user's saved places under
// key. A failed lookup leaves that item unmarked.
func (r *Reconciler) Reconcile(ctx context.Context, result models.DiscoveryResult, key, userID string) SavedStateIndex {
	index := SavedStateIndex{names: map[string]struct{}{}}
	if userID == "" {
		return index
	}

	checked := make(map[string]bool, result.Len())
	for _, item := range result.Items() {
		if item.Name == "" || checked[item.Name] {
			continue
		}
		checked[item.Name] = true

		saved, err := r.store.Exists(ctx, userID, item.Name, key)
		if err != nil {
			r.logger.Warn("saved state lookup failed",
				zap.String("place_name", item.Name),
				zap.String("location", key),
				zap.Error(err),
			)
			continue
		}
		if saved {
			index.names[item.Name] = struct{}{}
		}
	}
	return index
}
