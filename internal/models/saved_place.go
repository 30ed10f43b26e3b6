package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceType is the category a saved place came from
type PlaceType string

const (
	PlaceTypePlace      PlaceType = "place"
	PlaceTypeRestaurant PlaceType = "restaurant"
	PlaceTypeActivity   PlaceType = "activity"
	PlaceTypeFood       PlaceType = "food"
)

// SavedPlace is a result item a user bookmarked under a search location
type SavedPlace struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	UserID      string    `json:"-" gorm:"size:128;index;uniqueIndex:idx_user_place_location,priority:1"`
	PlaceName   string    `json:"place_name" gorm:"size:255;not null;uniqueIndex:idx_user_place_location,priority:2"`
	PlaceType   PlaceType `json:"place_type" gorm:"size:16;not null"`
	Location    string    `json:"location" gorm:"size:255;not null;index;uniqueIndex:idx_user_place_location,priority:3"` // canonical search key
	Description *string   `json:"description,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate assigns the opaque id on persist
func (p *SavedPlace) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// SavePlaceRequest defines the request body for saving a place
type SavePlaceRequest struct {
	PlaceName   string    `json:"place_name" validate:"required,max=255"`
	PlaceType   PlaceType `json:"place_type" validate:"required,oneof=place restaurant activity food"`
	Location    string    `json:"location" validate:"required,max=255"`
	Description string    `json:"description,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
}
