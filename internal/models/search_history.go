package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchHistory is one recorded search (PostgreSQL / SQLite)
type SearchHistory struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	UserID      string    `json:"-" gorm:"size:128;index:idx_history_user_created,priority:1"`
	Location    string    `json:"location" gorm:"size:255;not null"`     // trimmed, as typed
	LocationKey string    `json:"location_key" gorm:"size:255;not null"` // canonical
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_history_user_created,priority:2"`
}

// TableName keeps the table name singular
func (SearchHistory) TableName() string { return "search_history" }

// SearchHistoryDocument is one recorded search stored in MongoDB
type SearchHistoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Location    string             `bson:"location"`
	LocationKey string             `bson:"location_key"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// HistoryEntry is what the history list exposes to clients
type HistoryEntry struct {
	Location    string    `json:"location"`
	LocationKey string    `json:"location_key"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h SearchHistory) ToEntry() HistoryEntry {
	return HistoryEntry{Location: h.Location, LocationKey: h.LocationKey, CreatedAt: h.CreatedAt}
}

func (d SearchHistoryDocument) ToEntry() HistoryEntry {
	return HistoryEntry{Location: d.Location, LocationKey: d.LocationKey, CreatedAt: d.CreatedAt}
}
