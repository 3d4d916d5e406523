package models

import (
	"time"
)

// StorageEntry is one named slot of the local on-device store. Each
// collection (menu items, categories, staff, search history, offline orders,
// print settings) is persisted as a whole JSON value under its own key.
type StorageEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the StorageEntry model
func (StorageEntry) TableName() string {
	return "storage_entries"
}
