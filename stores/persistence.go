package stores

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/lamanila-kanishka/pos-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. Each collection is persisted independently under its own key
// and loaded back at startup with defensive shape validation.
const (
	KeyMenuItems     = "posMenuItems"
	KeyCategories    = "posCategories"
	KeyStaffList     = "posStaffList"
	KeySearchHistory = "posSearchHistory"
	KeyOfflineOrders = "posOfflineOrders"
	KeyPrintSettings = "posPrintSettings"
)

// ErrMalformed is returned by the decode functions when a persisted value
// does not match the expected shape. Callers fall back to defaults.
var ErrMalformed = errors.New("malformed persisted data")

// saveValue writes a collection back to its storage slot. Persistence
// failures are logged and non-fatal: the in-memory state stays authoritative
// for the session.
func saveValue(db *gorm.DB, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode %s for persistence: %v", key, err)
		return
	}
	entry := models.StorageEntry{Key: key, Value: string(data)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		log.Printf("Failed to persist %s: %v", key, err)
	}
}

// loadValue reads the raw persisted value for a key. The second return is
// false when the key is absent or unreadable.
func loadValue(db *gorm.DB, key string) ([]byte, bool) {
	var entry models.StorageEntry
	if err := db.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to read %s from local store: %v", key, err)
		}
		return nil, false
	}
	return []byte(entry.Value), true
}

// decodeMenuItems validates a persisted menu catalog. Every entry must carry
// a positive id and a name.
func decodeMenuItems(data []byte) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, KeyMenuItems, err)
	}
	for _, item := range items {
		if item.ID <= 0 || item.Name == "" {
			return nil, fmt.Errorf("%w: %s: item missing id or name", ErrMalformed, KeyMenuItems)
		}
	}
	return items, nil
}

// decodeStrings validates a persisted string list (categories, staff roster,
// search history).
func decodeStrings(data []byte, key string) ([]string, error) {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return values, nil
}

// decodeOrders validates persisted offline orders. Every entry must carry an
// id and an item list.
func decodeOrders(data []byte) ([]models.Order, error) {
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, KeyOfflineOrders, err)
	}
	for _, order := range orders {
		if order.ID == "" || order.Items == nil {
			return nil, fmt.Errorf("%w: %s: order missing id or items", ErrMalformed, KeyOfflineOrders)
		}
	}
	return orders, nil
}

// decodePrintSettings validates persisted print settings. Flags absent from
// the stored value keep their defaults.
func decodePrintSettings(data []byte) (models.PrintSettings, error) {
	settings := models.DefaultPrintSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.DefaultPrintSettings(), fmt.Errorf("%w: %s: %v", ErrMalformed, KeyPrintSettings, err)
	}
	return settings, nil
}
