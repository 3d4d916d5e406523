// Package stores holds the explicit state-store objects of the POS: the menu
// catalog, the live order session, the print/staff settings and the offline
// order queue. Each store loads from the local on-device store at startup and
// writes back whenever it changes.
package stores

import "gorm.io/gorm"

var (
	menuStore     *MenuStore
	orderStore    *OrderStore
	settingsStore *SettingsStore
	offlineStore  *OfflineQueueStore
)

// Init constructs every store against the given database and makes them
// available to the handlers.
func Init(db *gorm.DB) {
	menuStore = NewMenuStore(db)
	orderStore = NewOrderStore()
	settingsStore = NewSettingsStore(db)
	offlineStore = NewOfflineQueueStore(db)
}

// GetMenuStore returns the initialized menu store.
func GetMenuStore() *MenuStore {
	return menuStore
}

// GetOrderStore returns the initialized order session store.
func GetOrderStore() *OrderStore {
	return orderStore
}

// GetSettingsStore returns the initialized settings store.
func GetSettingsStore() *SettingsStore {
	return settingsStore
}

// GetOfflineStore returns the initialized offline queue store.
func GetOfflineStore() *OfflineQueueStore {
	return offlineStore
}

// SetMenuStore replaces the menu store instance (primarily for testing)
func SetMenuStore(s *MenuStore) {
	menuStore = s
}

// SetOrderStore replaces the order store instance (primarily for testing)
func SetOrderStore(s *OrderStore) {
	orderStore = s
}

// SetSettingsStore replaces the settings store instance (primarily for testing)
func SetSettingsStore(s *SettingsStore) {
	settingsStore = s
}

// SetOfflineStore replaces the offline store instance (primarily for testing)
func SetOfflineStore(s *OfflineQueueStore) {
	offlineStore = s
}
