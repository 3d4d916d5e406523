package stores

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/lamanila-kanishka/pos-api/models"
	"gorm.io/gorm"
)

// Validation errors surfaced to the user by the menu endpoints.
var (
	ErrItemNotFound   = errors.New("menu item not found")
	ErrCategoryExists = errors.New("category already exists")
)

// MenuStore owns the purchasable items, their categories and the recent
// search history. All reads return copies; all writes replace whole values
// and persist immediately.
type MenuStore struct {
	mu         sync.Mutex
	db         *gorm.DB
	items      []models.MenuItem
	categories []string
	history    []string
}

// searchHistoryLimit caps the recent-search list.
const searchHistoryLimit = 5

// NewMenuStore loads the catalog, category list and search history from the
// local store, substituting built-in defaults for missing or malformed data.
func NewMenuStore(db *gorm.DB) *MenuStore {
	s := &MenuStore{
		db:         db,
		items:      models.DefaultMenuItems(),
		categories: models.DefaultCategories(),
		history:    []string{},
	}

	if data, ok := loadValue(db, KeyMenuItems); ok {
		if items, err := decodeMenuItems(data); err != nil {
			log.Printf("Using default menu: %v", err)
		} else {
			s.items = items
		}
	}
	if data, ok := loadValue(db, KeyCategories); ok {
		if categories, err := decodeStrings(data, KeyCategories); err != nil {
			log.Printf("Using default categories: %v", err)
		} else {
			s.categories = categories
		}
	}
	if data, ok := loadValue(db, KeySearchHistory); ok {
		if history, err := decodeStrings(data, KeySearchHistory); err != nil {
			log.Printf("Resetting search history: %v", err)
		} else {
			if len(history) > searchHistoryLimit {
				history = history[:searchHistoryLimit]
			}
			s.history = history
		}
	}

	return s
}

// Items returns a copy of the catalog.
func (s *MenuStore) Items() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// Categories returns a copy of the category list.
func (s *MenuStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// FindItem looks up a catalog item by id.
func (s *MenuStore) FindItem(id int) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// CreateItem adds a new catalog item with a freshly minted id. An unseen
// category (case-insensitive) is appended to the category list.
func (s *MenuStore) CreateItem(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCategoryLocked(item.Category)

	item.ID = models.NextMenuItemID(s.items)
	s.items = append(s.items, item)
	saveValue(s.db, KeyMenuItems, s.items)
	return item
}

// UpdateItem mutates an existing catalog item in place. The caller is
// responsible for propagating the edit into the active order.
func (s *MenuStore) UpdateItem(item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			found = true
			break
		}
	}
	if !found {
		return models.MenuItem{}, ErrItemNotFound
	}

	s.ensureCategoryLocked(item.Category)
	saveValue(s.db, KeyMenuItems, s.items)
	return item, nil
}

// ensureCategoryLocked appends a category missing from the list, matching
// case-insensitively. Callers must hold the mutex.
func (s *MenuStore) ensureCategoryLocked(category string) {
	if category == "" {
		return
	}
	for _, c := range s.categories {
		if strings.EqualFold(c, category) {
			return
		}
	}
	s.categories = append(s.categories, category)
	saveValue(s.db, KeyCategories, s.categories)
}

// RenameCategory renames a category, cascading to every catalog item whose
// stored category exactly equals the old name. Renaming onto an existing
// category (case-insensitive, other than the old name itself) is rejected.
// An empty or unchanged new name is a no-op.
func (s *MenuStore) RenameCategory(oldName, newName string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" || trimmed == oldName {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if strings.EqualFold(c, trimmed) && !strings.EqualFold(c, oldName) {
			return ErrCategoryExists
		}
	}

	for i, c := range s.categories {
		if c == oldName {
			s.categories[i] = trimmed
		}
	}
	for i := range s.items {
		if s.items[i].Category == oldName {
			s.items[i].Category = trimmed
		}
	}

	saveValue(s.db, KeyCategories, s.categories)
	saveValue(s.db, KeyMenuItems, s.items)
	return nil
}

// SearchHistory returns the recent search terms, most recent first.
func (s *MenuStore) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]string, len(s.history))
	copy(history, s.history)
	return history
}

// RecordSearch pushes a term onto the search history: trimmed, terms shorter
// than 2 characters ignored, case-insensitive duplicates collapsed keeping
// the newest variant, capped at the 5 most recent.
func (s *MenuStore) RecordSearch(term string) {
	cleaned := strings.TrimSpace(term)
	if len(cleaned) < 2 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := []string{cleaned}
	for _, t := range s.history {
		if !strings.EqualFold(t, cleaned) {
			history = append(history, t)
		}
	}
	if len(history) > searchHistoryLimit {
		history = history[:searchHistoryLimit]
	}
	s.history = history
	saveValue(s.db, KeySearchHistory, s.history)
}

// ClearSearchHistory drops all recent search terms.
func (s *MenuStore) ClearSearchHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []string{}
	saveValue(s.db, KeySearchHistory, s.history)
}
