package stores

import (
	"testing"

	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestNewMenuStore_Defaults(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	assert.Equal(t, models.DefaultMenuItems(), store.Items())
	assert.Equal(t, models.DefaultCategories(), store.Categories())
	assert.Empty(t, store.SearchHistory())
}

func TestNewMenuStore_MalformedDataFallsBackToDefaults(t *testing.T) {
	db := setupStoreTestDB(t)
	db.Create(&models.StorageEntry{Key: KeyMenuItems, Value: `{"not":"a list"}`})
	db.Create(&models.StorageEntry{Key: KeyCategories, Value: `[1,2,3]`})

	store := NewMenuStore(db)
	assert.Equal(t, models.DefaultMenuItems(), store.Items())
	assert.Equal(t, models.DefaultCategories(), store.Categories())
}

func TestCreateItem(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)
	before := len(store.Items())

	created := store.CreateItem(models.MenuItem{
		Name:     "Sikkim Thukpa",
		Price:    180,
		Category: "Beverages",
		IsVeg:    true,
	})

	assert.Equal(t, 62, created.ID, "new ids continue past the highest existing id")
	assert.Len(t, store.Items(), before+1)

	found, ok := store.FindItem(created.ID)
	assert.True(t, ok)
	assert.Equal(t, "Sikkim Thukpa", found.Name)
}

func TestCreateItem_NewCategoryAppended(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	store.CreateItem(models.MenuItem{Name: "Veg Momo", Price: 120, Category: "Tibetan"})
	assert.Contains(t, store.Categories(), "Tibetan")

	// A case-variant of an existing category does not add a duplicate
	before := len(store.Categories())
	store.CreateItem(models.MenuItem{Name: "Chicken Momo", Price: 150, Category: "tibetan"})
	assert.Len(t, store.Categories(), before)
}

func TestUpdateItem(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	item, ok := store.FindItem(20)
	assert.True(t, ok)
	item.Price = 999
	item.Name = "Paneer Makhani"

	updated, err := store.UpdateItem(item)
	assert.NoError(t, err)
	assert.Equal(t, 999.0, updated.Price)

	found, _ := store.FindItem(20)
	assert.Equal(t, "Paneer Makhani", found.Name)
}

func TestUpdateItem_NotFound(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	_, err := store.UpdateItem(models.MenuItem{ID: 9999, Name: "Ghost Dish", Price: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMenuStore_PersistsAcrossReload(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)
	created := store.CreateItem(models.MenuItem{Name: "Sel Roti", Price: 90, Category: "Desserts", IsVeg: true})
	store.RecordSearch("roti")

	reloaded := NewMenuStore(db)
	found, ok := reloaded.FindItem(created.ID)
	assert.True(t, ok)
	assert.Equal(t, "Sel Roti", found.Name)
	assert.Equal(t, []string{"roti"}, reloaded.SearchHistory())
}

func TestRenameCategory_Cascades(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	err := store.RenameCategory("Desserts", "Sweets")
	assert.NoError(t, err)

	assert.Contains(t, store.Categories(), "Sweets")
	assert.NotContains(t, store.Categories(), "Desserts")
	for _, item := range store.Items() {
		assert.NotEqual(t, "Desserts", item.Category)
	}
	found, _ := store.FindItem(50)
	assert.Equal(t, "Sweets", found.Category)
}

func TestRenameCategory_ConflictRejected(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	err := store.RenameCategory("Desserts", "beverages")
	assert.ErrorIs(t, err, ErrCategoryExists)
	assert.Contains(t, store.Categories(), "Desserts")
}

func TestRenameCategory_NoOps(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)
	before := store.Categories()

	assert.NoError(t, store.RenameCategory("Desserts", ""))
	assert.NoError(t, store.RenameCategory("Desserts", "   "))
	assert.NoError(t, store.RenameCategory("Desserts", "Desserts"))
	assert.Equal(t, before, store.Categories())
}

func TestRenameCategory_CaseChangeAllowed(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	// Renaming a category onto a case-variant of itself is not a conflict
	err := store.RenameCategory("Desserts", "DESSERTS")
	assert.NoError(t, err)
	assert.Contains(t, store.Categories(), "DESSERTS")
}

func TestRecordSearch(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	store.RecordSearch("paneer")
	store.RecordSearch("naan")
	assert.Equal(t, []string{"naan", "paneer"}, store.SearchHistory())
}

func TestRecordSearch_ShortTermsIgnored(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	store.RecordSearch("a")
	store.RecordSearch("  x  ")
	store.RecordSearch("")
	assert.Empty(t, store.SearchHistory())
}

func TestRecordSearch_DuplicatesCollapse(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	store.RecordSearch("paneer")
	store.RecordSearch("naan")
	store.RecordSearch("PANEER")

	assert.Equal(t, []string{"PANEER", "naan"}, store.SearchHistory())
}

func TestRecordSearch_CappedAtFive(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)

	for _, term := range []string{"one", "two", "three", "four", "five", "six"} {
		store.RecordSearch(term)
	}

	history := store.SearchHistory()
	assert.Len(t, history, 5)
	assert.Equal(t, "six", history[0])
	assert.NotContains(t, history, "one")
}

func TestClearSearchHistory(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewMenuStore(db)
	store.RecordSearch("paneer")

	store.ClearSearchHistory()
	assert.Empty(t, store.SearchHistory())

	reloaded := NewMenuStore(db)
	assert.Empty(t, reloaded.SearchHistory())
}
