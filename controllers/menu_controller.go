package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/services"
	"github.com/lamanila-kanishka/pos-api/stores"
)

// MenuItemRequest represents the request body for creating or editing a
// catalog item
type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	IsVeg       bool    `json:"isVeg"`
}

// RenameCategoryRequest represents the request body for renaming a category
type RenameCategoryRequest struct {
	OldName string `json:"old_name" binding:"required"`
	NewName string `json:"new_name" binding:"required"`
}

// GetMenuItems handles GET /api/v1/menu/items - lists the catalog, optionally
// filtered by category and by a case-insensitive name search, sorted by name
func GetMenuItems(c *gin.Context) {
	items := stores.GetMenuStore().Items()

	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    filtered,
	})
}

// GetMenuCategories handles GET /api/v1/menu/categories
func GetMenuCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetMenuStore().Categories(),
	})
}

// CreateMenuItem handles POST /api/v1/menu/items - adds a new catalog item
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Item name, price, and category are required.",
				"details": err.Error(),
			},
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Item name, price, and category are required.",
			},
		})
		return
	}

	item := stores.GetMenuStore().CreateItem(models.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Category:    category,
		IsVeg:       req.IsVeg,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// UpdateMenuItem handles PUT /api/v1/menu/items/:id - edits a catalog item in
// place. An edit to an item already in the active order propagates its
// fields into the matching line while keeping the quantity.
func UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid menu item id",
			},
		})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Item name, price, and category are required.",
				"details": err.Error(),
			},
		})
		return
	}

	item, err := stores.GetMenuStore().UpdateItem(models.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		IsVeg:       req.IsVeg,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ITEM_NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}

	// Propagate the edit into the live order, preserving line quantity.
	order := stores.GetOrderStore().ApplyMenuItem(item)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"item":  item,
			"order": order,
		},
	})
}

// RenameCategory handles PUT /api/v1/menu/categories - renames a category,
// cascading to every item carrying the old name
func RenameCategory(c *gin.Context) {
	var req RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Both old_name and new_name are required.",
				"details": err.Error(),
			},
		})
		return
	}

	if err := stores.GetMenuStore().RenameCategory(req.OldName, req.NewName); err != nil {
		if errors.Is(err, stores.ErrCategoryExists) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CATEGORY_EXISTS",
					"message": "Category \"" + strings.TrimSpace(req.NewName) + "\" already exists.",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Failed to rename category",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetMenuStore().Categories(),
	})
}

// SearchHistoryRequest represents the request body for recording a search
type SearchHistoryRequest struct {
	Term string `json:"term" binding:"required"`
}

// GetSearchHistory handles GET /api/v1/menu/search-history
func GetSearchHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetMenuStore().SearchHistory(),
	})
}

// RecordSearch handles POST /api/v1/menu/search-history - pushes a term onto
// the recent-search list
func RecordSearch(c *gin.Context) {
	var req SearchHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A search term is required.",
				"details": err.Error(),
			},
		})
		return
	}

	stores.GetMenuStore().RecordSearch(req.Term)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetMenuStore().SearchHistory(),
	})
}

// ClearSearchHistory handles DELETE /api/v1/menu/search-history
func ClearSearchHistory(c *gin.Context) {
	stores.GetMenuStore().ClearSearchHistory()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    []string{},
	})
}

// SuggestDescriptionRequest represents the request body for the AI
// description suggestion
type SuggestDescriptionRequest struct {
	Name string `json:"name" binding:"required"`
}

// suggestionPending guards the single in-flight suggestion request: a second
// call cannot be issued while one is pending.
var suggestionPending atomic.Bool

// SuggestDescription handles POST /api/v1/menu/items/suggest-description -
// asks the generative-text service for a menu description to prefill the
// form field
func SuggestDescription(c *gin.Context) {
	var req SuggestDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Please enter an item name first to get a suggestion.",
			},
		})
		return
	}

	if !suggestionPending.CompareAndSwap(false, true) {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUGGESTION_PENDING",
				"message": "A suggestion is already being generated.",
			},
		})
		return
	}
	defer suggestionPending.Store(false)

	description, err := services.GetSuggestionService().SuggestDescription(c.Request.Context(), strings.TrimSpace(req.Name))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "SUGGESTION_FAILED",
				"message": "Could not generate a suggestion. Please try again or write one manually.",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"description": description,
		},
	})
}
