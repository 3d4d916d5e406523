package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lamanila-kanishka/pos-api/stores"
)

// AddOrderItemRequest represents the request body for adding a menu item to
// the current order
type AddOrderItemRequest struct {
	MenuItemID int `json:"menu_item_id" binding:"required"`
}

// UpdateQuantityRequest represents the request body for setting a line's
// quantity. Zero or negative removes the line, so the field is a pointer to
// distinguish 0 from absent.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdatePriceRequest represents the request body for a per-line price
// override
type UpdatePriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// GuestInfoRequest represents the request body for setting one scalar order
// field
type GuestInfoRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// GetCurrentOrder handles GET /api/v1/order - returns the live order
func GetCurrentOrder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetOrderStore().Current(),
	})
}

// AddOrderItem handles POST /api/v1/order/items - adds a catalog item to the
// order, incrementing the quantity of an existing line for the same item
func AddOrderItem(c *gin.Context) {
	var req AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A menu_item_id is required.",
				"details": err.Error(),
			},
		})
		return
	}

	item, ok := stores.GetMenuStore().FindItem(req.MenuItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ITEM_NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}

	order := stores.GetOrderStore().AddItem(item)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderItemQuantity handles PUT /api/v1/order/items/:id/quantity
func UpdateOrderItemQuantity(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid order item id",
			},
		})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A quantity is required.",
				"details": err.Error(),
			},
		})
		return
	}

	order := stores.GetOrderStore().UpdateQuantity(itemID, *req.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateOrderItemPrice handles PUT /api/v1/order/items/:id/price - applies a
// per-order price override to one line. Negative prices are rejected.
func UpdateOrderItemPrice(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid order item id",
			},
		})
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil || *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Price must be a number greater than or equal to zero.",
			},
		})
		return
	}

	order := stores.GetOrderStore().UpdateItemPrice(itemID, *req.Price)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ToggleNoCharge handles POST /api/v1/order/no-charge - flips the
// complimentary flag, zeroing or restoring the totals
func ToggleNoCharge(c *gin.Context) {
	order := stores.GetOrderStore().ToggleNC()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// UpdateGuestInfo handles PUT /api/v1/order/guest-info - sets one scalar
// field (guestName, mobileNo, roomNo, tableNo, staff, serviceTime,
// specialRequest)
func UpdateGuestInfo(c *gin.Context) {
	var req GuestInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A field name is required.",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := stores.GetOrderStore().SetGuestField(req.Field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ResetOrder handles POST /api/v1/order/reset - discards the current order
// and starts a fresh one
func ResetOrder(c *gin.Context) {
	order := stores.GetOrderStore().Reset()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// SaveOrder handles POST /api/v1/order/save - finalizes the current order.
// While offline the order snapshot is queued for later sync; either way the
// session continues with a fresh order.
func SaveOrder(c *gin.Context) {
	orderStore := stores.GetOrderStore()
	if len(orderStore.Current().Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_ORDER",
				"message": "Cannot save an empty order.",
			},
		})
		return
	}

	offline := stores.GetOfflineStore()
	saved := orderStore.Take()

	if offline.IsOnline() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"order":   saved,
				"queued":  false,
				"message": "Order " + saved.ID + " saved successfully!",
			},
		})
		return
	}

	offline.Enqueue(saved)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order":   saved,
			"queued":  true,
			"pending": offline.Pending(),
			"message": "App is offline. Order " + saved.ID + " saved locally for syncing later.",
		},
	})
}
