package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lamanila-kanishka/pos-api/config"
	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/receipt"
	"github.com/lamanila-kanishka/pos-api/services"
	"github.com/lamanila-kanishka/pos-api/stores"
)

// DocumentRequest represents the request body for print and PDF actions
type DocumentRequest struct {
	Type string `json:"type" binding:"required"`
}

// restaurantDetails resolves the restaurant identity for rendering.
func restaurantDetails() models.RestaurantDetails {
	if cfg := config.GetConfig(); cfg != nil {
		return cfg.Restaurant()
	}
	return models.DefaultRestaurant()
}

// requireKind parses the document kind from a string, writing the error
// response itself when invalid.
func requireKind(c *gin.Context, raw string) (receipt.Kind, bool) {
	kind, err := receipt.ParseKind(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Document type must be \"kot\" or \"bill\".",
			},
		})
		return "", false
	}
	return kind, true
}

// GetReceipt handles GET /api/v1/order/receipt?type=kot|bill - renders the
// current order as fixed-width receipt text
func GetReceipt(c *gin.Context) {
	kind, ok := requireKind(c, c.Query("type"))
	if !ok {
		return
	}

	order := stores.GetOrderStore().Current()
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_ORDER",
				"message": "Cannot print an empty " + string(kind) + ".",
			},
		})
		return
	}

	text := receipt.Generate(order, kind, stores.GetSettingsStore().PrintSettings(), restaurantDetails())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"type": kind,
			"text": text,
		},
	})
}

// PrintOrder handles POST /api/v1/order/print - renders the current order
// and sends it to the configured printer. The returned job must be completed
// or cancelled before another print can start.
func PrintOrder(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A document type is required.",
				"details": err.Error(),
			},
		})
		return
	}
	kind, ok := requireKind(c, req.Type)
	if !ok {
		return
	}

	order := stores.GetOrderStore().Current()
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_ORDER",
				"message": "Cannot print an empty " + string(kind) + ".",
			},
		})
		return
	}

	job, err := services.GetPrintService().Start(order, kind, stores.GetSettingsStore().PrintSettings(), restaurantDetails())
	if err != nil {
		if errors.Is(err, services.ErrPrintBusy) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PRINT_BUSY",
					"message": "A print job is already in progress.",
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRINTER_ERROR",
				"message": "Failed to send the document to the printer.",
			},
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data":    job,
	})
}

// CompletePrint handles POST /api/v1/order/print/:jobID/complete - the
// platform completion signal, clearing the pending document
func CompletePrint(c *gin.Context) {
	if err := services.GetPrintService().Complete(c.Param("jobID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "JOB_NOT_FOUND",
				"message": err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// CancelPrint handles POST /api/v1/order/print/:jobID/cancel
func CancelPrint(c *gin.Context) {
	if err := services.GetPrintService().Cancel(c.Param("jobID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "JOB_NOT_FOUND",
				"message": err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// ExportPDF handles POST /api/v1/order/pdf - renders the current order into
// a styled PDF document saved locally
func ExportPDF(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A document type is required.",
				"details": err.Error(),
			},
		})
		return
	}
	kind, ok := requireKind(c, req.Type)
	if !ok {
		return
	}

	order := stores.GetOrderStore().Current()
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_ORDER",
				"message": "Cannot generate " + string(kind) + ". The order is empty.",
			},
		})
		return
	}

	path, err := services.GetDocumentService().ExportOrder(order, kind, stores.GetSettingsStore().PrintSettings())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_ERROR",
				"message": "Failed to generate the document.",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"type": kind,
			"file": path,
		},
	})
}

// ShareOrder handles GET /api/v1/order/share?type=kot|bill - builds the
// plain-text message and messaging deep link for the current order. Sharing
// a bill requires a guest mobile number.
func ShareOrder(c *gin.Context) {
	kind, ok := requireKind(c, c.Query("type"))
	if !ok {
		return
	}

	order := stores.GetOrderStore().Current()
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_ORDER",
				"message": "Cannot share an empty " + string(kind) + ".",
			},
		})
		return
	}

	restaurant := restaurantDetails()

	if kind == receipt.KindKOT {
		message := services.BuildKOTMessage(order, restaurant.Name)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"type":    kind,
				"message": message,
				"url":     services.KOTShareLink(message),
			},
		})
		return
	}

	if order.MobileNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_MOBILE",
				"message": "Please enter a guest mobile number to share.",
			},
		})
		return
	}
	phone := services.NormalizePhone(order.MobileNo)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_MOBILE",
				"message": "Please enter a valid mobile number.",
			},
		})
		return
	}

	message := services.BuildBillMessage(order, restaurant.Name)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"type":    kind,
			"phone":   phone,
			"message": message,
			"url":     services.BillShareLink(phone, message),
		},
	})
}
