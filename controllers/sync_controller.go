package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lamanila-kanishka/pos-api/stores"
)

// ConnectivityRequest represents the request body for reporting the app's
// connectivity state
type ConnectivityRequest struct {
	Online *bool `json:"online" binding:"required"`
}

// GetSyncStatus handles GET /api/v1/sync/status
func GetSyncStatus(c *gin.Context) {
	queue := stores.GetOfflineStore()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"online":  queue.IsOnline(),
			"pending": queue.Pending(),
		},
	})
}

// GetOfflineOrders handles GET /api/v1/sync/queue - lists orders saved
// while offline and awaiting sync
func GetOfflineOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetOfflineStore().Orders(),
	})
}

// UpdateConnectivity handles PUT /api/v1/sync/connectivity - reports a
// connectivity change. Coming back online drains the offline queue.
func UpdateConnectivity(c *gin.Context) {
	var req ConnectivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "An online flag is required.",
				"details": err.Error(),
			},
		})
		return
	}

	queue := stores.GetOfflineStore()
	synced := queue.SetOnline(*req.Online)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"online":  queue.IsOnline(),
			"synced":  len(synced),
			"pending": queue.Pending(),
		},
	})
}
