package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lamanila-kanishka/pos-api/stores"
)

// UpdatePrintSettingRequest represents the request body for toggling a
// single receipt visibility flag
type UpdatePrintSettingRequest struct {
	Name  string `json:"name" binding:"required"`
	Value *bool  `json:"value" binding:"required"`
}

// UpdateStaffListRequest represents the request body for replacing the
// staff roster
type UpdateStaffListRequest struct {
	Staff []string `json:"staff" binding:"required"`
}

// GetPrintSettings handles GET /api/v1/settings/print
func GetPrintSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetSettingsStore().PrintSettings(),
	})
}

// UpdatePrintSetting handles PUT /api/v1/settings/print - flips one
// visibility flag by name
func UpdatePrintSetting(c *gin.Context) {
	var req UpdatePrintSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A setting name and value are required.",
				"details": err.Error(),
			},
		})
		return
	}

	settings, err := stores.GetSettingsStore().UpdateFlag(req.Name, *req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_SETTING",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    settings,
	})
}

// GetStaffList handles GET /api/v1/settings/staff
func GetStaffList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetSettingsStore().StaffList(),
	})
}

// UpdateStaffList handles PUT /api/v1/settings/staff - replaces the roster
// wholesale. Blank entries are discarded; at least one name must remain.
func UpdateStaffList(c *gin.Context) {
	var req UpdateStaffListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A staff list is required.",
				"details": err.Error(),
			},
		})
		return
	}

	hasName := false
	for _, name := range req.Staff {
		if strings.TrimSpace(name) != "" {
			hasName = true
			break
		}
	}
	if !hasName {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "The staff list must contain at least one name.",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stores.GetSettingsStore().ReplaceStaffList(req.Staff),
	})
}
