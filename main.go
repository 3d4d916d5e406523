package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lamanila-kanishka/pos-api/config"
	"github.com/lamanila-kanishka/pos-api/controllers"
	"github.com/lamanila-kanishka/pos-api/middleware"
	"github.com/lamanila-kanishka/pos-api/models"
	"github.com/lamanila-kanishka/pos-api/services"
	"github.com/lamanila-kanishka/pos-api/stores"
)

func main() {
	// Basic logging
	log.Println("Starting POS API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize stores and services
	stores.Init(db)
	services.InitDocumentService(cfg.Restaurant(), cfg.ExportDir)
	services.InitSuggestionService(cfg.GeminiAPIKey, cfg.GeminiEndpoint)

	printer, err := services.NewPrinterFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to set up printer: %v", err)
	}
	services.InitPrintService(printer)

	// Sync any orders left in the offline queue from a previous session
	if synced := stores.GetOfflineStore().FlushIfOnline(); len(synced) > 0 {
		log.Printf("Synced %d offline order(s) from a previous session", len(synced))
	}

	// Initialize Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Menu catalog
		v1.GET("/menu/items", controllers.GetMenuItems)
		v1.POST("/menu/items", controllers.CreateMenuItem)
		v1.PUT("/menu/items/:id", controllers.UpdateMenuItem)
		v1.GET("/menu/categories", controllers.GetMenuCategories)
		v1.PUT("/menu/categories", controllers.RenameCategory)
		v1.GET("/menu/search-history", controllers.GetSearchHistory)
		v1.POST("/menu/search-history", controllers.RecordSearch)
		v1.DELETE("/menu/search-history", controllers.ClearSearchHistory)
		v1.POST("/menu/items/suggest-description", controllers.SuggestDescription)

		// Current order
		v1.GET("/order", controllers.GetCurrentOrder)
		v1.POST("/order/items", controllers.AddOrderItem)
		v1.PUT("/order/items/:id/quantity", controllers.UpdateOrderItemQuantity)
		v1.PUT("/order/items/:id/price", controllers.UpdateOrderItemPrice)
		v1.POST("/order/no-charge", controllers.ToggleNoCharge)
		v1.PUT("/order/guest-info", controllers.UpdateGuestInfo)
		v1.POST("/order/reset", controllers.ResetOrder)
		v1.POST("/order/save", controllers.SaveOrder)

		// Documents: receipts, printing, PDF, sharing
		v1.GET("/order/receipt", controllers.GetReceipt)
		v1.POST("/order/print", controllers.PrintOrder)
		v1.POST("/order/print/:jobID/complete", controllers.CompletePrint)
		v1.POST("/order/print/:jobID/cancel", controllers.CancelPrint)
		v1.POST("/order/pdf", controllers.ExportPDF)
		v1.GET("/order/share", controllers.ShareOrder)

		// Settings
		v1.GET("/settings/print", controllers.GetPrintSettings)
		v1.PUT("/settings/print", controllers.UpdatePrintSetting)
		v1.GET("/settings/staff", controllers.GetStaffList)
		v1.PUT("/settings/staff", controllers.UpdateStaffList)

		// Offline sync
		v1.GET("/sync/status", controllers.GetSyncStatus)
		v1.GET("/sync/queue", controllers.GetOfflineOrders)
		v1.PUT("/sync/connectivity", controllers.UpdateConnectivity)
	}

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "POS API is running",
	})
}
