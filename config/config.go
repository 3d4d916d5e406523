package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lamanila-kanishka/pos-api/models"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL       string
	DatabasePath      string
	Port              string
	GoEnv             string
	ExportDir         string
	GeminiAPIKey      string
	GeminiEndpoint    string
	PrinterType       string
	PrinterAddress    string
	RestaurantName    string
	RestaurantAddress string
	RestaurantPhone   string
	RestaurantGstin   string
	LogLevel          string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DatabasePath:      getEnv("POS_DB_PATH", "pos.db"),
		Port:              getEnv("PORT", "8080"),
		GoEnv:             getEnv("GO_ENV", "development"),
		ExportDir:         getEnv("EXPORT_DIR", "exports"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiEndpoint:    getEnv("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
		PrinterType:       getEnv("PRINTER_TYPE", "file"),
		PrinterAddress:    getEnv("PRINTER_ADDRESS", ""),
		RestaurantName:    getEnv("RESTAURANT_NAME", "La Manila Kanishka"),
		RestaurantAddress: getEnv("RESTAURANT_ADDRESS", "Ranka Rd, near Banjhakri\nWaterfall, Lower, Luing\nGangtok, Sikkim 737103"),
		RestaurantPhone:   getEnv("RESTAURANT_PHONE", "9907975680"),
		RestaurantGstin:   getEnv("RESTAURANT_GSTIN", "11AALFL9987C1Z1"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	appConfig = config
	return config, nil
}

var appConfig *Config

// GetConfig returns the loaded configuration instance
func GetConfig() *Config {
	return appConfig
}

// SetConfig replaces the configuration instance (primarily for testing)
func SetConfig(c *Config) {
	appConfig = c
}

// Restaurant returns the restaurant identity stamped on receipts, exported
// documents and share messages.
func (c *Config) Restaurant() models.RestaurantDetails {
	return models.RestaurantDetails{
		Name:    c.RestaurantName,
		Address: c.RestaurantAddress,
		Phone:   c.RestaurantPhone,
		Gstin:   c.RestaurantGstin,
	}
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DatabasePath == "" {
		return fmt.Errorf("either DATABASE_URL or POS_DB_PATH is required")
	}
	switch c.PrinterType {
	case "network":
		if c.PrinterAddress == "" {
			return fmt.Errorf("PRINTER_ADDRESS is required when PRINTER_TYPE is network")
		}
	case "usb", "file", "none", "":
		// PrinterAddress is optional for these
	default:
		return fmt.Errorf("unknown PRINTER_TYPE %q", c.PrinterType)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
