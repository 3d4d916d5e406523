package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POS_DB_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("PRINTER_TYPE", "")
	t.Setenv("GEMINI_ENDPOINT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "pos.db", cfg.DatabasePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test", cfg.GoEnv)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "file", cfg.PrinterType)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiEndpoint)
	assert.Equal(t, "La Manila Kanishka", cfg.RestaurantName)

	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
	assert.Same(t, cfg, GetConfig())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("POS_DB_PATH", "/tmp/pos-test.db")
	t.Setenv("RESTAURANT_NAME", "Test Kitchen")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/pos-test.db", cfg.DatabasePath)
	assert.Equal(t, "Test Kitchen", cfg.Restaurant().Name)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "sqlite path only",
			config: Config{DatabasePath: "pos.db", PrinterType: "file"},
		},
		{
			name:   "database url only",
			config: Config{DatabaseURL: "postgres://localhost/pos", PrinterType: "none"},
		},
		{
			name:        "no database at all",
			config:      Config{PrinterType: "file"},
			expectError: true,
		},
		{
			name:   "network printer with address",
			config: Config{DatabasePath: "pos.db", PrinterType: "network", PrinterAddress: "192.168.1.50:9100"},
		},
		{
			name:        "network printer without address",
			config:      Config{DatabasePath: "pos.db", PrinterType: "network"},
			expectError: true,
		},
		{
			name:        "unknown printer type",
			config:      Config{DatabasePath: "pos.db", PrinterType: "fax"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	SetDB(db)
	assert.Same(t, db, GetDB())
}

func TestConnectDatabase_Sqlite(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POS_DB_PATH", t.TempDir()+"/pos-test.db")

	assert.NoError(t, ConnectDatabase())
	assert.NotNil(t, GetDB())

	sqlDB, err := GetDB().DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
