package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the local on-device store. By default this is a
// sqlite file next to the binary; when DATABASE_URL is set a PostgreSQL
// backend is used instead.
func ConnectDatabase() error {
	var err error

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("Database connection established (postgres)")
		return nil
	}

	dbPath := os.Getenv("POS_DB_PATH")
	if dbPath == "" {
		dbPath = "pos.db"
		log.Println("POS_DB_PATH not set, using default:", dbPath)
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open local store %s: %w", dbPath, err)
	}

	log.Println("Local store opened:", dbPath)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
