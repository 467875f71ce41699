package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the session store. A postgres URL selects the
// postgres driver; anything else is treated as a sqlite file path, which
// keeps development and CI free of external services.
func ConnectDatabase(cfg *Config) error {
	dsn := cfg.SessionDBURL
	if dsn == "" {
		dsn = "sessions.db"
		log.Println("SESSION_DB_URL not set, using default:", dsn)
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to session store: %w", err)
	}

	log.Println("Session store connection established successfully")
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
