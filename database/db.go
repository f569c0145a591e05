package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"garment-flow/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured store. The default is the embedded
// single-file SQLite engine; DB_DRIVER=postgres switches to a server.
// TranslateError is on so constraint violations surface as gorm sentinels
// regardless of driver.
func Open() (*gorm.DB, error) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	default:
		return openSQLite(config.DBPath)
	}
}

// openSQLite opens the database file with foreign keys enforced. A file
// that no longer opens is backed up and replaced with a fresh one, so a
// corrupted store never keeps the factory floor offline.
func openSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	if err == nil {
		sqlDB, pingErr := db.DB()
		if pingErr == nil {
			if pingErr = sqlDB.Ping(); pingErr == nil {
				return db, nil
			}
		}
		err = pingErr
	}

	log.Printf("database file %s is unusable (%v), backing it up and starting fresh", path, err)
	backupPath := path + ".backup"
	if removeErr := os.Remove(backupPath); removeErr != nil && !os.IsNotExist(removeErr) {
		log.Printf("could not remove old backup: %v", removeErr)
	}
	if renameErr := os.Rename(path, backupPath); renameErr != nil {
		log.Printf("could not back up corrupted database: %v", renameErr)
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			return nil, fmt.Errorf("removing corrupted database: %w", removeErr)
		}
	}

	return gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{TranslateError: true})
}
