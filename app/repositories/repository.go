package repositories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inkwell/app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Open opens (creating parent directories for) the SQLite database at path.
// An empty path creates a throwaway database in a temporary directory,
// which tests rely on for isolation.
func Open(path string) (*gorm.DB, error) {
	if path == "" {
		tempDir, err := os.MkdirTemp("", "inkwell_test_db_")
		if err != nil {
			return nil, fmt.Errorf("create temp dir: %w", err)
		}
		path = filepath.Join(tempDir, "posts.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if absent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{})
}

// isDuplicate reports whether err is a unique-constraint violation. GORM
// translates these to ErrDuplicatedKey; the string check covers SQLite
// driver errors that slip through untranslated.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
