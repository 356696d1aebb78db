// Package databasetest opens throwaway SQLite databases for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"api_drugstore/internal/config"
	"api_drugstore/internal/database"
)

// New opens a fresh on-disk SQLite database under t.TempDir, migrates the
// given models and closes it when the test ends. Concurrent writers wait for
// the lock instead of failing with SQLITE_BUSY.
func New(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "drugstore_test.db") + "?_pragma=busy_timeout(5000)"
	db, err := database.Open(context.Background(), config.DatabaseConfig{Driver: "sqlite", DSN: dsn})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db, models...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
