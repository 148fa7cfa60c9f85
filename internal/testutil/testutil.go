// Package testutil wires tests to a throwaway in-memory database.
package testutil

import (
	"testing"

	"studyhive/internal/db"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB points the global database handle at a fresh in-memory
// sqlite instance with the full schema migrated. Each call gets its
// own database; the shared cache keeps it alive across pooled
// connections for the duration of the test.
func SetupDB(t *testing.T) {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(g); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = g
}
