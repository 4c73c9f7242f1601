package persistence

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/account-gate/backend/config"
	"github.com/account-gate/backend/internal/infra/db"
	"github.com/account-gate/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory SQLite database with all tables migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return database.DB()
}
