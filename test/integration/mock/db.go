// Package mock provides test doubles for the integration suite.
package mock

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/account-gate/backend/config"
	"github.com/account-gate/backend/internal/infra/db"
)

var (
	once      sync.Once
	shared    *Db
	sharedErr error
)

// Db is a shared in-memory SQLite database opened through the application's
// connection code, so driver error translation matches production.
type Db struct {
	Database *db.Database
	DbConn   *gorm.DB
	models   map[string]any
}

// NewDb opens the shared database on first use and migrates the given models,
// keyed by table name.
func NewDb(models map[string]any) (*Db, error) {
	once.Do(func() {
		shared, sharedErr = open(models)
	})
	return shared, sharedErr
}

func open(models map[string]any) (*Db, error) {
	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver: db.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		return nil, err
	}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := database.AutoMigrate(modelList...); err != nil {
		return nil, err
	}

	return &Db{
		Database: database,
		DbConn:   database.DB(),
		models:   models,
	}, nil
}

// ClearDB deletes every row from every registered table.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
