package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clothesguard/api/internal/model"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError is on in production too, so duplicate-key behavior
// matches across drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.SensorReading{},
		&model.Story{},
		&model.Notification{},
	))

	return db
}
