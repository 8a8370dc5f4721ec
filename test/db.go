package test

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/database"
	"anvaya-club/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a migrated in-memory SQLite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{
		Mode:     config.ModeTest,
		Database: config.Database{Driver: "sqlite", URL: ":memory:"},
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateWing(t *testing.T, db *gorm.DB, slug, name string) model.Wing {
	t.Helper()
	wing := model.Wing{
		Name:    name,
		Slug:    slug,
		About:   name + " is a wing of the club.",
		Vision:  "Vision of " + name,
		Mission: "Mission of " + name,
	}
	require.NoError(t, db.Create(&wing).Error)
	return wing
}
