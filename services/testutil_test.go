package services

import (
	"testing"

	"github.com/DesaiVishal-16/Longevix/config"
	"github.com/DesaiVishal-16/Longevix/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	config.Env.JWTSecret = "test-secret"
}

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every session on the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}, &models.FoodEntry{}))
	return db
}

// micro reads one accumulated value out of a meal's JSON nutrient column.
func micro(m *models.Meal, key string) float64 {
	return toFloat(m.Micronutrients[key])
}
