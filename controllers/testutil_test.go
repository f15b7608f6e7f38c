package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DesaiVishal-16/Longevix/config"
	"github.com/DesaiVishal-16/Longevix/models"
	"github.com/DesaiVishal-16/Longevix/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Env.JWTSecret = "test-secret"
}

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

// asUser stands in for the auth middleware in handler tests.
func asUser(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
	}
}

func newMealRouter(t *testing.T, db *gorm.DB, userID uint) (*gin.Engine, *services.RealtimeHub) {
	t.Helper()
	hub := services.NewRealtimeHub()
	mc := NewMealController(services.NewMealService(db), services.NewDashboardService(db), hub)
	dc := NewDashboardController(services.NewDashboardService(db))

	r := gin.New()
	auth := r.Group("/", asUser(userID, models.RoleUser))
	auth.POST("/meals", mc.LogMeal)
	auth.GET("/meals", mc.ListMeals)
	auth.GET("/meals/:mealId", mc.GetMeal)
	auth.POST("/meals/food", mc.AddFood)
	auth.DELETE("/meals/:mealId/food/:foodId", mc.RemoveFood)
	auth.GET("/dashboard/summary", dc.Summary)
	return r, hub
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testLogger() zerolog.Logger { return zerolog.Nop() }
