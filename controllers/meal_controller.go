package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DesaiVishal-16/Longevix/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals     *services.MealService
	dashboard *services.DashboardService
	hub       *services.RealtimeHub
}

func NewMealController(meals *services.MealService, dashboard *services.DashboardService, hub *services.RealtimeHub) *MealController {
	return &MealController{meals: meals, dashboard: dashboard, hub: hub}
}

func (mc *MealController) LogMeal(c *gin.Context) {
	var body struct {
		Name  string                   `json:"name" binding:"required"`
		Items []services.FoodItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	meal, err := mc.meals.CreateOrAppendMeal(c.Request.Context(), userID, body.Name, body.Items)
	if err != nil {
		mc.fail(c, err)
		return
	}

	mc.pushSummary(c, userID)
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) AddFood(c *gin.Context) {
	var body struct {
		Name string                 `json:"name" binding:"required"`
		Item services.FoodItemInput `json:"item"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	meal, err := mc.meals.AddFoodToMeal(c.Request.Context(), userID, body.Name, body.Item)
	if err != nil {
		mc.fail(c, err)
		return
	}

	mc.pushSummary(c, userID)
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, err := parseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	meals, err := mc.meals.ListMealsForDay(c.Request.Context(), c.GetUint("userID"), date)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	mealID, err := parseID(c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.meals.GetMealByID(c.Request.Context(), c.GetUint("userID"), mealID)
	if err != nil {
		mc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) RemoveFood(c *gin.Context) {
	mealID, err := parseID(c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	userID := c.GetUint("userID")
	meal, err := mc.meals.RemoveFoodItem(c.Request.Context(), userID, mealID, c.Param("foodId"))
	if err != nil {
		mc.fail(c, err)
		return
	}

	mc.pushSummary(c, userID)
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// pushSummary broadcasts today's refreshed dashboard summary to the user's
// websocket clients. Best effort; mutation responses never fail on it.
func (mc *MealController) pushSummary(c *gin.Context, userID uint) {
	summary, err := mc.dashboard.DailySummary(c.Request.Context(), userID, time.Now())
	if err != nil {
		return
	}
	mc.hub.Broadcast(userID, services.RealtimeEvent{Type: "meal.updated", Payload: summary})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, services.ErrInvalidInput
	}
	return uint(id), nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// date-only strings are interpreted in server-local time, matching the
	// bucket boundaries meals were filed under
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
