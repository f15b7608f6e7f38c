package controllers

import (
	"net/http"
	"time"

	"github.com/DesaiVishal-16/Longevix/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Summary returns the day's intake totals; the date query param defaults to
// today.
func (dc *DashboardController) Summary(c *gin.Context) {
	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD or RFC3339"})
			return
		}
		date = parsed
	}

	summary, err := dc.dashboard.DailySummary(c.Request.Context(), c.GetUint("userID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
