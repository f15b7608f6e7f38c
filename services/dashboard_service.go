package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardService summarizes a day's intake for the mobile dashboard.
type DashboardService struct {
	meals *MealService
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{meals: NewMealService(db)}
}

type MealBreakdown struct {
	MealID   uint    `json:"mealId"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Items    int     `json:"items"`
}

type DaySummary struct {
	Date           string             `json:"date"`
	Calories       float64            `json:"calories"`
	Micronutrients map[string]float64 `json:"micronutrients"`
	Meals          []MealBreakdown    `json:"meals"`
}

// DailySummary sums the running meal aggregates for the day. It reports
// exactly what the aggregates hold and never recomputes from item level.
func (s *DashboardService) DailySummary(ctx context.Context, userID uint, date time.Time) (*DaySummary, error) {
	meals, err := s.meals.ListMealsForDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	out := &DaySummary{
		Date:           startOfDay(date).Format("2006-01-02"),
		Micronutrients: map[string]float64{},
		Meals:          make([]MealBreakdown, 0, len(meals)),
	}
	for _, m := range meals {
		out.Calories += m.Calories
		for k, v := range m.Micronutrients {
			out.Micronutrients[k] += toFloat(v)
		}
		out.Meals = append(out.Meals, MealBreakdown{
			MealID:   m.ID,
			Name:     m.Name,
			Calories: m.Calories,
			Items:    len(m.Items),
		})
	}
	return out, nil
}
