package services

import (
	"context"
	"errors"
	"time"

	"github.com/DesaiVishal-16/Longevix/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CaloriesPerItem is credited for every logged food item until a real
// nutrient lookup replaces it. Removal subtracts the same flat amount.
const CaloriesPerItem = 150

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrMealNotFound = errors.New("meal not found")
)

// FoodItemInput is the wire shape of a logged food item. ID is optional and
// only used later to match the item for removal.
type FoodItemInput struct {
	ID             string             `json:"id"`
	Name           string             `json:"name" binding:"required"`
	Quantity       string             `json:"quantity"`
	Unit           string             `json:"unit"`
	Micronutrients map[string]float64 `json:"micronutrients"`
}

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// CreateOrAppendMeal folds foodItems into the aggregate for
// (userID, mealName, today). Items append in call order with no dedup, and
// the day bucket always comes from the server clock, not from the caller.
//
// The find-or-create runs inside a transaction; when two requests race for
// the same key, the unique (user_id, name, date) index rejects the second
// create and the duplicate-key retry appends to the winner's row instead.
func (s *MealService) CreateOrAppendMeal(ctx context.Context, userID uint, mealName string, foodItems []FoodItemInput) (*models.Meal, error) {
	if userID == 0 || mealName == "" {
		return nil, ErrInvalidInput
	}

	addedCalories := float64(CaloriesPerItem * len(foodItems))
	addedNutrients := sumItemNutrients(foodItems)
	day := startOfDay(time.Now())

	var mealID uint
	upsert := func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.
			Where("user_id = ? AND name = ? AND date >= ? AND date < ?",
				userID, mealName, day, day.Add(24*time.Hour)).
			First(&meal).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			meal = models.Meal{
				UserID:         userID,
				Name:           mealName,
				Date:           day,
				Items:          entriesFromInputs(foodItems),
				Calories:       addedCalories,
				Micronutrients: mergeNutrients(datatypes.JSONMap{}, addedNutrients),
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			entries := entriesFromInputs(foodItems)
			for i := range entries {
				entries[i].MealID = meal.ID
			}
			if len(entries) > 0 {
				if err := tx.Create(&entries).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&meal).Updates(map[string]interface{}{
				"calories":       gorm.Expr("calories + ?", addedCalories),
				"micronutrients": mergeNutrients(meal.Micronutrients, addedNutrients),
			}).Error; err != nil {
				return err
			}
		}
		mealID = meal.ID
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(upsert)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost the create race; the second pass finds the winner's row
		err = s.db.WithContext(ctx).Transaction(upsert)
	}
	if err != nil {
		return nil, err
	}
	return s.GetMealByID(ctx, userID, mealID)
}

// AddFoodToMeal logs a single item, with the same bucketing rules as
// CreateOrAppendMeal.
func (s *MealService) AddFoodToMeal(ctx context.Context, userID uint, mealName string, item FoodItemInput) (*models.Meal, error) {
	return s.CreateOrAppendMeal(ctx, userID, mealName, []FoodItemInput{item})
}

// ListMealsForDay returns the user's meals whose bucket date falls inside
// the day window around date. Rows come back in store order.
func (s *MealService) ListMealsForDay(ctx context.Context, userID uint, date time.Time) ([]models.Meal, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	start := startOfDay(date)

	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items", orderEntries).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, start.Add(24*time.Hour)).
		Find(&meals).Error
	return meals, err
}

// GetMealByID returns the meal only when it belongs to userID; a meal owned
// by someone else looks exactly like a missing one.
func (s *MealService) GetMealByID(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	if userID == 0 || mealID == 0 {
		return nil, ErrInvalidInput
	}
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items", orderEntries).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// RemoveFoodItem drops every entry matching foodItemID from the meal and
// takes a flat 150 kcal off the running total, whether or not anything
// matched. Micronutrient totals are left alone; the add path is their only
// writer.
func (s *MealService) RemoveFoodItem(ctx context.Context, userID, mealID uint, foodItemID string) (*models.Meal, error) {
	if userID == 0 || mealID == 0 || foodItemID == "" {
		return nil, ErrInvalidInput
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		err := tx.Where("id = ? AND user_id = ?", mealID, userID).First(&meal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		if err != nil {
			return err
		}

		if err := tx.
			Where("meal_id = ? AND item_id = ?", meal.ID, foodItemID).
			Delete(&models.FoodEntry{}).Error; err != nil {
			return err
		}

		return tx.Model(&meal).
			Update("calories", gorm.Expr("calories - ?", CaloriesPerItem)).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetMealByID(ctx, userID, mealID)
}

func orderEntries(db *gorm.DB) *gorm.DB {
	return db.Order("food_entries.id ASC")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sumItemNutrients(items []FoodItemInput) map[string]float64 {
	total := map[string]float64{}
	for _, it := range items {
		for k, v := range it.Micronutrients {
			total[k] += v
		}
	}
	return total
}

// mergeNutrients adds src amounts into dst, creating keys on first
// contribution. Values read back from the JSON column arrive as float64.
func mergeNutrients(dst datatypes.JSONMap, src map[string]float64) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for k, v := range dst {
		out[k] = toFloat(v)
	}
	for k, v := range src {
		cur, _ := out[k].(float64)
		out[k] = cur + v
	}
	return out
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func entriesFromInputs(items []FoodItemInput) []models.FoodEntry {
	entries := make([]models.FoodEntry, 0, len(items))
	for _, it := range items {
		var micros datatypes.JSONMap
		if len(it.Micronutrients) > 0 {
			micros = datatypes.JSONMap{}
			for k, v := range it.Micronutrients {
				micros[k] = v
			}
		}
		entries = append(entries, models.FoodEntry{
			ItemID:         it.ID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			Micronutrients: micros,
		})
	}
	return entries
}
