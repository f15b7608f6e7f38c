package models

import (
	"time"

	"gorm.io/datatypes"
)

// Meal is the per-user, per-day, per-name nutritional aggregate. Date is
// normalized to local midnight so everything logged on the same calendar day
// lands in the same row; the composite unique index backs the find-or-create
// upsert in the meal service.
type Meal struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID         uint              `gorm:"not null;uniqueIndex:idx_meals_user_name_day" json:"userId"`
	Name           string            `gorm:"not null;uniqueIndex:idx_meals_user_name_day" json:"name"`
	Date           time.Time         `gorm:"not null;uniqueIndex:idx_meals_user_name_day" json:"date"`
	Items          []FoodEntry       `json:"items"`
	Calories       float64           `json:"calories"`
	Micronutrients datatypes.JSONMap `json:"micronutrients"`
}

// FoodEntry is one logged food item. ItemID is the identifier the client
// optionally sent with the item; removal matches on it and nothing else does.
// Quantity and unit are free text, no conversion happens server-side.
type FoodEntry struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	MealID         uint              `gorm:"index;not null" json:"-"`
	ItemID         string            `json:"id,omitempty"`
	Name           string            `gorm:"not null" json:"name"`
	Quantity       string            `json:"quantity"`
	Unit           string            `json:"unit"`
	Micronutrients datatypes.JSONMap `json:"micronutrients,omitempty"`
}
