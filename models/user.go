package models

import (
	"time"
)

const (
	RoleUser    = "user"
	RoleProUser = "pro_user"
	RoleAdmin   = "admin"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:user" json:"role"`

	ProfileCompleted bool    `json:"profileCompleted"`
	Age              int     `json:"age,omitempty"`
	Sex              string  `json:"sex,omitempty"`
	Height           float64 `json:"height,omitempty"`
	Weight           float64 `json:"weight,omitempty"`
	ActivityLevel    string  `json:"activityLevel,omitempty"`
	DietType         string  `json:"dietType,omitempty"`
	PrimaryGoal      string  `json:"primaryGoal,omitempty"`
}
