package services

import (
	"errors"

	"github.com/DesaiVishal-16/Longevix/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewUserService(db *gorm.DB, log zerolog.Logger) *UserService {
	return &UserService{db: db, log: log}
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Error().Err(err).Uint("user_id", id).Msg("error finding user by id")
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, ErrInvalidInput
	}
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.log.Error().Err(err).Str("email", email).Msg("error finding user by email")
		return nil, err
	}
	return &user, nil
}

// Resolve tries the identifiers in order of reliability: id first, then
// email.
func (s *UserService) Resolve(id uint, email string) (*models.User, error) {
	if id != 0 {
		user, err := s.FindByID(id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}
	if email != "" {
		return s.FindByEmail(email)
	}
	return nil, ErrUserNotFound
}

type ProfileInput struct {
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	ActivityLevel *string  `json:"activityLevel"`
	DietType      *string  `json:"dietType"`
	PrimaryGoal   *string  `json:"primaryGoal"`
}

// UpdateProfile applies the provided fields and marks the profile completed.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Sex != nil {
		user.Sex = *input.Sex
	}
	if input.Height != nil {
		user.Height = *input.Height
	}
	if input.Weight != nil {
		user.Weight = *input.Weight
	}
	if input.ActivityLevel != nil {
		user.ActivityLevel = *input.ActivityLevel
	}
	if input.DietType != nil {
		user.DietType = *input.DietType
	}
	if input.PrimaryGoal != nil {
		user.PrimaryGoal = *input.PrimaryGoal
	}
	user.ProfileCompleted = true

	if err := s.db.Save(user).Error; err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Msg("failed to update profile")
		return nil, err
	}
	return user, nil
}
