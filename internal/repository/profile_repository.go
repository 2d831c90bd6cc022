package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FindOrCreate returns the user's career profile, creating an empty one on
// first access so callers never deal with a missing row.
func (r *ProfileRepository) FindOrCreate(userID uint) (*model.CareerProfile, error) {
	var profile model.CareerProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.CareerProfile{UserID: userID}
		if err := r.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save persists the whole profile, including the JSON aggregate columns.
func (r *ProfileRepository) Save(profile *model.CareerProfile) error {
	return r.DB.Save(profile).Error
}
