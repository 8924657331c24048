package repository

import (
	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/utils"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// Create persists a new profile
func (r *GormProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Save persists changes to an existing profile
func (r *GormProfileRepository) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// FindByID finds a profile by ID
func (r *GormProfileRepository) FindByID(id uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// List retrieves profiles with pagination
func (r *GormProfileRepository) List(params utils.PaginationParams) ([]models.Profile, int64, error) {
	var profiles []models.Profile

	query := r.db.Model(&models.Profile{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("profiles.id ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// ListByUserID retrieves the profiles owned by a user. An empty result is
// an empty slice, not an error.
func (r *GormProfileRepository) ListByUserID(userID uint64) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := r.db.Where("user_id = ?", userID).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Delete removes a profile
func (r *GormProfileRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Profile{}, id).Error
}
