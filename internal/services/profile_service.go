package services

import (
	"errors"
	"fmt"

	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/repository"
	"github.com/kaitoh/sns-api/internal/utils"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles profile business logic.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// CreateProfileInput holds the client-writable profile fields. The owner
// is not among them: it is always the authenticated caller.
type CreateProfileInput struct {
	Nickname string
	Img      *string
}

// Create persists a profile owned by the given user.
func (s *ProfileService) Create(userID uint64, input CreateProfileInput) (*models.Profile, error) {
	profile := &models.Profile{
		Nickname: input.Nickname,
		UserID:   userID,
		Img:      input.Img,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// List retrieves all profiles with pagination.
func (s *ProfileService) List(params utils.PaginationParams) ([]models.Profile, int64, error) {
	return s.profileRepo.List(params)
}

// ListMine retrieves the profiles owned by the caller. No profile is an
// empty list, not an error.
func (s *ProfileService) ListMine(userID uint64) ([]models.Profile, error) {
	return s.profileRepo.ListByUserID(userID)
}

// Get retrieves a profile by ID.
func (s *ProfileService) Get(id uint64) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// UpdateProfileInput holds the updatable profile fields. Nil means the
// field was absent from the request and keeps its stored value.
type UpdateProfileInput struct {
	Nickname *string
	Img      *string
}

// Update applies the given changes to a profile. Owner and creation
// timestamp are not updatable.
func (s *ProfileService) Update(id uint64, input UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Nickname != nil {
		profile.Nickname = *input.Nickname
	}
	if input.Img != nil {
		profile.Img = input.Img
	}

	if err := s.profileRepo.Save(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// Delete removes a profile by ID.
func (s *ProfileService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.profileRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
