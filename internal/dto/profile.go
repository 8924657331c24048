package dto

import (
	"github.com/kaitoh/sns-api/internal/models"
)

// ProfileDTO represents a profile in API responses. user_id is the owner,
// system-assigned on create; created_on is rendered as YYYY-MM-DD.
type ProfileDTO struct {
	ID        uint64  `json:"id"`
	Nickname  string  `json:"nickname"`
	UserID    uint64  `json:"user_id"`
	CreatedOn string  `json:"created_on"`
	Img       *string `json:"img"`
}

// ProfileListResponse represents a paginated list of profiles
type ProfileListResponse struct {
	Profiles   []ProfileDTO `json:"profiles"`
	Pagination Pagination   `json:"pagination"`
}

// ToProfileDTO converts a Profile model to ProfileDTO
func ToProfileDTO(profile models.Profile) ProfileDTO {
	return ProfileDTO{
		ID:        profile.ID,
		Nickname:  profile.Nickname,
		UserID:    profile.UserID,
		CreatedOn: profile.CreatedOn.Format(DateFormat),
		Img:       profile.Img,
	}
}

// ToProfileDTOs converts a slice of profiles
func ToProfileDTOs(profiles []models.Profile) []ProfileDTO {
	dtos := make([]ProfileDTO, len(profiles))
	for i, profile := range profiles {
		dtos[i] = ToProfileDTO(profile)
	}
	return dtos
}

// ToProfileListResponse converts a slice of profiles to a paginated response
func ToProfileListResponse(profiles []models.Profile, page, limit int, total int64) ProfileListResponse {
	return ProfileListResponse{
		Profiles: ToProfileDTOs(profiles),
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}
