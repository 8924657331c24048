// Package dto defines the wire schemas. Each response DTO whitelists the
// fields an entity exposes on read; anything not listed (password hashes,
// permission flags) never reaches the client.
package dto

import (
	"github.com/kaitoh/sns-api/internal/models"
)

// DateFormat is how creation timestamps are rendered.
const DateFormat = "2006-01-02"

// UserDTO represents a user in API responses. The password is write-only
// and deliberately absent.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
	}
}
