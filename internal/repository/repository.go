package repository

import (
	"errors"

	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/utils"
)

// ErrDuplicateEmail is returned when the store's unique constraint on the
// email column rejects a write. Uniqueness is enforced only here, not by
// domain logic.
var ErrDuplicateEmail = errors.New("user repository: email already registered")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *models.User) error

	// Save persists changes to an existing user
	Save(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Delete removes a user; dependent rows go with it via the store's
	// cascade rules
	Delete(id uint64) error

	// CountByIDs counts how many of the given user IDs exist
	CountByIDs(ids []uint64) (int64, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Create persists a new profile
	Create(profile *models.Profile) error

	// Save persists changes to an existing profile
	Save(profile *models.Profile) error

	// FindByID finds a profile by ID
	FindByID(id uint64) (*models.Profile, error)

	// List retrieves profiles with pagination
	List(params utils.PaginationParams) ([]models.Profile, int64, error)

	// ListByUserID retrieves the profiles owned by a user
	ListByUserID(userID uint64) ([]models.Profile, error)

	// Delete removes a profile
	Delete(id uint64) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create persists a new post along with its initial liked set
	Create(post *models.Post, likedIDs []uint64) error

	// Save persists changes to an existing post
	Save(post *models.Post) error

	// ReplaceLiked replaces the post's liked set
	ReplaceLiked(post *models.Post, likedIDs []uint64) error

	// FindByID finds a post by ID with its liked set preloaded
	FindByID(id uint64) (*models.Post, error)

	// List retrieves posts with pagination
	List(params utils.PaginationParams) ([]models.Post, int64, error)

	// Delete removes a post
	Delete(id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create persists a new comment
	Create(comment *models.Comment) error

	// Save persists changes to an existing comment
	Save(comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(id uint64) (*models.Comment, error)

	// List retrieves comments with pagination
	List(params utils.PaginationParams) ([]models.Comment, int64, error)

	// Delete removes a comment
	Delete(id uint64) error
}
