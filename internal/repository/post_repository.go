package repository

import (
	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/utils"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create persists a new post and its initial liked set in one transaction
func (r *GormPostRepository) Create(post *models.Post, likedIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}

		if len(likedIDs) > 0 {
			if err := tx.Model(post).Association("Liked").Append(likedUsers(likedIDs)); err != nil {
				return err
			}
		}

		return nil
	})
}

// Save persists changes to an existing post. The liked association is
// managed separately through ReplaceLiked.
func (r *GormPostRepository) Save(post *models.Post) error {
	return r.db.Omit("Liked").Save(post).Error
}

// ReplaceLiked replaces the post's liked set
func (r *GormPostRepository) ReplaceLiked(post *models.Post, likedIDs []uint64) error {
	return r.db.Model(post).Association("Liked").Replace(likedUsers(likedIDs))
}

// FindByID finds a post by ID with its liked set preloaded
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Liked").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves posts with pagination
func (r *GormPostRepository) List(params utils.PaginationParams) ([]models.Post, int64, error) {
	var posts []models.Post

	query := r.db.Model(&models.Post{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Liked").
		Order("posts.id ASC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Delete removes a post. Comments and like rows follow via cascade.
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// likedUsers builds association stubs carrying only the user IDs, so that
// Append/Replace write join rows without touching the users table.
func likedUsers(ids []uint64) []models.User {
	users := make([]models.User, len(ids))
	for i, id := range ids {
		users[i] = models.User{ID: id}
	}
	return users
}
