package services

import (
	"errors"
	"fmt"

	"github.com/kaitoh/sns-api/internal/models"
	"github.com/kaitoh/sns-api/internal/repository"
	"github.com/kaitoh/sns-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrUnknownLikedUser = errors.New("liked references an unknown user")
)

// PostService handles post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePostInput holds the client-writable post fields. The author is
// not among them: it is always the authenticated caller.
type CreatePostInput struct {
	Title string
	Img   *string
	Liked []uint64
}

// Create persists a post authored by the given user. The liked set
// defaults to empty; every referenced user must exist.
func (s *PostService) Create(userID uint64, input CreatePostInput) (*models.Post, error) {
	if err := s.checkLikedUsers(input.Liked); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:  input.Title,
		UserID: userID,
		Img:    input.Img,
	}

	if err := s.postRepo.Create(post, input.Liked); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Reload so the rendered liked set reflects what was persisted.
	return s.Get(post.ID)
}

// List retrieves all posts with pagination.
func (s *PostService) List(params utils.PaginationParams) ([]models.Post, int64, error) {
	return s.postRepo.List(params)
}

// Get retrieves a post by ID with its liked set.
func (s *PostService) Get(id uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// UpdatePostInput holds the updatable post fields. Nil means the field
// was absent from the request and keeps its stored value. Liked replaces
// the whole set when present, which is how likes are toggled.
type UpdatePostInput struct {
	Title *string
	Img   *string
	Liked *[]uint64
}

// Update applies the given changes to a post. Author and creation
// timestamp are not updatable.
func (s *PostService) Update(id uint64, input UpdatePostInput) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Liked != nil {
		if err := s.checkLikedUsers(*input.Liked); err != nil {
			return nil, err
		}
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Img != nil {
		post.Img = input.Img
	}

	if err := s.postRepo.Save(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if input.Liked != nil {
		if err := s.postRepo.ReplaceLiked(post, *input.Liked); err != nil {
			return nil, fmt.Errorf("failed to update liked set: %w", err)
		}
	}

	return s.Get(id)
}

// Delete removes a post by ID.
func (s *PostService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.postRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *PostService) checkLikedUsers(ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}

	unique := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	distinct := make([]uint64, 0, len(unique))
	for id := range unique {
		distinct = append(distinct, id)
	}

	count, err := s.userRepo.CountByIDs(distinct)
	if err != nil {
		return fmt.Errorf("failed to check liked users: %w", err)
	}
	if count != int64(len(distinct)) {
		return ErrUnknownLikedUser
	}
	return nil
}
