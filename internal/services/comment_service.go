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
	ErrCommentNotFound = errors.New("comment not found")
	ErrUnknownPost     = errors.New("post references an unknown post")
)

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateCommentInput holds the client-writable comment fields. The
// commenter is not among them: it is always the authenticated caller.
type CreateCommentInput struct {
	Text   string
	PostID uint64
}

// Create persists a comment by the given user on the given post. The
// target post must exist.
func (s *CommentService) Create(userID uint64, input CreateCommentInput) (*models.Comment, error) {
	if err := s.checkPost(input.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   input.Text,
		UserID: userID,
		PostID: input.PostID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// List retrieves all comments with pagination.
func (s *CommentService) List(params utils.PaginationParams) ([]models.Comment, int64, error) {
	return s.commentRepo.List(params)
}

// Get retrieves a comment by ID.
func (s *CommentService) Get(id uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return comment, nil
}

// UpdateCommentInput holds the updatable comment fields. Nil means the
// field was absent from the request and keeps its stored value.
type UpdateCommentInput struct {
	Text   *string
	PostID *uint64
}

// Update applies the given changes to a comment. The commenter is not
// updatable; retargeting to another post revalidates the reference.
func (s *CommentService) Update(id uint64, input UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.PostID != nil {
		if err := s.checkPost(*input.PostID); err != nil {
			return nil, err
		}
		comment.PostID = *input.PostID
	}
	if input.Text != nil {
		comment.Text = *input.Text
	}

	if err := s.commentRepo.Save(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// Delete removes a comment by ID.
func (s *CommentService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) checkPost(postID uint64) error {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownPost
		}
		return fmt.Errorf("failed to check post: %w", err)
	}
	return nil
}
