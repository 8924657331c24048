package dto

import (
	"github.com/kaitoh/sns-api/internal/models"
)

// CommentDTO represents a comment in API responses. user_id is the
// commenter, system-assigned on create.
type CommentDTO struct {
	ID     uint64 `json:"id"`
	Text   string `json:"text"`
	UserID uint64 `json:"user_id"`
	PostID uint64 `json:"post_id"`
}

// CommentListResponse represents a paginated list of comments
type CommentListResponse struct {
	Comments   []CommentDTO `json:"comments"`
	Pagination Pagination   `json:"pagination"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:     comment.ID,
		Text:   comment.Text,
		UserID: comment.UserID,
		PostID: comment.PostID,
	}
}

// ToCommentDTOs converts a slice of comments
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToCommentDTO(comment)
	}
	return dtos
}

// ToCommentListResponse converts a slice of comments to a paginated response
func ToCommentListResponse(comments []models.Comment, page, limit int, total int64) CommentListResponse {
	return CommentListResponse{
		Comments: ToCommentDTOs(comments),
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}
