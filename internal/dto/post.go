package dto

import (
	"github.com/kaitoh/sns-api/internal/models"
)

// PostDTO represents a post in API responses. user_id is the author,
// system-assigned on create; liked is the set of user ids who liked the
// post, empty by default.
type PostDTO struct {
	ID        uint64   `json:"id"`
	Title     string   `json:"title"`
	UserID    uint64   `json:"user_id"`
	CreatedOn string   `json:"created_on"`
	Img       *string  `json:"img"`
	Liked     []uint64 `json:"liked"`
}

// PostListResponse represents a paginated list of posts
type PostListResponse struct {
	Posts      []PostDTO  `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	liked := make([]uint64, len(post.Liked))
	for i, user := range post.Liked {
		liked[i] = user.ID
	}

	return PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		UserID:    post.UserID,
		CreatedOn: post.CreatedOn.Format(DateFormat),
		Img:       post.Img,
		Liked:     liked,
	}
}

// ToPostDTOs converts a slice of posts
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToPostDTO(post)
	}
	return dtos
}

// ToPostListResponse converts a slice of posts to a paginated response
func ToPostListResponse(posts []models.Post, page, limit int, total int64) PostListResponse {
	return PostListResponse{
		Posts: ToPostDTOs(posts),
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}
