package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaitoh/sns-api/internal/dto"
	apierrors "github.com/kaitoh/sns-api/internal/errors"
	"github.com/kaitoh/sns-api/internal/middleware"
	"github.com/kaitoh/sns-api/internal/services"
	"github.com/kaitoh/sns-api/internal/utils"
)

// CommentHandler serves the /comment resource.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment creates a comment by the caller on an existing post. The
// commenter field is never read from the payload.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCommentRequest struct {
		Text string `json:"text" binding:"required,max=100"`
		Post uint64 `json:"post" binding:"required"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	comment, err := h.commentService.Create(userID, services.CreateCommentInput{
		Text:   req.Text,
		PostID: req.Post,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}

// ListComments returns all comments with pagination.
func (h *CommentHandler) ListComments(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	comments, total, err := h.commentService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentListResponse(comments, params.Page, params.Limit, total))
}

// GetComment returns a comment by id.
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(id)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTO(*comment))
}

// UpdateComment handles PUT and PATCH on a comment. The commenter is not
// writable.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateCommentRequest struct {
		Text *string `json:"text" binding:"omitempty,max=100"`
		Post *uint64 `json:"post"`
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	if c.Request.Method == http.MethodPut && (req.Text == nil || req.Post == nil) {
		details := map[string]string{}
		if req.Text == nil {
			details["text"] = "This field is required"
		}
		if req.Post == nil {
			details["post"] = "This field is required"
		}
		apierrors.BadRequestWithDetails(c, "Validation failed", details)
		return
	}

	comment, err := h.commentService.Update(id, services.UpdateCommentInput{
		Text:   req.Text,
		PostID: req.Post,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTO(*comment))
}

// DeleteComment removes a comment by id.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(id); err != nil {
		respondCommentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnknownPost):
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"post": "References an unknown post",
		})
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
