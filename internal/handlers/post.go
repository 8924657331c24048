package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/kaitoh/sns-api/internal/dto"
	apierrors "github.com/kaitoh/sns-api/internal/errors"
	"github.com/kaitoh/sns-api/internal/middleware"
	"github.com/kaitoh/sns-api/internal/services"
	"github.com/kaitoh/sns-api/internal/utils"
)

// PostHandler serves the /post resource.
type PostHandler struct {
	postService *services.PostService
	mediaDir    string
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService, mediaDir string) *PostHandler {
	return &PostHandler{
		postService: postService,
		mediaDir:    mediaDir,
	}
}

// CreatePost creates a post authored by the caller. The author field is
// never read from the payload.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreatePostRequest struct {
		Title string   `json:"title" binding:"required,max=100"`
		Img   *string  `json:"img" binding:"omitempty,max=255"`
		Liked []uint64 `json:"liked"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	post, err := h.postService.Create(userID, services.CreatePostInput{
		Title: req.Title,
		Img:   req.Img,
		Liked: req.Liked,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostDTO(*post))
}

// ListPosts returns all posts with pagination.
func (h *PostHandler) ListPosts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	posts, total, err := h.postService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostListResponse(posts, params.Page, params.Limit, total))
}

// GetPost returns a post by id with its liked set.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// UpdatePost handles PUT and PATCH on a post. A liked array replaces the
// whole liked set; that is how likes are toggled. Author and created_on
// are not writable.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdatePostRequest struct {
		Title *string   `json:"title" binding:"omitempty,max=100"`
		Img   *string   `json:"img" binding:"omitempty,max=255"`
		Liked *[]uint64 `json:"liked"`
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	if c.Request.Method == http.MethodPut && req.Title == nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"title": "This field is required",
		})
		return
	}

	post, err := h.postService.Update(id, services.UpdatePostInput{
		Title: req.Title,
		Img:   req.Img,
		Liked: req.Liked,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

// DeletePost removes a post by id. Its comments and like rows follow via
// the store's cascade rules.
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(id); err != nil {
		respondPostError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores a multipart post image under the media dir,
// namespaced by post id and title with the uploaded file's extension, and
// records the path on the post.
func (h *PostHandler) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	file, err := c.FormFile("img")
	if err != nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"img": "This field is required",
		})
		return
	}

	imgPath := utils.PostImagePath(post.ID, post.Title, file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.mediaDir, imgPath)); err != nil {
		apierrors.InternalError(c, "Failed to store image")
		return
	}

	post, err = h.postService.Update(id, services.UpdatePostInput{Img: &imgPath})
	if err != nil {
		respondPostError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPostDTO(*post))
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnknownLikedUser):
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"liked": "References an unknown user",
		})
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
