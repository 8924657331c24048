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

// ProfileHandler serves the /profile and /myprofile resources.
type ProfileHandler struct {
	profileService *services.ProfileService
	mediaDir       string
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService, mediaDir string) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		mediaDir:       mediaDir,
	}
}

// CreateProfile creates a profile owned by the caller. Any client-supplied
// owner is ignored: the payload schema has no owner field and the caller's
// identity is merged in after validation.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProfileRequest struct {
		Nickname string  `json:"nickname" binding:"required,max=20"`
		Img      *string `json:"img" binding:"omitempty,max=255"`
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	profile, err := h.profileService.Create(userID, services.CreateProfileInput{
		Nickname: req.Nickname,
		Img:      req.Img,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileDTO(*profile))
}

// ListProfiles returns all profiles with pagination.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	profiles, total, err := h.profileService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch profiles")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileListResponse(profiles, params.Page, params.Limit, total))
}

// ListMyProfiles returns the profiles owned by the caller. A caller
// without a profile gets an empty list, not an error.
func (h *ProfileHandler) ListMyProfiles(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	profiles, err := h.profileService.ListMine(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch profiles")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTOs(profiles))
}

// GetProfile returns a profile by id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(id)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// UpdateProfile handles PUT and PATCH on a profile. PUT requires the full
// writable field set; PATCH applies only the fields present. Owner and
// created_on are not writable on either.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateProfileRequest struct {
		Nickname *string `json:"nickname" binding:"omitempty,max=20"`
		Img      *string `json:"img" binding:"omitempty,max=255"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	if c.Request.Method == http.MethodPut && req.Nickname == nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"nickname": "This field is required",
		})
		return
	}

	profile, err := h.profileService.Update(id, services.UpdateProfileInput{
		Nickname: req.Nickname,
		Img:      req.Img,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

// DeleteProfile removes a profile by id.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(id); err != nil {
		respondProfileError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadAvatar stores a multipart avatar image under the media dir,
// namespaced by profile id and nickname with the uploaded file's
// extension, and records the path on the profile.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(id)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	file, err := c.FormFile("img")
	if err != nil {
		apierrors.BadRequestWithDetails(c, "Validation failed", map[string]string{
			"img": "This field is required",
		})
		return
	}

	imgPath := utils.AvatarPath(profile.ID, profile.Nickname, file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.mediaDir, imgPath)); err != nil {
		apierrors.InternalError(c, "Failed to store image")
		return
	}

	profile, err = h.profileService.Update(id, services.UpdateProfileInput{Img: &imgPath})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
