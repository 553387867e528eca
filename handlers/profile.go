package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"wayfarer/middleware"
	"wayfarer/models"
	profileService "wayfarer/services/profile"
	"wayfarer/services/storage"
	"wayfarer/utils"
)

// ProfileHandler serves the profile endpoints.
type ProfileHandler struct {
	Service profileService.Service
	Storage storage.StorageService
}

// NewProfileHandler creates the profile handler.
func NewProfileHandler(svc profileService.Service, store storage.StorageService) *ProfileHandler {
	return &ProfileHandler{Service: svc, Storage: store}
}

func (h *ProfileHandler) elevated(c *gin.Context) bool {
	return middleware.Elevated(c, "manageProfiles")
}

// CreateProfileHandler handles POST /profiles for the authenticated user.
func (h *ProfileHandler) CreateProfileHandler(c *gin.Context) {
	var prof models.Profile
	if err := bindBody(c, &prof); err != nil {
		utils.RespondError(c, err)
		return
	}

	created, err := h.Service.Create(currentUserID(c), &prof)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMyProfileHandler handles GET /profiles/me.
func (h *ProfileHandler) GetMyProfileHandler(c *gin.Context) {
	prof, err := h.Service.GetByUser(currentUserID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

func (h *ProfileHandler) GetProfilesHandler(c *gin.Context) {
	filter, opts := parseListQuery(c)
	page, err := h.Service.Query(filter, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	prof, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdateProfileHandler handles PATCH /profiles/:id.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	var patch bson.M
	if err := bindBody(c, &patch); err != nil {
		utils.RespondError(c, err)
		return
	}

	updated, err := h.Service.Update(currentUserID(c), c.Param("id"), patch, h.elevated(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UploadProfilePhotoHandler handles PATCH /profiles/:id/photo with a
// multipart "photo" file.
func (h *ProfileHandler) UploadProfilePhotoHandler(c *gin.Context) {
	photo, err := uploadFormImage(c, h.Storage, "photo", "profiles")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if photo == nil {
		utils.RespondError(c, utils.NewBadRequest("a 'photo' file is required"))
		return
	}

	updated, err := h.Service.SetPhoto(currentUserID(c), c.Param("id"), *photo, h.elevated(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeactivateProfileHandler handles DELETE /profiles/:id. The profile is
// soft-deactivated, not removed.
func (h *ProfileHandler) DeactivateProfileHandler(c *gin.Context) {
	if err := h.Service.Deactivate(currentUserID(c), c.Param("id"), h.elevated(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
