package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/profile", h.CreateProfile)
		api.GET("/profile", h.GetProfile)
		api.PATCH("/profile", h.UpdateProfile)
		api.GET("/profile/status", h.GetStatus)
	}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrProfileExists) {
			failWith(c, apperrors.Conflict("profile already exists"))
			return
		}
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			failWith(c, apperrors.NotFound("profile"))
			return
		}
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Username *string `json:"username"`
		Avatar   *string `json:"avatar"`
		Bio      *string `json:"bio" binding:"omitempty,max=500"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	patch := domain.ProfilePatch{
		Username: req.Username,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
	}

	if err := h.profileService.Update(c.Request.Context(), patch); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *ProfileHandler) GetStatus(c *gin.Context) {
	loggedIn, err := h.profileService.IsLoggedIn(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged_in": loggedIn})
}
