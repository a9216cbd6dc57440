package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type FavoritesHandler struct {
	favoritesService ports.FavoritesService
}

func NewFavoritesHandler(favoritesService ports.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favoritesService: favoritesService}
}

func (h *FavoritesHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/favorites", h.ListFavorites)
		api.GET("/favorites/:heroId", h.GetFavorite)
		api.PUT("/favorites/:heroId", h.ToggleFavorite)
	}
}

func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	heroes, err := h.favoritesService.List(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"heroes": heroes,
		"count":  len(heroes),
	})
}

func (h *FavoritesHandler) GetFavorite(c *gin.Context) {
	heroID := domain.HeroID(c.Param("heroId"))

	favorited, err := h.favoritesService.Contains(c.Request.Context(), heroID)
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// ToggleFavorite flips the hero's membership and reports the new state.
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	heroID := domain.HeroID(c.Param("heroId"))

	favorited, err := h.favoritesService.Toggle(c.Request.Context(), heroID)
	if err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}
