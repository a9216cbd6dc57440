package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type CatalogHandler struct {
	catalogService ports.CatalogService
}

func NewCatalogHandler(catalogService ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/heroes", h.ListHeroes)
		api.GET("/heroes/compare", h.CompareHeroes)
		api.GET("/heroes/:id", h.GetHero)
		api.GET("/items", h.ListItems)
		api.GET("/spells", h.ListSpells)
		api.GET("/emblems", h.ListEmblems)
	}
}

func (h *CatalogHandler) ListHeroes(c *gin.Context) {
	filter := domain.HeroFilter{
		Role:       domain.HeroRole(c.Query("role")),
		Tier:       domain.TierRank(c.Query("tier")),
		Difficulty: domain.Difficulty(c.Query("difficulty")),
		Query:      c.Query("q"),
		SortBy:     c.Query("sort"),
		Descending: c.Query("order") == "desc",
	}

	heroes, err := h.catalogService.Heroes(c.Request.Context(), filter)
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"heroes": heroes,
		"count":  len(heroes),
	})
}

func (h *CatalogHandler) GetHero(c *gin.Context) {
	id := domain.HeroID(c.Param("id"))

	hero, err := h.catalogService.Hero(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			failWith(c, apperrors.NotFound("hero"))
			return
		}
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"hero": hero})
}

// CompareHeroes takes a comma-separated ids query parameter, for
// example ?ids=gloo,tigreal,atlas.
func (h *CatalogHandler) CompareHeroes(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		failWith(c, apperrors.InvalidInput("ids query parameter is required"))
		return
	}

	var ids []domain.HeroID
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, domain.HeroID(id))
		}
	}

	comparison, err := h.catalogService.Compare(c.Request.Context(), ids)
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			failWith(c, apperrors.NotFound("hero"))
			return
		}
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalogService.Items(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

func (h *CatalogHandler) ListSpells(c *gin.Context) {
	spells, err := h.catalogService.Spells(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"spells": spells})
}

func (h *CatalogHandler) ListEmblems(c *gin.Context) {
	emblems, err := h.catalogService.Emblems(c.Request.Context())
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"emblems": emblems})
}
