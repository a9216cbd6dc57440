package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type TierListHandler struct {
	tierListService ports.TierListService
}

func NewTierListHandler(tierListService ports.TierListService) *TierListHandler {
	return &TierListHandler{tierListService: tierListService}
}

func (h *TierListHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/tier-lists", h.CreateTierList)
		api.GET("/tier-lists", h.ListTierLists)
		api.GET("/tier-lists/:id", h.GetTierList)
		api.PATCH("/tier-lists/:id", h.UpdateTierList)
		api.DELETE("/tier-lists/:id", h.DeleteTierList)
		api.POST("/tier-lists/:id/vote", h.VoteTierList)
		api.PUT("/tier-lists/:id/heroes", h.PlaceHero)
	}
}

func (h *TierListHandler) CreateTierList(c *gin.Context) {
	var req struct {
		Name         string              `json:"name" binding:"required,min=3,max=100"`
		Description  string              `json:"description" binding:"max=500"`
		PatchVersion string              `json:"patchVersion"`
		Tiers        map[string][]string `json:"tiers"`
		IsPublic     bool                `json:"isPublic"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	list, err := h.tierListService.Create(c.Request.Context(), domain.TierList{
		Name:         req.Name,
		Description:  req.Description,
		PatchVersion: req.PatchVersion,
		Tiers:        toTierBuckets(req.Tiers),
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tier_list": list})
}

func (h *TierListHandler) ListTierLists(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		lists []*domain.TierList
		err   error
	)

	switch {
	case c.Query("author") != "":
		lists, err = h.tierListService.ByAuthor(ctx, domain.ProfileID(c.Query("author")))
	case c.Query("public") == "true":
		lists, err = h.tierListService.Public(ctx)
	default:
		lists, err = h.tierListService.List(ctx)
	}

	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tier_lists": lists,
		"count":      len(lists),
	})
}

func (h *TierListHandler) GetTierList(c *gin.Context) {
	id := domain.TierListID(c.Param("id"))

	list, err := h.tierListService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTierListNotFound) {
			failWith(c, apperrors.NotFound("tier list"))
			return
		}
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"tier_list": list})
}

func (h *TierListHandler) UpdateTierList(c *gin.Context) {
	id := domain.TierListID(c.Param("id"))

	var req struct {
		Name         *string             `json:"name" binding:"omitempty,min=3,max=100"`
		Description  *string             `json:"description" binding:"omitempty,max=500"`
		PatchVersion *string             `json:"patchVersion"`
		Tiers        map[string][]string `json:"tiers"`
		IsPublic     *bool               `json:"isPublic"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	patch := domain.TierListPatch{
		Name:         req.Name,
		Description:  req.Description,
		PatchVersion: req.PatchVersion,
		IsPublic:     req.IsPublic,
	}
	if req.Tiers != nil {
		patch.Tiers = toTierBuckets(req.Tiers)
	}

	if err := h.tierListService.Update(c.Request.Context(), id, patch); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *TierListHandler) DeleteTierList(c *gin.Context) {
	id := domain.TierListID(c.Param("id"))

	if err := h.tierListService.Delete(c.Request.Context(), id); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *TierListHandler) VoteTierList(c *gin.Context) {
	id := domain.TierListID(c.Param("id"))

	if err := h.tierListService.Vote(c.Request.Context(), id); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "voted"})
}

func (h *TierListHandler) PlaceHero(c *gin.Context) {
	id := domain.TierListID(c.Param("id"))

	var req struct {
		HeroID string `json:"heroId" binding:"required"`
		Rank   string `json:"rank" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	list, err := h.tierListService.PlaceHero(c.Request.Context(), id,
		domain.TierRank(req.Rank), domain.HeroID(req.HeroID))
	if err != nil {
		if errors.Is(err, domain.ErrTierListNotFound) {
			failWith(c, apperrors.NotFound("tier list"))
			return
		}
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"tier_list": list})
}

func toTierBuckets(raw map[string][]string) map[domain.TierRank][]domain.HeroID {
	if raw == nil {
		return nil
	}
	tiers := make(map[domain.TierRank][]domain.HeroID, len(raw))
	for rank, heroIDs := range raw {
		bucket := make([]domain.HeroID, 0, len(heroIDs))
		for _, heroID := range heroIDs {
			bucket = append(bucket, domain.HeroID(heroID))
		}
		tiers[domain.TierRank(rank)] = bucket
	}
	return tiers
}
