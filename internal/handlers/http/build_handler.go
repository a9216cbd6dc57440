package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type BuildHandler struct {
	buildService ports.BuildService
}

func NewBuildHandler(buildService ports.BuildService) *BuildHandler {
	return &BuildHandler{buildService: buildService}
}

func (h *BuildHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/builds", h.SubmitBuild)
		api.GET("/builds", h.ListBuilds)
		api.GET("/builds/top", h.TopBuilds)
		api.GET("/builds/:id", h.GetBuild)
		api.PATCH("/builds/:id", h.UpdateBuild)
		api.DELETE("/builds/:id", h.DeleteBuild)
		api.POST("/builds/:id/vote", h.VoteBuild)
	}
}

func (h *BuildHandler) SubmitBuild(c *gin.Context) {
	var req struct {
		Name           string   `json:"name" binding:"required,min=3,max=100"`
		HeroID         string   `json:"heroId" binding:"required"`
		ItemIDs        []string `json:"itemIds" binding:"max=6"`
		EmblemName     string   `json:"emblemName"`
		EmblemTalent   string   `json:"emblemTalent"`
		SpellName      string   `json:"spellName"`
		PlaystyleNotes []string `json:"playstyleNotes" binding:"max=10"`
		PatchVersion   string   `json:"patchVersion"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	items := make([]domain.ItemID, 0, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		items = append(items, domain.ItemID(id))
	}

	build, err := h.buildService.Submit(c.Request.Context(), domain.Build{
		Name:           req.Name,
		HeroID:         domain.HeroID(req.HeroID),
		ItemIDs:        items,
		EmblemName:     req.EmblemName,
		EmblemTalent:   req.EmblemTalent,
		SpellName:      req.SpellName,
		PlaystyleNotes: req.PlaystyleNotes,
		PatchVersion:   req.PatchVersion,
	})
	if err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"build": build})
}

// ListBuilds returns the collection, optionally narrowed by hero,
// author or a free-text query.
func (h *BuildHandler) ListBuilds(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		builds []*domain.Build
		err    error
	)

	switch {
	case c.Query("hero") != "":
		builds, err = h.buildService.ByHero(ctx, domain.HeroID(c.Query("hero")))
	case c.Query("author") != "":
		builds, err = h.buildService.ByAuthor(ctx, domain.ProfileID(c.Query("author")))
	case c.Query("q") != "":
		builds, err = h.buildService.Search(ctx, c.Query("q"))
	default:
		builds, err = h.buildService.List(ctx)
	}

	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"builds": builds,
		"count":  len(builds),
	})
}

func (h *BuildHandler) TopBuilds(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			failWith(c, apperrors.InvalidInput("limit must be between 1 and 100"))
			return
		}
		limit = parsed
	}

	builds, err := h.buildService.Top(c.Request.Context(), limit)
	if err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"builds": builds})
}

func (h *BuildHandler) GetBuild(c *gin.Context) {
	id := domain.BuildID(c.Param("id"))

	build, err := h.buildService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBuildNotFound) {
			failWith(c, apperrors.NotFound("build"))
			return
		}
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"build": build})
}

func (h *BuildHandler) UpdateBuild(c *gin.Context) {
	id := domain.BuildID(c.Param("id"))

	var req struct {
		Name           *string  `json:"name" binding:"omitempty,min=3,max=100"`
		ItemIDs        []string `json:"itemIds" binding:"omitempty,max=6"`
		EmblemName     *string  `json:"emblemName"`
		EmblemTalent   *string  `json:"emblemTalent"`
		SpellName      *string  `json:"spellName"`
		PlaystyleNotes []string `json:"playstyleNotes" binding:"omitempty,max=10"`
		PatchVersion   *string  `json:"patchVersion"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	patch := domain.BuildPatch{
		Name:           req.Name,
		EmblemName:     req.EmblemName,
		EmblemTalent:   req.EmblemTalent,
		SpellName:      req.SpellName,
		PlaystyleNotes: req.PlaystyleNotes,
		PatchVersion:   req.PatchVersion,
	}
	if req.ItemIDs != nil {
		patch.ItemIDs = make([]domain.ItemID, 0, len(req.ItemIDs))
		for _, itemID := range req.ItemIDs {
			patch.ItemIDs = append(patch.ItemIDs, domain.ItemID(itemID))
		}
	}

	if err := h.buildService.Update(c.Request.Context(), id, patch); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *BuildHandler) DeleteBuild(c *gin.Context) {
	id := domain.BuildID(c.Param("id"))

	if err := h.buildService.Delete(c.Request.Context(), id); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *BuildHandler) VoteBuild(c *gin.Context) {
	id := domain.BuildID(c.Param("id"))

	var req struct {
		VoterID string `json:"voterId"`
	}
	// Body is optional; anonymous votes are accepted.
	_ = c.ShouldBindJSON(&req)

	if err := h.buildService.Vote(c.Request.Context(), id, domain.ProfileID(req.VoterID)); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "voted"})
}
