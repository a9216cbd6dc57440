package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/repositories/keyed"
	"metahub/internal/infrastructure/storage"
)

func newFavoritesFixture(t *testing.T) (ports.FavoritesService, ports.ProfileService) {
	t.Helper()
	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	store := storage.NewMemoryStore()

	favoritesRepo := keyed.NewFavoritesRepository(ctx, store, logger, nil)
	profileRepo := keyed.NewProfileRepository(ctx, store, logger, nil)
	profileService := NewProfileService(profileRepo, logger)

	return NewFavoritesService(favoritesRepo, profileService, logger), profileService
}

func TestFavoritesService_ToggleIsInvolution(t *testing.T) {
	ctx := context.Background()
	service, _ := newFavoritesFixture(t)

	favorited, err := service.Toggle(ctx, "gloo")
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = service.Toggle(ctx, "gloo")
	require.NoError(t, err)
	assert.False(t, favorited)

	has, err := service.Contains(ctx, "gloo")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFavoritesService_ToggleRejectsBadHeroID(t *testing.T) {
	ctx := context.Background()
	service, _ := newFavoritesFixture(t)

	_, err := service.Toggle(ctx, "Not A Slug!")
	assert.Error(t, err)
}

func TestFavoritesService_SyncsProfileCopy(t *testing.T) {
	ctx := context.Background()
	service, profiles := newFavoritesFixture(t)

	_, err := profiles.Create(ctx, "MetaSlayer99")
	require.NoError(t, err)

	_, err = service.Toggle(ctx, "gloo")
	require.NoError(t, err)

	profile, err := profiles.Get(ctx)
	require.NoError(t, err)
	assert.Contains(t, profile.FavoriteHeroes, domain.HeroID("gloo"))

	_, err = service.Toggle(ctx, "gloo")
	require.NoError(t, err)

	profile, _ = profiles.Get(ctx)
	assert.NotContains(t, profile.FavoriteHeroes, domain.HeroID("gloo"))
}

func TestFavoritesService_ToggleWorksWithoutProfile(t *testing.T) {
	ctx := context.Background()
	service, _ := newFavoritesFixture(t)

	// Profile sync is best effort; the set itself must still change.
	favorited, err := service.Toggle(ctx, "gloo")
	require.NoError(t, err)
	assert.True(t, favorited)

	heroes, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.HeroID{"gloo"}, heroes)
}
