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

func newProfileService(t *testing.T) ports.ProfileService {
	t.Helper()
	logger := zaptest.NewLogger(t).Sugar()
	repo := keyed.NewProfileRepository(context.Background(), storage.NewMemoryStore(), logger, nil)
	return NewProfileService(repo, logger)
}

func TestProfileService_Create(t *testing.T) {
	ctx := context.Background()
	service := newProfileService(t)

	profile, err := service.Create(ctx, "  MetaSlayer99  ")
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "MetaSlayer99", profile.Username, "username must be trimmed")
	assert.False(t, profile.JoinedAt.IsZero())
	assert.NotNil(t, profile.FavoriteHeroes)
	assert.NotNil(t, profile.CreatedBuilds)

	loggedIn, err := service.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)
}

func TestProfileService_CreateRejectsSecondProfile(t *testing.T) {
	ctx := context.Background()
	service := newProfileService(t)

	_, err := service.Create(ctx, "FirstUser")
	require.NoError(t, err)

	_, err = service.Create(ctx, "SecondUser")
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}

func TestProfileService_CreateValidatesUsername(t *testing.T) {
	ctx := context.Background()
	service := newProfileService(t)

	for _, username := range []string{"", "ab", "bad@name!"} {
		_, err := service.Create(ctx, username)
		assert.Error(t, err, "username %q must be rejected", username)
	}
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	service := newProfileService(t)

	created, err := service.Create(ctx, "MetaSlayer99")
	require.NoError(t, err)

	bio := "Tank main since season 1"
	require.NoError(t, service.Update(ctx, domain.ProfilePatch{Bio: &bio}))

	got, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, bio, got.Bio)
	assert.Equal(t, created.ID, got.ID, "ID is immutable")
	assert.Equal(t, "MetaSlayer99", got.Username, "untouched field must survive")
}

func TestProfileService_UpdateWithoutProfileIsNoOp(t *testing.T) {
	ctx := context.Background()
	service := newProfileService(t)

	bio := "nobody home"
	assert.NoError(t, service.Update(ctx, domain.ProfilePatch{Bio: &bio}))

	loggedIn, _ := service.IsLoggedIn(ctx)
	assert.False(t, loggedIn, "no-op update must not create a profile")
}

func TestProfileService_FavoriteHeroes(t *testing.T) {
	ctx := context.Background()
	service := newProfileService(t)

	_, err := service.Create(ctx, "MetaSlayer99")
	require.NoError(t, err)

	require.NoError(t, service.AddFavoriteHero(ctx, "gloo"))
	require.NoError(t, service.AddFavoriteHero(ctx, "gloo")) // idempotent
	require.NoError(t, service.AddFavoriteHero(ctx, "ling"))

	profile, _ := service.Get(ctx)
	assert.Equal(t, []domain.HeroID{"gloo", "ling"}, profile.FavoriteHeroes)

	require.NoError(t, service.RemoveFavoriteHero(ctx, "gloo"))
	profile, _ = service.Get(ctx)
	assert.Equal(t, []domain.HeroID{"ling"}, profile.FavoriteHeroes)
}
