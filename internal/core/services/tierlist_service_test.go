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

type tierListFixture struct {
	service       ports.TierListService
	notifications ports.NotificationService
}

func newTierListFixture(t *testing.T) *tierListFixture {
	t.Helper()
	ctx := context.Background()
	logger := zaptest.NewLogger(t).Sugar()
	store := storage.NewMemoryStore()

	tierListRepo := keyed.NewTierListRepository(ctx, store, logger, nil)
	profileRepo := keyed.NewProfileRepository(ctx, store, logger, nil)
	notificationRepo := keyed.NewNotificationRepository(ctx, store, 0, logger, nil)
	notifier := NewNotificationService(notificationRepo, nil, logger)

	return &tierListFixture{
		service:       NewTierListService(tierListRepo, profileRepo, notifier, nil, logger),
		notifications: notifier,
	}
}

func TestTierListService_CreateFillsAllBuckets(t *testing.T) {
	ctx := context.Background()
	f := newTierListFixture(t)

	created, err := f.service.Create(ctx, domain.TierList{
		Name: "Patch Meta",
		Tiers: map[domain.TierRank][]domain.HeroID{
			domain.TierS: {"gloo"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	for _, rank := range domain.TierRanks {
		assert.NotNil(t, created.Tiers[rank], "bucket %s must exist", rank)
	}
	assert.Equal(t, []domain.HeroID{"gloo"}, created.Tiers[domain.TierS])
}

func TestTierListService_CreateRejectsUnknownRank(t *testing.T) {
	ctx := context.Background()
	f := newTierListFixture(t)

	_, err := f.service.Create(ctx, domain.TierList{
		Name: "Broken",
		Tiers: map[domain.TierRank][]domain.HeroID{
			"SS": {"gloo"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTierRank)
}

func TestTierListService_PlaceHero(t *testing.T) {
	ctx := context.Background()
	f := newTierListFixture(t)

	created, err := f.service.Create(ctx, domain.TierList{Name: "Patch Meta"})
	require.NoError(t, err)

	_, err = f.service.PlaceHero(ctx, created.ID, domain.TierS, "gloo")
	require.NoError(t, err)

	list, err := f.service.PlaceHero(ctx, created.ID, domain.TierB, "gloo")
	require.NoError(t, err)

	rank, ok := list.RankOf("gloo")
	require.True(t, ok)
	assert.Equal(t, domain.TierB, rank)

	_, err = f.service.PlaceHero(ctx, created.ID, "SS", "gloo")
	assert.ErrorIs(t, err, domain.ErrInvalidTierRank)

	_, err = f.service.PlaceHero(ctx, created.ID, domain.TierS, "Bad Hero!")
	assert.Error(t, err)
}

func TestTierListService_VoteEmitsNotification(t *testing.T) {
	ctx := context.Background()
	f := newTierListFixture(t)

	created, err := f.service.Create(ctx, domain.TierList{Name: "Patch Meta"})
	require.NoError(t, err)

	require.NoError(t, f.service.Vote(ctx, created.ID))

	got, err := f.service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Votes)

	notifications, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	assert.Equal(t, domain.NotifyTierListVote, notifications[0].Type)
}

func TestTierListService_MutationsOnAbsentIDAreNoOps(t *testing.T) {
	ctx := context.Background()
	f := newTierListFixture(t)

	assert.NoError(t, f.service.Vote(ctx, "nope"))
	assert.NoError(t, f.service.Delete(ctx, "nope"))
	assert.NoError(t, f.service.Update(ctx, "nope", domain.TierListPatch{}))
}

func TestTierListService_PublicReturnsOnlyPublicSortedByVotes(t *testing.T) {
	ctx := context.Background()
	f := newTierListFixture(t)

	private, _ := f.service.Create(ctx, domain.TierList{Name: "Private"})
	_ = private

	low, _ := f.service.Create(ctx, domain.TierList{Name: "Low", IsPublic: true})
	high, _ := f.service.Create(ctx, domain.TierList{Name: "High", IsPublic: true})

	f.service.Vote(ctx, high.ID)
	f.service.Vote(ctx, high.ID)
	f.service.Vote(ctx, low.ID)

	public, err := f.service.Public(ctx)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, high.ID, public[0].ID)
	assert.Equal(t, low.ID, public[1].ID)
}
