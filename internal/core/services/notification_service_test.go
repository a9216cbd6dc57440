package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/repositories/keyed"
	"metahub/internal/infrastructure/storage"
)

func newNotificationService(t *testing.T) ports.NotificationService {
	t.Helper()
	logger := zaptest.NewLogger(t).Sugar()
	repo := keyed.NewNotificationRepository(context.Background(), storage.NewMemoryStore(), 0, logger, nil)
	return NewNotificationService(repo, nil, logger)
}

func TestNotificationService_Notify(t *testing.T) {
	ctx := context.Background()
	service := newNotificationService(t)

	n, err := service.Notify(ctx, domain.NotifyBuildVote, "Build upvoted", "now has 3 votes", "/builds/b1")
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Read)
	assert.False(t, n.CreatedAt.IsZero())

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "/builds/b1", list[0].Link)
}

func TestNotificationService_NotifyTruncatesLongMessage(t *testing.T) {
	ctx := context.Background()
	service := newNotificationService(t)

	long := strings.Repeat("x", maxNotificationMessage+100)
	n, err := service.Notify(ctx, domain.NotifyReply, "Long reply", long, "")
	require.NoError(t, err)

	assert.Len(t, n.Message, maxNotificationMessage)
	assert.True(t, strings.HasSuffix(n.Message, "..."))
}

func TestNotificationService_NotifyValidation(t *testing.T) {
	ctx := context.Background()
	service := newNotificationService(t)

	_, err := service.Notify(ctx, "bogus_type", "title", "", "")
	assert.Error(t, err, "unknown type must be rejected")

	_, err = service.Notify(ctx, domain.NotifyMention, "", "", "")
	assert.Error(t, err, "blank title must be rejected")
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()
	service := newNotificationService(t)

	first, err := service.Notify(ctx, domain.NotifyBuildVote, "one", "", "")
	require.NoError(t, err)
	_, err = service.Notify(ctx, domain.NotifyReply, "two", "", "")
	require.NoError(t, err)

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, service.MarkRead(ctx, first.ID))
	count, _ = service.UnreadCount(ctx)
	assert.Equal(t, 1, count)

	require.NoError(t, service.MarkAllRead(ctx))
	count, _ = service.UnreadCount(ctx)
	assert.Zero(t, count)
}

func TestNotificationService_AbsentIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	service := newNotificationService(t)

	assert.NoError(t, service.MarkRead(ctx, "nope"))
	assert.NoError(t, service.Delete(ctx, "nope"))
}
