package keyed

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap/zaptest"

	"metahub/internal/core/domain"
	"metahub/internal/infrastructure/storage"
)

func TestNotificationRepository_AddPrependsAndCaps(t *testing.T) {
	ctx := context.Background()
	limit := 4
	repo := NewNotificationRepository(ctx, storage.NewMemoryStore(), limit, zaptest.NewLogger(t).Sugar(), nil)

	for i := 0; i < limit+2; i++ {
		repo.Add(ctx, &domain.Notification{
			ID:   domain.NotificationID(fmt.Sprintf("n%d", i)),
			Type: domain.NotifyBuildVote,
		})
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != limit {
		t.Fatalf("List() holds %d, want cap %d", len(items), limit)
	}
	// Most recent first; the two oldest were dropped off the tail.
	if items[0].ID != "n5" {
		t.Errorf("newest = %s, want n5", items[0].ID)
	}
	if items[limit-1].ID != "n2" {
		t.Errorf("oldest surviving = %s, want n2", items[limit-1].ID)
	}
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(ctx, storage.NewMemoryStore(), 0, zaptest.NewLogger(t).Sugar(), nil)

	repo.Add(ctx, &domain.Notification{ID: "n1", Type: domain.NotifyBuildVote})
	repo.Add(ctx, &domain.Notification{ID: "n2", Type: domain.NotifyReply})

	if err := repo.MarkRead(ctx, "n1"); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	items, _ := repo.List(ctx)
	for _, n := range items {
		want := n.ID == "n1"
		if n.Read != want {
			t.Errorf("notification %s Read = %v, want %v", n.ID, n.Read, want)
		}
	}

	if err := repo.MarkRead(ctx, "nope"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("MarkRead(absent) error = %v, want ErrNotificationNotFound", err)
	}
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(ctx, storage.NewMemoryStore(), 0, zaptest.NewLogger(t).Sugar(), nil)

	repo.Add(ctx, &domain.Notification{ID: "n1", Type: domain.NotifyBuildVote})
	repo.Add(ctx, &domain.Notification{ID: "n2", Type: domain.NotifyMention})

	if err := repo.MarkAllRead(ctx); err != nil {
		t.Fatalf("MarkAllRead() error = %v", err)
	}

	items, _ := repo.List(ctx)
	for _, n := range items {
		if !n.Read {
			t.Errorf("notification %s still unread", n.ID)
		}
	}
}

func TestNotificationRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(ctx, storage.NewMemoryStore(), 0, zaptest.NewLogger(t).Sugar(), nil)

	repo.Add(ctx, &domain.Notification{ID: "n1", Type: domain.NotifyBuildVote})

	if err := repo.Delete(ctx, "n1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "n1"); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotificationNotFound", err)
	}
}

func TestNotificationRepository_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := NewNotificationRepository(ctx, store, 0, zaptest.NewLogger(t).Sugar(), nil)

	repo.Add(ctx, &domain.Notification{ID: "n1", Type: domain.NotifyBuildVote, Title: "Build upvoted"})
	repo.MarkRead(ctx, "n1")

	reloaded := NewNotificationRepository(ctx, store, 0, zaptest.NewLogger(t).Sugar(), nil)
	items, _ := reloaded.List(ctx)
	if len(items) != 1 || !items[0].Read || items[0].Title != "Build upvoted" {
		t.Errorf("reloaded list = %+v", items)
	}
}
