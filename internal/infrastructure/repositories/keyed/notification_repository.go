package keyed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/storage"
)

// NotificationRepository keeps the bounded notification list,
// most-recent-first.
type NotificationRepository struct {
	slot  *storage.Slot[[]*domain.Notification]
	items []*domain.Notification
	limit int
	mu    sync.Mutex
}

func NewNotificationRepository(ctx context.Context, store storage.Store, limit int, logger *zap.SugaredLogger, metrics storage.Metrics) ports.NotificationRepository {
	if limit <= 0 {
		limit = domain.MaxNotifications
	}
	slot := storage.NewSlot(store, KeyNotifications, func() []*domain.Notification { return nil }, logger).
		WithMetrics(metrics)

	return &NotificationRepository{
		slot:  slot,
		items: slot.Load(ctx),
		limit: limit,
	}
}

func (r *NotificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Notification, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *NotificationRepository) Add(ctx context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := append([]*domain.Notification{n}, r.items...)
	if len(items) > r.limit {
		items = items[:r.limit]
	}
	r.items = items
	r.slot.Save(ctx, items)
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id domain.NotificationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		if n.ID == id {
			n.Read = true
			r.slot.Save(ctx, r.items)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.items {
		n.Read = true
	}
	r.slot.Save(ctx, r.items)
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id domain.NotificationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := false
	for _, n := range r.items {
		if n.ID == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if !removed {
		return domain.ErrNotificationNotFound
	}

	r.items = kept
	r.slot.Save(ctx, kept)
	return nil
}
