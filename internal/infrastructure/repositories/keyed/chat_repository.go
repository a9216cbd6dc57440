package keyed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/storage"
)

// ChatRepository keeps one bounded, oldest-first message log per room.
// Room slots are created lazily on first touch.
type ChatRepository struct {
	store   storage.Store
	logger  *zap.SugaredLogger
	metrics storage.Metrics
	limit   int

	slots map[domain.RoomID]*storage.Slot[[]*domain.ChatMessage]
	rooms map[domain.RoomID][]*domain.ChatMessage
	mu    sync.Mutex
}

func NewChatRepository(store storage.Store, limit int, logger *zap.SugaredLogger, metrics storage.Metrics) ports.ChatRepository {
	if limit <= 0 {
		limit = domain.MaxRoomMessages
	}
	return &ChatRepository{
		store:   store,
		logger:  logger,
		metrics: metrics,
		limit:   limit,
		slots:   make(map[domain.RoomID]*storage.Slot[[]*domain.ChatMessage]),
		rooms:   make(map[domain.RoomID][]*domain.ChatMessage),
	}
}

// room loads the log for roomID on first access. Caller holds the lock.
func (r *ChatRepository) room(ctx context.Context, roomID domain.RoomID) *storage.Slot[[]*domain.ChatMessage] {
	slot, exists := r.slots[roomID]
	if !exists {
		slot = storage.NewSlot(r.store, ChatKey(roomID), func() []*domain.ChatMessage { return nil }, r.logger).
			WithMetrics(r.metrics)
		r.slots[roomID] = slot
		r.rooms[roomID] = slot.Load(ctx)
	}
	return slot
}

func (r *ChatRepository) Append(ctx context.Context, msg *domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot := r.room(ctx, msg.Room)

	log := append(r.rooms[msg.Room], msg)
	if len(log) > r.limit {
		// Evict oldest entries before persisting.
		log = log[len(log)-r.limit:]
	}
	r.rooms[msg.Room] = log
	slot.Save(ctx, log)
	return nil
}

func (r *ChatRepository) Messages(ctx context.Context, roomID domain.RoomID) ([]*domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.room(ctx, roomID)

	log := r.rooms[roomID]
	out := make([]*domain.ChatMessage, len(log))
	copy(out, log)
	return out, nil
}

func (r *ChatRepository) Delete(ctx context.Context, roomID domain.RoomID, id domain.MessageID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot := r.room(ctx, roomID)

	log := r.rooms[roomID]
	kept := log[:0]
	removed := false
	for _, msg := range log {
		if msg.ID == id {
			removed = true
			continue
		}
		kept = append(kept, msg)
	}
	if !removed {
		return domain.ErrMessageNotFound
	}

	r.rooms[roomID] = kept
	slot.Save(ctx, kept)
	return nil
}
