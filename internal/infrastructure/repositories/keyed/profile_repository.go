package keyed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/storage"
)

type ProfileRepository struct {
	slot    *storage.Slot[*domain.UserProfile]
	profile *domain.UserProfile
	mu      sync.RWMutex
}

func NewProfileRepository(ctx context.Context, store storage.Store, logger *zap.SugaredLogger, metrics storage.Metrics) ports.ProfileRepository {
	slot := storage.NewSlot(store, KeyProfile, func() *domain.UserProfile { return nil }, logger).
		WithMetrics(metrics)

	return &ProfileRepository{
		slot:    slot,
		profile: slot.Load(ctx),
	}
}

func (r *ProfileRepository) Get(ctx context.Context) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return r.profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = profile
	r.slot.Save(ctx, r.profile)
	return nil
}

func (r *ProfileRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.profile != nil, nil
}
