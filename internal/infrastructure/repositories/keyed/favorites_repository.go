package keyed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/storage"
)

// FavoritesRepository keeps the bookmarked hero set in insertion order.
type FavoritesRepository struct {
	slot   *storage.Slot[[]domain.HeroID]
	heroes []domain.HeroID
	mu     sync.Mutex
}

func NewFavoritesRepository(ctx context.Context, store storage.Store, logger *zap.SugaredLogger, metrics storage.Metrics) ports.FavoritesRepository {
	slot := storage.NewSlot(store, KeyFavorites, func() []domain.HeroID { return nil }, logger).
		WithMetrics(metrics)

	return &FavoritesRepository{
		slot:   slot,
		heroes: slot.Load(ctx),
	}
}

func (r *FavoritesRepository) List(ctx context.Context) ([]domain.HeroID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.HeroID, len(r.heroes))
	copy(out, r.heroes)
	return out, nil
}

func (r *FavoritesRepository) Toggle(ctx context.Context, heroID domain.HeroID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.heroes[:0]
	removed := false
	for _, id := range r.heroes {
		if id == heroID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}

	if removed {
		r.heroes = kept
		r.slot.Save(ctx, r.heroes)
		return false, nil
	}

	r.heroes = append(r.heroes, heroID)
	r.slot.Save(ctx, r.heroes)
	return true, nil
}

func (r *FavoritesRepository) Contains(ctx context.Context, heroID domain.HeroID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.heroes {
		if id == heroID {
			return true, nil
		}
	}
	return false, nil
}
