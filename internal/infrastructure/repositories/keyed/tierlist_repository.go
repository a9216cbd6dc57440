package keyed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/storage"
)

type TierListRepository struct {
	slot  *storage.Slot[[]*domain.TierList]
	lists []*domain.TierList
	mu    sync.RWMutex
}

func NewTierListRepository(ctx context.Context, store storage.Store, logger *zap.SugaredLogger, metrics storage.Metrics) ports.TierListRepository {
	slot := storage.NewSlot(store, KeyTierLists, func() []*domain.TierList { return nil }, logger).
		WithMetrics(metrics)

	return &TierListRepository{
		slot:  slot,
		lists: slot.Load(ctx),
	}
}

func (r *TierListRepository) List(ctx context.Context) ([]*domain.TierList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.TierList, len(r.lists))
	copy(out, r.lists)
	return out, nil
}

func (r *TierListRepository) GetByID(ctx context.Context, id domain.TierListID) (*domain.TierList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, list := range r.lists {
		if list.ID == id {
			return list, nil
		}
	}
	return nil, domain.ErrTierListNotFound
}

func (r *TierListRepository) Add(ctx context.Context, list *domain.TierList) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists = append([]*domain.TierList{list}, r.lists...)
	r.slot.Save(ctx, r.lists)
	return nil
}

func (r *TierListRepository) Update(ctx context.Context, id domain.TierListID, patch domain.TierListPatch) (*domain.TierList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range r.lists {
		if list.ID == id {
			patch.Apply(list)
			list.UpdatedAt = time.Now()
			r.slot.Save(ctx, r.lists)
			return list, nil
		}
	}
	return nil, domain.ErrTierListNotFound
}

func (r *TierListRepository) Delete(ctx context.Context, id domain.TierListID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.lists[:0]
	removed := false
	for _, list := range r.lists {
		if list.ID == id {
			removed = true
			continue
		}
		kept = append(kept, list)
	}
	if !removed {
		return domain.ErrTierListNotFound
	}

	r.lists = kept
	r.slot.Save(ctx, r.lists)
	return nil
}

func (r *TierListRepository) Vote(ctx context.Context, id domain.TierListID) (*domain.TierList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range r.lists {
		if list.ID == id {
			list.Votes++
			r.slot.Save(ctx, r.lists)
			return list, nil
		}
	}
	return nil, domain.ErrTierListNotFound
}

func (r *TierListRepository) PlaceHero(ctx context.Context, id domain.TierListID, rank domain.TierRank, heroID domain.HeroID) (*domain.TierList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range r.lists {
		if list.ID == id {
			list.PlaceHero(rank, heroID)
			list.UpdatedAt = time.Now()
			r.slot.Save(ctx, r.lists)
			return list, nil
		}
	}
	return nil, domain.ErrTierListNotFound
}

func (r *TierListRepository) FindByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.TierList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*domain.TierList
	for _, list := range r.lists {
		if list.AuthorID == authorID {
			matches = append(matches, list)
		}
	}
	return matches, nil
}
