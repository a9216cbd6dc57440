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

// BuildRepository keeps the community build collection most-recent-first.
type BuildRepository struct {
	slot   *storage.Slot[[]*domain.Build]
	builds []*domain.Build
	mu     sync.RWMutex
}

func NewBuildRepository(ctx context.Context, store storage.Store, logger *zap.SugaredLogger, metrics storage.Metrics) ports.BuildRepository {
	slot := storage.NewSlot(store, KeyBuilds, func() []*domain.Build { return nil }, logger).
		WithMetrics(metrics)

	return &BuildRepository{
		slot:   slot,
		builds: slot.Load(ctx),
	}
}

func (r *BuildRepository) List(ctx context.Context) ([]*domain.Build, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Build, len(r.builds))
	copy(out, r.builds)
	return out, nil
}

func (r *BuildRepository) GetByID(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, build := range r.builds {
		if build.ID == id {
			return build, nil
		}
	}
	return nil, domain.ErrBuildNotFound
}

func (r *BuildRepository) Add(ctx context.Context, build *domain.Build) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builds = append([]*domain.Build{build}, r.builds...)
	r.slot.Save(ctx, r.builds)
	return nil
}

func (r *BuildRepository) Update(ctx context.Context, id domain.BuildID, patch domain.BuildPatch) (*domain.Build, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, build := range r.builds {
		if build.ID == id {
			patch.Apply(build)
			build.UpdatedAt = time.Now()
			r.slot.Save(ctx, r.builds)
			return build, nil
		}
	}
	return nil, domain.ErrBuildNotFound
}

func (r *BuildRepository) Delete(ctx context.Context, id domain.BuildID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.builds[:0]
	removed := false
	for _, build := range r.builds {
		if build.ID == id {
			removed = true
			continue
		}
		kept = append(kept, build)
	}
	if !removed {
		return domain.ErrBuildNotFound
	}

	r.builds = kept
	r.slot.Save(ctx, r.builds)
	return nil
}

func (r *BuildRepository) Vote(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, build := range r.builds {
		if build.ID == id {
			build.Votes++
			r.slot.Save(ctx, r.builds)
			return build, nil
		}
	}
	return nil, domain.ErrBuildNotFound
}

func (r *BuildRepository) FindByHero(ctx context.Context, heroID domain.HeroID) ([]*domain.Build, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*domain.Build
	for _, build := range r.builds {
		if build.HeroID == heroID {
			matches = append(matches, build)
		}
	}
	return matches, nil
}

func (r *BuildRepository) FindByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.Build, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*domain.Build
	for _, build := range r.builds {
		if build.AuthorID == authorID {
			matches = append(matches, build)
		}
	}
	return matches, nil
}
