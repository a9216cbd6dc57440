package services

import (
	"context"
	"fmt"
	"time"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/pkg/cache"
)

// CachedBuildService wraps a BuildService with read caching. Derived
// views (top, search, per-hero listings) are recomputed on every vote
// otherwise; a short TTL keeps them cheap without going stale for long.
type CachedBuildService struct {
	baseService ports.BuildService
	cache       *cache.CacheWithFallback
	ttl         time.Duration
}

func NewCachedBuildService(baseService ports.BuildService, ttl time.Duration) ports.BuildService {
	return &CachedBuildService{
		baseService: baseService,
		cache:       cache.NewCacheWithFallback(ttl),
		ttl:         ttl,
	}
}

func (s *CachedBuildService) Submit(ctx context.Context, build domain.Build) (*domain.Build, error) {
	created, err := s.baseService.Submit(ctx, build)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("builds:")
	return created, nil
}

func (s *CachedBuildService) Get(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	cacheKey := fmt.Sprintf("builds:id:%s", id)

	value, err := s.cache.GetOrSet(ctx, cacheKey, func(ctx context.Context) (interface{}, error) {
		return s.baseService.Get(ctx, id)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return value.(*domain.Build), nil
}

func (s *CachedBuildService) List(ctx context.Context) ([]*domain.Build, error) {
	value, err := s.cache.GetOrSet(ctx, "builds:list", func(ctx context.Context) (interface{}, error) {
		return s.baseService.List(ctx)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return value.([]*domain.Build), nil
}

func (s *CachedBuildService) Update(ctx context.Context, id domain.BuildID, patch domain.BuildPatch) error {
	if err := s.baseService.Update(ctx, id, patch); err != nil {
		return err
	}
	s.cache.Invalidate("builds:")
	return nil
}

func (s *CachedBuildService) Delete(ctx context.Context, id domain.BuildID) error {
	if err := s.baseService.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("builds:")
	return nil
}

func (s *CachedBuildService) Vote(ctx context.Context, id domain.BuildID, voter domain.ProfileID) error {
	if err := s.baseService.Vote(ctx, id, voter); err != nil {
		return err
	}
	s.cache.Invalidate("builds:")
	return nil
}

func (s *CachedBuildService) ByHero(ctx context.Context, heroID domain.HeroID) ([]*domain.Build, error) {
	cacheKey := fmt.Sprintf("builds:hero:%s", heroID)

	value, err := s.cache.GetOrSet(ctx, cacheKey, func(ctx context.Context) (interface{}, error) {
		return s.baseService.ByHero(ctx, heroID)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return value.([]*domain.Build), nil
}

func (s *CachedBuildService) ByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.Build, error) {
	cacheKey := fmt.Sprintf("builds:author:%s", authorID)

	value, err := s.cache.GetOrSet(ctx, cacheKey, func(ctx context.Context) (interface{}, error) {
		return s.baseService.ByAuthor(ctx, authorID)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return value.([]*domain.Build), nil
}

func (s *CachedBuildService) Top(ctx context.Context, limit int) ([]*domain.Build, error) {
	cacheKey := fmt.Sprintf("builds:top:%d", limit)

	value, err := s.cache.GetOrSet(ctx, cacheKey, func(ctx context.Context) (interface{}, error) {
		return s.baseService.Top(ctx, limit)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	return value.([]*domain.Build), nil
}

// Search results are not cached; queries are too varied to be worth
// holding on to.
func (s *CachedBuildService) Search(ctx context.Context, query string) ([]*domain.Build, error) {
	return s.baseService.Search(ctx, query)
}
