package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/pkg/validation"
)

// favoritesService keeps the standalone favorites set and the profile's
// favoriteHeroes list in step. The set is the source of truth; the
// profile copy is best-effort denormalization.
type favoritesService struct {
	favoritesRepo  ports.FavoritesRepository
	profileService ports.ProfileService
	logger         *zap.SugaredLogger
}

func NewFavoritesService(
	favoritesRepo ports.FavoritesRepository,
	profileService ports.ProfileService,
	logger *zap.SugaredLogger,
) ports.FavoritesService {
	return &favoritesService{
		favoritesRepo:  favoritesRepo,
		profileService: profileService,
		logger:         logger,
	}
}

func (s *favoritesService) Toggle(ctx context.Context, heroID domain.HeroID) (bool, error) {
	if err := validation.ValidateHeroID(string(heroID)); err != nil {
		return false, fmt.Errorf("invalid hero id: %w", err)
	}

	favorited, err := s.favoritesRepo.Toggle(ctx, heroID)
	if err != nil {
		return false, err
	}

	if s.profileService != nil {
		var syncErr error
		if favorited {
			syncErr = s.profileService.AddFavoriteHero(ctx, heroID)
		} else {
			syncErr = s.profileService.RemoveFavoriteHero(ctx, heroID)
		}
		if syncErr != nil {
			s.logger.Warnw("failed to sync favorite to profile", "hero_id", heroID, "error", syncErr)
		}
	}

	s.logger.Debugw("favorite toggled", "hero_id", heroID, "favorited", favorited)
	return favorited, nil
}

func (s *favoritesService) Contains(ctx context.Context, heroID domain.HeroID) (bool, error) {
	return s.favoritesRepo.Contains(ctx, heroID)
}

func (s *favoritesService) List(ctx context.Context) ([]domain.HeroID, error) {
	return s.favoritesRepo.List(ctx)
}
