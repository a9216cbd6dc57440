package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/pkg/utils"
	"metahub/pkg/validation"
)

type profileService struct {
	profileRepo ports.ProfileRepository
	logger      *zap.SugaredLogger
}

func NewProfileService(profileRepo ports.ProfileRepository, logger *zap.SugaredLogger) ports.ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (s *profileService) Create(ctx context.Context, username string) (*domain.UserProfile, error) {
	username = utils.NormalizeUsername(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}

	exists, err := s.profileRepo.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProfileExists
	}

	profile := &domain.UserProfile{
		ID:               domain.ProfileID(utils.GenerateProfileID()),
		Username:         username,
		FavoriteHeroes:   []domain.HeroID{},
		CreatedBuilds:    []domain.BuildID{},
		CreatedTierLists: []domain.TierListID{},
		VotedBuilds:      []domain.BuildID{},
		JoinedAt:         time.Now(),
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infow("profile created", "profile_id", profile.ID, "username", username)
	return profile, nil
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profileRepo.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, patch domain.ProfilePatch) error {
	if patch.Username != nil {
		normalized := utils.NormalizeUsername(*patch.Username)
		if err := validation.ValidateUsername(normalized); err != nil {
			return fmt.Errorf("invalid username: %w", err)
		}
		patch.Username = &normalized
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		// Updating an absent profile is a no-op.
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}
		return err
	}

	patch.Apply(profile)
	return s.profileRepo.Save(ctx, profile)
}

func (s *profileService) AddFavoriteHero(ctx context.Context, heroID domain.HeroID) error {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}
		return err
	}

	if profile.HasFavorite(heroID) {
		return nil
	}

	profile.FavoriteHeroes = append(profile.FavoriteHeroes, heroID)
	return s.profileRepo.Save(ctx, profile)
}

func (s *profileService) RemoveFavoriteHero(ctx context.Context, heroID domain.HeroID) error {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}
		return err
	}

	kept := profile.FavoriteHeroes[:0]
	for _, id := range profile.FavoriteHeroes {
		if id != heroID {
			kept = append(kept, id)
		}
	}
	profile.FavoriteHeroes = kept
	return s.profileRepo.Save(ctx, profile)
}

func (s *profileService) IsLoggedIn(ctx context.Context) (bool, error) {
	return s.profileRepo.Exists(ctx)
}
