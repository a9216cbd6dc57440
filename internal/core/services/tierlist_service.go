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

type tierListService struct {
	tierListRepo ports.TierListRepository
	profileRepo  ports.ProfileRepository
	notifier     ports.NotificationService
	metrics      ports.MetricsRecorder
	logger       *zap.SugaredLogger
}

func NewTierListService(
	tierListRepo ports.TierListRepository,
	profileRepo ports.ProfileRepository,
	notifier ports.NotificationService,
	metrics ports.MetricsRecorder,
	logger *zap.SugaredLogger,
) ports.TierListService {
	return &tierListService{
		tierListRepo: tierListRepo,
		profileRepo:  profileRepo,
		notifier:     notifier,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *tierListService) Create(ctx context.Context, list domain.TierList) (*domain.TierList, error) {
	if err := validation.ValidateName(list.Name); err != nil {
		return nil, fmt.Errorf("invalid tier list name: %w", err)
	}
	for rank := range list.Tiers {
		if !rank.Valid() {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTierRank, rank)
		}
	}

	list.ID = domain.TierListID(utils.GenerateTierListID())
	list.Votes = 0
	list.CreatedAt = time.Now()
	list.UpdatedAt = time.Time{}
	if list.Tiers == nil {
		list.Tiers = domain.NewTierBuckets()
	} else {
		// Fill in any rank the caller omitted so every bucket exists.
		for _, rank := range domain.TierRanks {
			if list.Tiers[rank] == nil {
				list.Tiers[rank] = []domain.HeroID{}
			}
		}
	}

	profile, err := s.profileRepo.Get(ctx)
	if err == nil {
		if list.AuthorID == "" {
			list.AuthorID = profile.ID
		}
		if list.Author == "" {
			list.Author = profile.Username
		}
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	if err := s.tierListRepo.Add(ctx, &list); err != nil {
		return nil, fmt.Errorf("failed to save tier list: %w", err)
	}

	if profile != nil {
		profile.CreatedTierLists = append(profile.CreatedTierLists, list.ID)
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			s.logger.Warnw("failed to record tier list authorship", "tier_list_id", list.ID, "error", err)
		}
	}
	s.updateCollectionSize(ctx)

	s.logger.Infow("tier list created", "tier_list_id", list.ID, "name", list.Name)
	return &list, nil
}

func (s *tierListService) Get(ctx context.Context, id domain.TierListID) (*domain.TierList, error) {
	return s.tierListRepo.GetByID(ctx, id)
}

func (s *tierListService) List(ctx context.Context) ([]*domain.TierList, error) {
	return s.tierListRepo.List(ctx)
}

func (s *tierListService) Update(ctx context.Context, id domain.TierListID, patch domain.TierListPatch) error {
	if patch.Name != nil {
		if err := validation.ValidateName(*patch.Name); err != nil {
			return fmt.Errorf("invalid tier list name: %w", err)
		}
	}
	for rank := range patch.Tiers {
		if !rank.Valid() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidTierRank, rank)
		}
	}

	_, err := s.tierListRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrTierListNotFound) {
		s.logger.Debugw("update ignored, tier list not found", "tier_list_id", id)
		return nil
	}
	return err
}

func (s *tierListService) Delete(ctx context.Context, id domain.TierListID) error {
	err := s.tierListRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrTierListNotFound) {
		s.logger.Debugw("delete ignored, tier list not found", "tier_list_id", id)
		return nil
	}
	if err != nil {
		return err
	}

	s.updateCollectionSize(ctx)
	s.logger.Infow("tier list deleted", "tier_list_id", id)
	return nil
}

func (s *tierListService) Vote(ctx context.Context, id domain.TierListID) error {
	list, err := s.tierListRepo.Vote(ctx, id)
	if errors.Is(err, domain.ErrTierListNotFound) {
		s.logger.Debugw("vote ignored, tier list not found", "tier_list_id", id)
		return nil
	}
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordVote("tier_list")
	}
	if s.notifier != nil {
		_, err := s.notifier.Notify(ctx, domain.NotifyTierListVote,
			"Tier list upvoted",
			fmt.Sprintf("%q now has %d votes", list.Name, list.Votes),
			"/tier-lists/"+string(list.ID))
		if err != nil {
			s.logger.Warnw("failed to emit vote notification", "tier_list_id", id, "error", err)
		}
	}

	return nil
}

func (s *tierListService) PlaceHero(ctx context.Context, id domain.TierListID, rank domain.TierRank, heroID domain.HeroID) (*domain.TierList, error) {
	if !rank.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTierRank, rank)
	}
	if err := validation.ValidateHeroID(string(heroID)); err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}
	return s.tierListRepo.PlaceHero(ctx, id, rank, heroID)
}

func (s *tierListService) ByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.TierList, error) {
	return s.tierListRepo.FindByAuthor(ctx, authorID)
}

func (s *tierListService) Public(ctx context.Context) ([]*domain.TierList, error) {
	lists, err := s.tierListRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return publicTierLists(lists), nil
}

func (s *tierListService) updateCollectionSize(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	lists, err := s.tierListRepo.List(ctx)
	if err != nil {
		return
	}
	s.metrics.SetCollectionSize("tier_lists", len(lists))
}
