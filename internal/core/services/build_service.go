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

type buildService struct {
	buildRepo   ports.BuildRepository
	profileRepo ports.ProfileRepository
	notifier    ports.NotificationService
	metrics     ports.MetricsRecorder
	logger      *zap.SugaredLogger
}

func NewBuildService(
	buildRepo ports.BuildRepository,
	profileRepo ports.ProfileRepository,
	notifier ports.NotificationService,
	metrics ports.MetricsRecorder,
	logger *zap.SugaredLogger,
) ports.BuildService {
	return &buildService{
		buildRepo:   buildRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *buildService) Submit(ctx context.Context, build domain.Build) (*domain.Build, error) {
	if err := validation.ValidateName(build.Name); err != nil {
		return nil, fmt.Errorf("invalid build name: %w", err)
	}
	if err := validation.ValidateHeroID(string(build.HeroID)); err != nil {
		return nil, fmt.Errorf("invalid hero id: %w", err)
	}

	build.ID = domain.BuildID(utils.GenerateBuildID())
	build.Votes = 0
	build.CreatedAt = time.Now()
	build.UpdatedAt = time.Time{}
	if build.ItemIDs == nil {
		build.ItemIDs = []domain.ItemID{}
	}
	if build.PlaystyleNotes == nil {
		build.PlaystyleNotes = []string{}
	}

	// Stamp the local profile as author when the caller left it blank.
	profile, err := s.profileRepo.Get(ctx)
	if err == nil {
		if build.AuthorID == "" {
			build.AuthorID = profile.ID
		}
		if build.Author == "" {
			build.Author = profile.Username
		}
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	if err := s.buildRepo.Add(ctx, &build); err != nil {
		return nil, fmt.Errorf("failed to save build: %w", err)
	}

	s.recordAuthorship(ctx, profile, build.ID)
	s.updateCollectionSize(ctx)

	s.logger.Infow("build submitted",
		"build_id", build.ID,
		"hero_id", build.HeroID,
		"author", build.Author)
	return &build, nil
}

func (s *buildService) Get(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	return s.buildRepo.GetByID(ctx, id)
}

func (s *buildService) List(ctx context.Context) ([]*domain.Build, error) {
	return s.buildRepo.List(ctx)
}

func (s *buildService) Update(ctx context.Context, id domain.BuildID, patch domain.BuildPatch) error {
	if patch.Name != nil {
		if err := validation.ValidateName(*patch.Name); err != nil {
			return fmt.Errorf("invalid build name: %w", err)
		}
	}

	_, err := s.buildRepo.Update(ctx, id, patch)
	if errors.Is(err, domain.ErrBuildNotFound) {
		s.logger.Debugw("update ignored, build not found", "build_id", id)
		return nil
	}
	return err
}

func (s *buildService) Delete(ctx context.Context, id domain.BuildID) error {
	err := s.buildRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrBuildNotFound) {
		s.logger.Debugw("delete ignored, build not found", "build_id", id)
		return nil
	}
	if err != nil {
		return err
	}

	s.updateCollectionSize(ctx)
	s.logger.Infow("build deleted", "build_id", id)
	return nil
}

// Vote increments the build's counter. Votes are not deduplicated per
// voter; the voter id only feeds the profile's voting history.
func (s *buildService) Vote(ctx context.Context, id domain.BuildID, voter domain.ProfileID) error {
	build, err := s.buildRepo.Vote(ctx, id)
	if errors.Is(err, domain.ErrBuildNotFound) {
		s.logger.Debugw("vote ignored, build not found", "build_id", id)
		return nil
	}
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordVote("build")
	}
	s.recordVoteHistory(ctx, voter, id)

	if s.notifier != nil {
		_, err := s.notifier.Notify(ctx, domain.NotifyBuildVote,
			"Build upvoted",
			fmt.Sprintf("%q now has %d votes", build.Name, build.Votes),
			"/builds/"+string(build.ID))
		if err != nil {
			s.logger.Warnw("failed to emit vote notification", "build_id", id, "error", err)
		}
	}

	return nil
}

func (s *buildService) ByHero(ctx context.Context, heroID domain.HeroID) ([]*domain.Build, error) {
	return s.buildRepo.FindByHero(ctx, heroID)
}

func (s *buildService) ByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.Build, error) {
	return s.buildRepo.FindByAuthor(ctx, authorID)
}

func (s *buildService) Top(ctx context.Context, limit int) ([]*domain.Build, error) {
	builds, err := s.buildRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return topBuilds(builds, limit), nil
}

func (s *buildService) Search(ctx context.Context, query string) ([]*domain.Build, error) {
	builds, err := s.buildRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return searchBuilds(builds, query), nil
}

// recordAuthorship appends the build to the profile's created list.
// Bookkeeping is best effort and never fails the submission.
func (s *buildService) recordAuthorship(ctx context.Context, profile *domain.UserProfile, id domain.BuildID) {
	if profile == nil {
		return
	}
	profile.CreatedBuilds = append(profile.CreatedBuilds, id)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		s.logger.Warnw("failed to record build authorship", "build_id", id, "error", err)
	}
}

func (s *buildService) recordVoteHistory(ctx context.Context, voter domain.ProfileID, id domain.BuildID) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return
	}
	if voter != "" && profile.ID != voter {
		return
	}
	profile.VotedBuilds = append(profile.VotedBuilds, id)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		s.logger.Warnw("failed to record vote history", "build_id", id, "error", err)
	}
}

func (s *buildService) updateCollectionSize(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	builds, err := s.buildRepo.List(ctx)
	if err != nil {
		return
	}
	s.metrics.SetCollectionSize("builds", len(builds))
}
