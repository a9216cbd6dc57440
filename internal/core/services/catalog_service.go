package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/pkg/utils"
)

// MaxComparedHeroes bounds a side-by-side comparison request.
const MaxComparedHeroes = 4

type catalogService struct {
	catalogRepo ports.CatalogRepository
	logger      *zap.SugaredLogger
}

func NewCatalogService(catalogRepo ports.CatalogRepository, logger *zap.SugaredLogger) ports.CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *catalogService) Heroes(ctx context.Context, filter domain.HeroFilter) ([]*domain.Hero, error) {
	heroes, err := s.catalogRepo.Heroes(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Hero, 0, len(heroes))
	for _, hero := range heroes {
		if !matchesFilter(hero, filter) {
			continue
		}
		filtered = append(filtered, hero)
	}

	sortHeroes(filtered, filter.SortBy, filter.Descending)
	return filtered, nil
}

func (s *catalogService) Hero(ctx context.Context, id domain.HeroID) (*domain.Hero, error) {
	return s.catalogRepo.HeroByID(ctx, id)
}

func (s *catalogService) Items(ctx context.Context) ([]*domain.EquipmentItem, error) {
	return s.catalogRepo.Items(ctx)
}

func (s *catalogService) Spells(ctx context.Context) ([]*domain.BattleSpell, error) {
	return s.catalogRepo.Spells(ctx)
}

func (s *catalogService) Emblems(ctx context.Context) ([]*domain.EmblemSet, error) {
	return s.catalogRepo.Emblems(ctx)
}

func (s *catalogService) Compare(ctx context.Context, ids []domain.HeroID) (*domain.HeroComparison, error) {
	if len(ids) < 2 {
		return nil, fmt.Errorf("comparison needs at least 2 heroes, got %d", len(ids))
	}
	if len(ids) > MaxComparedHeroes {
		return nil, fmt.Errorf("comparison limited to %d heroes, got %d", MaxComparedHeroes, len(ids))
	}

	comparison := &domain.HeroComparison{
		Heroes:    make([]*domain.Hero, 0, len(ids)),
		WinRates:  make([]float64, 0, len(ids)),
		PickRates: make([]float64, 0, len(ids)),
		BanRates:  make([]float64, 0, len(ids)),
	}

	for _, id := range ids {
		hero, err := s.catalogRepo.HeroByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("hero %s: %w", id, err)
		}
		comparison.Heroes = append(comparison.Heroes, hero)
		comparison.WinRates = append(comparison.WinRates, hero.WinRate)
		comparison.PickRates = append(comparison.PickRates, hero.PickRate)
		comparison.BanRates = append(comparison.BanRates, hero.BanRate)
	}

	return comparison, nil
}

func matchesFilter(hero *domain.Hero, filter domain.HeroFilter) bool {
	if filter.Role != "" && hero.Role != filter.Role && hero.SecondaryRole != filter.Role {
		return false
	}
	if filter.Tier != "" && hero.Tier != filter.Tier {
		return false
	}
	if filter.Difficulty != "" && hero.Difficulty != filter.Difficulty {
		return false
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		if !utils.ContainsFold(hero.Name, q) && !utils.ContainsFold(string(hero.ID), q) {
			return false
		}
	}
	return true
}

// tierOrder maps ranks to sortable weights, strongest first.
var tierOrder = func() map[domain.TierRank]int {
	order := make(map[domain.TierRank]int, len(domain.TierRanks))
	for i, rank := range domain.TierRanks {
		order[rank] = i
	}
	return order
}()

func sortHeroes(heroes []*domain.Hero, sortBy string, descending bool) {
	var less func(a, b *domain.Hero) bool
	switch sortBy {
	case "tier":
		less = func(a, b *domain.Hero) bool { return tierOrder[a.Tier] < tierOrder[b.Tier] }
	case "winRate":
		less = func(a, b *domain.Hero) bool { return a.WinRate < b.WinRate }
	case "pickRate":
		less = func(a, b *domain.Hero) bool { return a.PickRate < b.PickRate }
	default:
		less = func(a, b *domain.Hero) bool { return a.Name < b.Name }
	}

	sort.SliceStable(heroes, func(i, j int) bool {
		if descending {
			return less(heroes[j], heroes[i])
		}
		return less(heroes[i], heroes[j])
	})
}
