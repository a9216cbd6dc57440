package catalog

import (
	"context"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
)

// StaticRepository serves the bundled hero, item, spell and emblem
// tables. The data is immutable; readers get copies of the slices but
// share the underlying records.
type StaticRepository struct {
	heroes     []*domain.Hero
	heroIndex  map[domain.HeroID]*domain.Hero
	items      []*domain.EquipmentItem
	itemIndex  map[domain.ItemID]*domain.EquipmentItem
	spells     []*domain.BattleSpell
	emblemSets []*domain.EmblemSet
}

func NewStaticRepository() ports.CatalogRepository {
	r := &StaticRepository{
		heroes:     heroes,
		heroIndex:  make(map[domain.HeroID]*domain.Hero, len(heroes)),
		items:      items,
		itemIndex:  make(map[domain.ItemID]*domain.EquipmentItem, len(items)),
		spells:     spells,
		emblemSets: emblems,
	}
	for _, hero := range heroes {
		r.heroIndex[hero.ID] = hero
	}
	for _, item := range items {
		r.itemIndex[item.ID] = item
	}
	return r
}

func (r *StaticRepository) Heroes(ctx context.Context) ([]*domain.Hero, error) {
	out := make([]*domain.Hero, len(r.heroes))
	copy(out, r.heroes)
	return out, nil
}

func (r *StaticRepository) HeroByID(ctx context.Context, id domain.HeroID) (*domain.Hero, error) {
	hero, ok := r.heroIndex[id]
	if !ok {
		return nil, domain.ErrHeroNotFound
	}
	return hero, nil
}

func (r *StaticRepository) Items(ctx context.Context) ([]*domain.EquipmentItem, error) {
	out := make([]*domain.EquipmentItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *StaticRepository) ItemByID(ctx context.Context, id domain.ItemID) (*domain.EquipmentItem, error) {
	item, ok := r.itemIndex[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (r *StaticRepository) Spells(ctx context.Context) ([]*domain.BattleSpell, error) {
	out := make([]*domain.BattleSpell, len(r.spells))
	copy(out, r.spells)
	return out, nil
}

func (r *StaticRepository) Emblems(ctx context.Context) ([]*domain.EmblemSet, error) {
	out := make([]*domain.EmblemSet, len(r.emblemSets))
	copy(out, r.emblemSets)
	return out, nil
}
