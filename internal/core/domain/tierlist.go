package domain

import "time"

type TierListID string

// TierList is a user-authored ranking of heroes across the fixed rank
// set. A hero id appears in at most one bucket; PlaceHero maintains that
// invariant.
type TierList struct {
	ID           TierListID            `json:"id"`
	Name         string                `json:"name"`
	Author       string                `json:"author"`
	AuthorID     ProfileID             `json:"authorId"`
	PatchVersion string                `json:"patchVersion"`
	Description  string                `json:"description,omitempty"`
	Tiers        map[TierRank][]HeroID `json:"tiers"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt,omitempty"`
	Votes        int                   `json:"votes"`
	IsPublic     bool                  `json:"isPublic"`
}

// NewTierBuckets returns an empty bucket per rank.
func NewTierBuckets() map[TierRank][]HeroID {
	tiers := make(map[TierRank][]HeroID, len(TierRanks))
	for _, rank := range TierRanks {
		tiers[rank] = []HeroID{}
	}
	return tiers
}

// PlaceHero moves the hero into the given bucket, removing it from every
// other bucket first.
func (t *TierList) PlaceHero(rank TierRank, heroID HeroID) {
	t.RemoveHero(heroID)
	if t.Tiers == nil {
		t.Tiers = NewTierBuckets()
	}
	t.Tiers[rank] = append(t.Tiers[rank], heroID)
}

// RemoveHero drops the hero from all buckets.
func (t *TierList) RemoveHero(heroID HeroID) {
	for rank, bucket := range t.Tiers {
		kept := bucket[:0]
		for _, id := range bucket {
			if id != heroID {
				kept = append(kept, id)
			}
		}
		t.Tiers[rank] = kept
	}
}

// RankOf returns the bucket currently holding the hero, if any.
func (t *TierList) RankOf(heroID HeroID) (TierRank, bool) {
	for _, rank := range TierRanks {
		for _, id := range t.Tiers[rank] {
			if id == heroID {
				return rank, true
			}
		}
	}
	return "", false
}

// TierListPatch carries optional field updates for a tier list.
type TierListPatch struct {
	Name         *string
	Description  *string
	PatchVersion *string
	Tiers        map[TierRank][]HeroID
	IsPublic     *bool
}

func (p TierListPatch) Apply(list *TierList) {
	if p.Name != nil {
		list.Name = *p.Name
	}
	if p.Description != nil {
		list.Description = *p.Description
	}
	if p.PatchVersion != nil {
		list.PatchVersion = *p.PatchVersion
	}
	if p.Tiers != nil {
		list.Tiers = p.Tiers
	}
	if p.IsPublic != nil {
		list.IsPublic = *p.IsPublic
	}
}
