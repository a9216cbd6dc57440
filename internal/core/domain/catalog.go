package domain

type HeroID string
type ItemID string

type HeroRole string

const (
	RoleTank     HeroRole = "Tank"
	RoleMage     HeroRole = "Mage"
	RoleAssassin HeroRole = "Assassin"
	RoleMarksman HeroRole = "Marksman"
	RoleSupport  HeroRole = "Support"
	RoleFighter  HeroRole = "Fighter"
)

type TierRank string

const (
	TierSPlus TierRank = "S+"
	TierS     TierRank = "S"
	TierA     TierRank = "A"
	TierB     TierRank = "B"
	TierC     TierRank = "C"
)

// TierRanks lists all ranks from strongest to weakest.
var TierRanks = []TierRank{TierSPlus, TierS, TierA, TierB, TierC}

func (r TierRank) Valid() bool {
	for _, rank := range TierRanks {
		if r == rank {
			return true
		}
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Hero struct {
	ID            HeroID     `json:"id"`
	Name          string     `json:"name"`
	Role          HeroRole   `json:"role"`
	SecondaryRole HeroRole   `json:"secondaryRole,omitempty"`
	Tier          TierRank   `json:"tier"`
	WinRate       float64    `json:"winRate"`
	PickRate      float64    `json:"pickRate"`
	BanRate       float64    `json:"banRate,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	Description   string     `json:"description,omitempty"`
}

type ItemCategory string

const (
	ItemAttack   ItemCategory = "Attack"
	ItemMagic    ItemCategory = "Magic"
	ItemDefense  ItemCategory = "Defense"
	ItemMovement ItemCategory = "Movement"
	ItemJungle   ItemCategory = "Jungle"
	ItemRoaming  ItemCategory = "Roaming"
)

type EquipmentItem struct {
	ID       ItemID       `json:"id"`
	Name     string       `json:"name"`
	Category ItemCategory `json:"category"`
}

type BattleSpell struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type EmblemSet struct {
	Name    string   `json:"name"`
	Talents []string `json:"talents"`
}

// HeroFilter narrows and orders catalog hero listings. Zero values mean
// "no restriction".
type HeroFilter struct {
	Role       HeroRole
	Tier       TierRank
	Difficulty Difficulty
	Query      string
	SortBy     string // name, tier, winRate, pickRate
	Descending bool
}

// HeroComparison holds side-by-side stats for a set of heroes.
type HeroComparison struct {
	Heroes    []*Hero   `json:"heroes"`
	WinRates  []float64 `json:"winRates"`
	PickRates []float64 `json:"pickRates"`
	BanRates  []float64 `json:"banRates"`
}
