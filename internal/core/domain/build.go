package domain

import "time"

type BuildID string

// Build is a community-submitted loadout for a single hero. HeroID and
// AuthorID are weak references resolved at read time; nothing cascades
// when the referenced record disappears.
type Build struct {
	ID             BuildID   `json:"id"`
	Name           string    `json:"name"`
	HeroID         HeroID    `json:"heroId"`
	ItemIDs        []ItemID  `json:"itemIds"`
	EmblemName     string    `json:"emblemName"`
	EmblemTalent   string    `json:"emblemTalent"`
	SpellName      string    `json:"spellName"`
	PlaystyleNotes []string  `json:"playstyleNotes"`
	Author         string    `json:"author"`
	AuthorID       ProfileID `json:"authorId"`
	PatchVersion   string    `json:"patchVersion"`
	Votes          int       `json:"votes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// BuildPatch carries optional field updates for a build. Nil fields are
// left untouched; slice fields replace the whole list when set.
type BuildPatch struct {
	Name           *string
	ItemIDs        []ItemID
	EmblemName     *string
	EmblemTalent   *string
	SpellName      *string
	PlaystyleNotes []string
	PatchVersion   *string
}

func (p BuildPatch) Apply(build *Build) {
	if p.Name != nil {
		build.Name = *p.Name
	}
	if p.ItemIDs != nil {
		build.ItemIDs = p.ItemIDs
	}
	if p.EmblemName != nil {
		build.EmblemName = *p.EmblemName
	}
	if p.EmblemTalent != nil {
		build.EmblemTalent = *p.EmblemTalent
	}
	if p.SpellName != nil {
		build.SpellName = *p.SpellName
	}
	if p.PlaystyleNotes != nil {
		build.PlaystyleNotes = p.PlaystyleNotes
	}
	if p.PatchVersion != nil {
		build.PatchVersion = *p.PatchVersion
	}
}
