package domain

import "time"

type ProfileID string

// UserProfile is the single local account record. At most one profile
// exists per store; the ID is immutable once created.
type UserProfile struct {
	ID               ProfileID    `json:"id"`
	Username         string       `json:"username"`
	Avatar           string       `json:"avatar,omitempty"`
	Bio              string       `json:"bio,omitempty"`
	FavoriteHeroes   []HeroID     `json:"favoriteHeroes"`
	CreatedBuilds    []BuildID    `json:"createdBuilds"`
	CreatedTierLists []TierListID `json:"createdTierLists"`
	VotedBuilds      []BuildID    `json:"votedBuilds"`
	JoinedAt         time.Time    `json:"joinedAt"`
}

// ProfilePatch carries optional field updates for a profile. Nil fields
// are left untouched.
type ProfilePatch struct {
	Username *string
	Avatar   *string
	Bio      *string
}

// Apply merges the patch into the profile, field by field.
func (p ProfilePatch) Apply(profile *UserProfile) {
	if p.Username != nil {
		profile.Username = *p.Username
	}
	if p.Avatar != nil {
		profile.Avatar = *p.Avatar
	}
	if p.Bio != nil {
		profile.Bio = *p.Bio
	}
}

// HasFavorite reports whether the hero is already in the favorites list.
func (u *UserProfile) HasFavorite(heroID HeroID) bool {
	for _, id := range u.FavoriteHeroes {
		if id == heroID {
			return true
		}
	}
	return false
}
