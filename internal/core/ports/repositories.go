package ports

import (
	"context"

	"metahub/internal/core/domain"
)

// ProfileRepository manages the single local profile record.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, profile *domain.UserProfile) error
	Exists(ctx context.Context) (bool, error)
}

// BuildRepository manages the community build collection, most-recent-first.
// Mutations addressed by id return the matching not-found sentinel when the
// record is absent; callers decide whether that is an error or a no-op.
type BuildRepository interface {
	List(ctx context.Context) ([]*domain.Build, error)
	GetByID(ctx context.Context, id domain.BuildID) (*domain.Build, error)
	Add(ctx context.Context, build *domain.Build) error
	Update(ctx context.Context, id domain.BuildID, patch domain.BuildPatch) (*domain.Build, error)
	Delete(ctx context.Context, id domain.BuildID) error
	Vote(ctx context.Context, id domain.BuildID) (*domain.Build, error)
	FindByHero(ctx context.Context, heroID domain.HeroID) ([]*domain.Build, error)
	FindByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.Build, error)
}

type TierListRepository interface {
	List(ctx context.Context) ([]*domain.TierList, error)
	GetByID(ctx context.Context, id domain.TierListID) (*domain.TierList, error)
	Add(ctx context.Context, list *domain.TierList) error
	Update(ctx context.Context, id domain.TierListID, patch domain.TierListPatch) (*domain.TierList, error)
	Delete(ctx context.Context, id domain.TierListID) error
	Vote(ctx context.Context, id domain.TierListID) (*domain.TierList, error)
	PlaceHero(ctx context.Context, id domain.TierListID, rank domain.TierRank, heroID domain.HeroID) (*domain.TierList, error)
	FindByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.TierList, error)
}

// ChatRepository manages per-room bounded message logs, oldest-first.
type ChatRepository interface {
	Append(ctx context.Context, msg *domain.ChatMessage) error
	Messages(ctx context.Context, room domain.RoomID) ([]*domain.ChatMessage, error)
	Delete(ctx context.Context, room domain.RoomID, id domain.MessageID) error
}

// NotificationRepository manages the bounded notification list,
// most-recent-first.
type NotificationRepository interface {
	List(ctx context.Context) ([]*domain.Notification, error)
	Add(ctx context.Context, n *domain.Notification) error
	MarkRead(ctx context.Context, id domain.NotificationID) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id domain.NotificationID) error
}

// FavoritesRepository manages the bookmarked hero set. Toggle reports the
// resulting membership.
type FavoritesRepository interface {
	List(ctx context.Context) ([]domain.HeroID, error)
	Toggle(ctx context.Context, heroID domain.HeroID) (bool, error)
	Contains(ctx context.Context, heroID domain.HeroID) (bool, error)
}

// CatalogRepository exposes the read-only static data tables that build
// and tier-list foreign keys resolve against.
type CatalogRepository interface {
	Heroes(ctx context.Context) ([]*domain.Hero, error)
	HeroByID(ctx context.Context, id domain.HeroID) (*domain.Hero, error)
	Items(ctx context.Context) ([]*domain.EquipmentItem, error)
	ItemByID(ctx context.Context, id domain.ItemID) (*domain.EquipmentItem, error)
	Spells(ctx context.Context) ([]*domain.BattleSpell, error)
	Emblems(ctx context.Context) ([]*domain.EmblemSet, error)
}
