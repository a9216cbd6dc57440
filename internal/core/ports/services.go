package ports

import (
	"context"

	"metahub/internal/core/domain"
)

type ProfileService interface {
	Create(ctx context.Context, username string) (*domain.UserProfile, error)
	Get(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, patch domain.ProfilePatch) error
	AddFavoriteHero(ctx context.Context, heroID domain.HeroID) error
	RemoveFavoriteHero(ctx context.Context, heroID domain.HeroID) error
	IsLoggedIn(ctx context.Context) (bool, error)
}

type BuildService interface {
	Submit(ctx context.Context, build domain.Build) (*domain.Build, error)
	Get(ctx context.Context, id domain.BuildID) (*domain.Build, error)
	List(ctx context.Context) ([]*domain.Build, error)
	Update(ctx context.Context, id domain.BuildID, patch domain.BuildPatch) error
	Delete(ctx context.Context, id domain.BuildID) error
	Vote(ctx context.Context, id domain.BuildID, voter domain.ProfileID) error
	ByHero(ctx context.Context, heroID domain.HeroID) ([]*domain.Build, error)
	ByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.Build, error)
	Top(ctx context.Context, limit int) ([]*domain.Build, error)
	Search(ctx context.Context, query string) ([]*domain.Build, error)
}

type TierListService interface {
	Create(ctx context.Context, list domain.TierList) (*domain.TierList, error)
	Get(ctx context.Context, id domain.TierListID) (*domain.TierList, error)
	List(ctx context.Context) ([]*domain.TierList, error)
	Update(ctx context.Context, id domain.TierListID, patch domain.TierListPatch) error
	Delete(ctx context.Context, id domain.TierListID) error
	Vote(ctx context.Context, id domain.TierListID) error
	PlaceHero(ctx context.Context, id domain.TierListID, rank domain.TierRank, heroID domain.HeroID) (*domain.TierList, error)
	ByAuthor(ctx context.Context, authorID domain.ProfileID) ([]*domain.TierList, error)
	Public(ctx context.Context) ([]*domain.TierList, error)
}

type ChatService interface {
	Send(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error)
	History(ctx context.Context, room domain.RoomID) ([]*domain.ChatMessage, error)
	Recent(ctx context.Context, room domain.RoomID, limit int) ([]*domain.ChatMessage, error)
	DeleteMessage(ctx context.Context, room domain.RoomID, id domain.MessageID) error
}

type NotificationService interface {
	Notify(ctx context.Context, kind domain.NotificationType, title, message, link string) (*domain.Notification, error)
	List(ctx context.Context) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id domain.NotificationID) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id domain.NotificationID) error
}

type FavoritesService interface {
	Toggle(ctx context.Context, heroID domain.HeroID) (bool, error)
	Contains(ctx context.Context, heroID domain.HeroID) (bool, error)
	List(ctx context.Context) ([]domain.HeroID, error)
}

type CatalogService interface {
	Heroes(ctx context.Context, filter domain.HeroFilter) ([]*domain.Hero, error)
	Hero(ctx context.Context, id domain.HeroID) (*domain.Hero, error)
	Items(ctx context.Context) ([]*domain.EquipmentItem, error)
	Spells(ctx context.Context) ([]*domain.BattleSpell, error)
	Emblems(ctx context.Context) ([]*domain.EmblemSet, error)
	Compare(ctx context.Context, ids []domain.HeroID) (*domain.HeroComparison, error)
}
