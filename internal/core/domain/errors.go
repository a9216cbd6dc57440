package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileExists        = errors.New("profile already exists")
	ErrBuildNotFound        = errors.New("build not found")
	ErrTierListNotFound     = errors.New("tier list not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrHeroNotFound         = errors.New("hero not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrInvalidTierRank      = errors.New("invalid tier rank")
	ErrUnknownRoom          = errors.New("unknown chat room")
)
