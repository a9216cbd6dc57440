// Package keyed implements the core repositories over per-key storage
// slots. Each repository owns an in-memory snapshot of its collection
// and writes through to its slot on every mutation; a failed write keeps
// the snapshot authoritative for the session.
package keyed

import "metahub/internal/core/domain"

// Logical storage keys, one JSON document each.
const (
	KeyProfile       = "profile"
	KeyBuilds        = "community_builds"
	KeyTierLists     = "user_tier_lists"
	KeyNotifications = "notifications"
	KeyFavorites     = "favorites"

	chatKeyPrefix = "chat_"
)

// ChatKey returns the storage key for a room's message log.
func ChatKey(room domain.RoomID) string {
	return chatKeyPrefix + string(room)
}
