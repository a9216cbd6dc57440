package domain

import "time"

type NotificationID string

type NotificationType string

const (
	NotifyBuildVote    NotificationType = "build_vote"
	NotifyTierListVote NotificationType = "tier_list_vote"
	NotifyMention      NotificationType = "mention"
	NotifyReply        NotificationType = "reply"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyBuildVote, NotifyTierListVote, NotifyMention, NotifyReply:
		return true
	}
	return false
}

// MaxNotifications caps the stored list at the most recent entries.
const MaxNotifications = 50

type Notification struct {
	ID        NotificationID   `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	Link      string           `json:"link,omitempty"`
}
