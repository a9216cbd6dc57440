package domain

import "time"

type MessageID string
type RoomID string

// DefaultRoom is the room used when a client does not name one.
const DefaultRoom RoomID = "general"

// MaxRoomMessages caps the stored history per room. Oldest messages are
// evicted when a send pushes the log past the cap.
const MaxRoomMessages = 100

type ChatMessage struct {
	ID        MessageID `json:"id"`
	UserID    ProfileID `json:"userId"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Room      RoomID    `json:"room"`
	ReplyTo   MessageID `json:"replyTo,omitempty"`
}
