package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateID generates a prefixed random ID. UUIDs replace the old
// timestamp-string scheme, which could collide under rapid repeated
// calls within the same clock tick.
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}

// GenerateProfileID generates a unique profile ID
func GenerateProfileID() string {
	return GenerateID("user")
}

// GenerateBuildID generates a unique build ID
func GenerateBuildID() string {
	return GenerateID("build")
}

// GenerateTierListID generates a unique tier list ID
func GenerateTierListID() string {
	return GenerateID("tierlist")
}

// GenerateMessageID generates a unique chat message ID
func GenerateMessageID() string {
	return GenerateID("msg")
}

// GenerateNotificationID generates a unique notification ID
func GenerateNotificationID() string {
	return GenerateID("notif")
}

// GenerateRequestID generates a unique request ID
func GenerateRequestID() string {
	timestamp := time.Now().UnixNano()
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("req_%d_%s", timestamp, hex.EncodeToString(b))
}
