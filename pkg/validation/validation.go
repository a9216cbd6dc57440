package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// UsernameRegex validates username format
	UsernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\- ]+$`)

	// RoomIDRegex validates chat room ID format
	RoomIDRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)

	// HeroIDRegex validates hero ID format
	HeroIDRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// ValidateUsername validates a profile username
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters")
	}
	if len(username) > 50 {
		return fmt.Errorf("username is too long (max 50 characters)")
	}
	if !UsernameRegex.MatchString(username) {
		return fmt.Errorf("username contains invalid characters")
	}
	return nil
}

// ValidateRoomID validates a chat room ID
func ValidateRoomID(room string) error {
	if room == "" {
		return fmt.Errorf("room ID is required")
	}
	if len(room) > 50 {
		return fmt.Errorf("room ID is too long (max 50 characters)")
	}
	if !RoomIDRegex.MatchString(room) {
		return fmt.Errorf("invalid room ID format")
	}
	return nil
}

// ValidateHeroID validates a hero ID reference
func ValidateHeroID(heroID string) error {
	if heroID == "" {
		return fmt.Errorf("hero ID is required")
	}
	if len(heroID) > 100 {
		return fmt.Errorf("hero ID is too long (max 100 characters)")
	}
	if !HeroIDRegex.MatchString(heroID) {
		return fmt.Errorf("invalid hero ID format")
	}
	return nil
}

// ValidateName validates a build or tier list display name
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name is too long (max 100 characters)")
	}
	return nil
}

// ValidateChatMessage validates a chat message body
func ValidateChatMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message is required")
	}
	if len(message) > 2000 {
		return fmt.Errorf("message is too long (max 2000 characters)")
	}
	return nil
}
