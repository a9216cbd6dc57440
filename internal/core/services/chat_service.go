package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	"metahub/pkg/utils"
	"metahub/pkg/validation"
)

type chatService struct {
	chatRepo    ports.ChatRepository
	profileRepo ports.ProfileRepository
	rooms       map[domain.RoomID]struct{}
	metrics     ports.MetricsRecorder
	logger      *zap.SugaredLogger
}

// NewChatService wires the chat repository to the configured room set.
// An empty room list disables the allow-list and accepts any valid room id.
func NewChatService(
	chatRepo ports.ChatRepository,
	profileRepo ports.ProfileRepository,
	rooms []domain.RoomID,
	metrics ports.MetricsRecorder,
	logger *zap.SugaredLogger,
) ports.ChatService {
	allowed := make(map[domain.RoomID]struct{}, len(rooms))
	for _, room := range rooms {
		allowed[room] = struct{}{}
	}
	return &chatService{
		chatRepo:    chatRepo,
		profileRepo: profileRepo,
		rooms:       allowed,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *chatService) Send(ctx context.Context, msg domain.ChatMessage) (*domain.ChatMessage, error) {
	if msg.Room == "" {
		msg.Room = domain.DefaultRoom
	}
	if err := s.checkRoom(msg.Room); err != nil {
		return nil, err
	}

	msg.Message = utils.SanitizeString(msg.Message)
	if err := validation.ValidateChatMessage(msg.Message); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}

	msg.ID = domain.MessageID(utils.GenerateMessageID())
	msg.Timestamp = time.Now()

	// Fill sender identity from the local profile when the caller left
	// it blank, mirroring how builds pick up their author.
	if msg.UserID == "" || msg.Username == "" {
		profile, err := s.profileRepo.Get(ctx)
		if err == nil {
			if msg.UserID == "" {
				msg.UserID = profile.ID
			}
			if msg.Username == "" {
				msg.Username = profile.Username
			}
			if msg.Avatar == "" {
				msg.Avatar = profile.Avatar
			}
		} else if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
	}
	if msg.Username == "" {
		msg.Username = "Guest"
	}

	if err := s.chatRepo.Append(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordChatMessage(string(msg.Room))
	}
	s.logger.Debugw("message sent", "room", msg.Room, "message_id", msg.ID)
	return &msg, nil
}

func (s *chatService) History(ctx context.Context, room domain.RoomID) ([]*domain.ChatMessage, error) {
	if room == "" {
		room = domain.DefaultRoom
	}
	if err := s.checkRoom(room); err != nil {
		return nil, err
	}
	return s.chatRepo.Messages(ctx, room)
}

func (s *chatService) Recent(ctx context.Context, room domain.RoomID, limit int) ([]*domain.ChatMessage, error) {
	messages, err := s.History(ctx, room)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (s *chatService) DeleteMessage(ctx context.Context, room domain.RoomID, id domain.MessageID) error {
	if room == "" {
		room = domain.DefaultRoom
	}
	err := s.chatRepo.Delete(ctx, room, id)
	if errors.Is(err, domain.ErrMessageNotFound) {
		s.logger.Debugw("delete ignored, message not found", "room", room, "message_id", id)
		return nil
	}
	return err
}

func (s *chatService) checkRoom(room domain.RoomID) error {
	if err := validation.ValidateRoomID(string(room)); err != nil {
		return fmt.Errorf("invalid room: %w", err)
	}
	if len(s.rooms) == 0 {
		return nil
	}
	if _, ok := s.rooms[room]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownRoom, room)
	}
	return nil
}
