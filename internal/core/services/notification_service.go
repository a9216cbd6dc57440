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
)

// Messages longer than this are cut before they reach the feed; the
// notification center renders a single line per entry.
const maxNotificationMessage = 300

type notificationService struct {
	notificationRepo ports.NotificationRepository
	metrics          ports.MetricsRecorder
	logger           *zap.SugaredLogger
}

func NewNotificationService(
	notificationRepo ports.NotificationRepository,
	metrics ports.MetricsRecorder,
	logger *zap.SugaredLogger,
) ports.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, kind domain.NotificationType, title, message, link string) (*domain.Notification, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown notification type: %s", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}

	n := &domain.Notification{
		ID:        domain.NotificationID(utils.GenerateNotificationID()),
		Type:      kind,
		Title:     title,
		Message:   utils.TruncateString(message, maxNotificationMessage),
		Read:      false,
		CreatedAt: time.Now(),
		Link:      link,
	}

	if err := s.notificationRepo.Add(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to store notification: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordNotification(string(kind))
	}
	s.logger.Debugw("notification added", "notification_id", n.ID, "type", kind)
	return n, nil
}

func (s *notificationService) List(ctx context.Context) ([]*domain.Notification, error) {
	return s.notificationRepo.List(ctx)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	notifications, err := s.notificationRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	return unreadCount(notifications), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id domain.NotificationID) error {
	err := s.notificationRepo.MarkRead(ctx, id)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		s.logger.Debugw("mark read ignored, notification not found", "notification_id", id)
		return nil
	}
	return err
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.notificationRepo.MarkAllRead(ctx)
}

func (s *notificationService) Delete(ctx context.Context, id domain.NotificationID) error {
	err := s.notificationRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		s.logger.Debugw("delete ignored, notification not found", "notification_id", id)
		return nil
	}
	return err
}
