package service

import (
	"context"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
)

type NotificationServiceInterface interface {
	Post(ctx context.Context, req domain.NotificationRequest) (domain.Notification, error)
	List(ctx context.Context, limit, offset int) ([]domain.Notification, int, error)
}

type NotificationService struct {
	notifications repository.NotificationRepositoryInterface
	bc            Broadcaster
	lg            *logger.Logger
}

func NewNotificationService(notifications repository.NotificationRepositoryInterface, bc Broadcaster, lg *logger.Logger) NotificationServiceInterface {
	return &NotificationService{notifications: notifications, bc: bc, lg: lg}
}

func (s *NotificationService) Post(ctx context.Context, req domain.NotificationRequest) (domain.Notification, error) {
	if req.Message == "" {
		return domain.Notification{}, &domain.ValidationError{Field: "message", Reason: "must not be empty"}
	}
	level := req.Level
	switch level {
	case "":
		level = domain.LevelInfo
	case domain.LevelInfo, domain.LevelSuccess, domain.LevelWarning, domain.LevelError:
	default:
		return domain.Notification{}, &domain.ValidationError{Field: "level", Reason: "must be one of info, success, warning, error"}
	}

	n := domain.Notification{Level: level, Message: req.Message}
	if err := s.notifications.Append(ctx, &n); err != nil {
		return domain.Notification{}, err
	}
	s.bc.Broadcast(domain.NotificationEvent(n))
	s.lg.Info("notification_posted", map[string]any{"id": n.ID, "level": n.Level})
	return n, nil
}

func (s *NotificationService) List(ctx context.Context, limit, offset int) ([]domain.Notification, int, error) {
	limit, offset = clampPage(limit, offset)
	return s.notifications.List(ctx, limit, offset)
}
