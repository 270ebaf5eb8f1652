package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type NotificationService struct {
	repository Repository
}

func New(repository Repository) *NotificationService {
	return &NotificationService{
		repository: repository,
	}
}

// Notify сохраняет уведомление для получателя. Пустой тип означает info.
func (s *NotificationService) Notify(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	if err := validateNotificationModify(&notificationModify); err != nil {
		return nil, err
	}

	n, err := s.repository.Create(ctx, notificationModify)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, actor entities.Actor, unreadOnly bool) ([]entities.Notification, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return nil, ErrInvalidUserID
	}

	list, err := s.repository.ListByUser(ctx, actor.UserID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, actor entities.Actor, id string) (*entities.Notification, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidNotificationID
	}

	n, err := s.repository.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, actor entities.Actor, id string) error {
	if strings.TrimSpace(actor.UserID) == "" {
		return ErrInvalidUserID
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidNotificationID
	}

	if err := s.repository.Delete(ctx, id, actor.UserID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

func validateNotificationModify(m *entities.NotificationModify) error {
	m.Title = strings.TrimSpace(m.Title)
	m.Message = strings.TrimSpace(m.Message)

	switch {
	case strings.TrimSpace(m.UserID) == "":
		return ErrInvalidUserID
	case m.Title == "":
		return ErrInvalidTitle
	case m.Message == "":
		return ErrInvalidMessage
	}

	switch m.Type {
	case "":
		m.Type = entities.NotificationInfo
	case entities.NotificationInfo, entities.NotificationSuccess, entities.NotificationWarning, entities.NotificationError:
	default:
		return ErrInvalidType
	}

	return nil
}
