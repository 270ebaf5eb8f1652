//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string, userID string) (*entities.Notification, error)
	Delete(ctx context.Context, id string, userID string) error
}
