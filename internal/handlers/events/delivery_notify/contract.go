//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_notify_test
package delivery_notify

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Notifier interface {
	Notify(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
}

type NoticeFactory interface {
	Notices(event entities.DeliveryEvent) []entities.NotificationModify
}
