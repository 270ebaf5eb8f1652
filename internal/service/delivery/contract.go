//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error)

	CreateProof(ctx context.Context, deliveryID string, submission entities.ProofSubmission) (*entities.ProofOfDelivery, error)
	GetProof(ctx context.Context, deliveryID string) (*entities.ProofOfDelivery, error)
}

type PointService interface {
	CreatePoint(ctx context.Context, pointModify entities.PointModify) (*entities.DeliveryPoint, error)
	GetPoint(ctx context.Context, id string) (*entities.DeliveryPoint, error)
}

type UserService interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

type InventoryAdjuster interface {
	Decrement(ctx context.Context, productID string, quantity int) entities.StockAdjustment
}

type AuditLog interface {
	ListByDelivery(ctx context.Context, deliveryID string) ([]entities.DeliveryLog, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.DeliveryEvent)
}

type CodeFactory interface {
	NewCode() (string, error)
}

// IdempotencyStore хранит результат createOrder по ключу клиента.
// Begin возвращает сохраненный результат повтора либо nil, если ключ зарезервирован впервые.
type IdempotencyStore interface {
	Begin(ctx context.Context, key string) (*entities.OrderPlaced, error)
	Complete(ctx context.Context, key string, result entities.OrderPlaced) error
	Release(ctx context.Context, key string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
