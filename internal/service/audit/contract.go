//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, logModify entities.DeliveryLogModify) (*entities.DeliveryLog, error)
	ListByDelivery(ctx context.Context, deliveryID string) ([]entities.DeliveryLog, error)
}
