//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=point_test
package point

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, pointModify entities.PointModify) (*entities.DeliveryPoint, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryPoint, error)
}
