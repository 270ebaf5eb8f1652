//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_get_test
package deliveries_get

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
}
