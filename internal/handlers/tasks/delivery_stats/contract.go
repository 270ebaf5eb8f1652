//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_stats_test
package delivery_stats

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type Service interface {
	DeliveryStats(ctx context.Context) (map[entities.DeliveryStatus]int64, error)
}

type taskLogger interface {
	Debug(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
