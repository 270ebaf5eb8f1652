//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eventbus_test
package eventbus

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type Subscriber interface {
	Name() string
	Handle(ctx context.Context, event entities.DeliveryEvent) error
}

type busLogger interface {
	Debug(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
