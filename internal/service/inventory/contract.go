//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=inventory_test
package inventory

import (
	"context"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error)
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	DecrementStock(ctx context.Context, id string, quantity int) (int, error)
}

type TxManager interface {
	DoNested(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
