package inventory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type Inventory struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
}

func New(log handlerLogger, repository Repository, txManager TxManager) *Inventory {
	return &Inventory{
		log:        log,
		repository: repository,
		txManager:  txManager,
	}
}

// Decrement списывает quantity единиц товара в SAVEPOINT транзакции вызывающего.
// Ошибки не возвращаются: неудача фиксируется в результате, логе и метрике,
// а внешняя транзакция продолжает работу. Уход остатка в минус не проверяется.
func (s *Inventory) Decrement(ctx context.Context, productID string, quantity int) entities.StockAdjustment {
	adjustment := entities.StockAdjustment{ProductID: productID}

	switch {
	case strings.TrimSpace(productID) == "":
		adjustment.Reason = ReasonInvalidProduct
	case quantity <= 0:
		adjustment.Reason = ReasonInvalidQuantity
	default:
		var stock int
		err := s.txManager.DoNested(ctx, func(ctx context.Context) error {
			var err error
			stock, err = s.repository.DecrementStock(ctx, productID, quantity)
			return err
		})

		switch {
		case err == nil:
			adjustment.Applied = true
			StockAdjustmentsTotal.WithLabelValues("applied").Inc()
			if stock < 0 {
				s.log.With(
					logger.NewField("product_id", productID),
					logger.NewField("stock", stock),
				).Warn("product stock went negative")
			}
			return adjustment
		case errors.Is(err, ErrProductNotFound):
			adjustment.Reason = ReasonNotFound
		default:
			adjustment.Reason = ReasonStorageError
			s.log.With(
				logger.NewField("error", err),
			).Warn("stock decrement storage error")
		}
	}

	StockAdjustmentsTotal.WithLabelValues(adjustment.Reason).Inc()
	s.log.With(
		logger.NewField("product_id", productID),
		logger.NewField("quantity", quantity),
		logger.NewField("reason", adjustment.Reason),
	).Warn("stock decrement skipped")

	return adjustment
}

func (s *Inventory) CreateProduct(ctx context.Context, actor entities.Actor, productModify entities.ProductModify) (*entities.Product, error) {
	if actor.Role != entities.RoleSeller && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if productModify.Name == nil || productModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(*productModify.Name) == "" {
		return nil, ErrInvalidName
	}
	if *productModify.Price < 0 || math.IsNaN(*productModify.Price) || math.IsInf(*productModify.Price, 0) {
		return nil, ErrInvalidPrice
	}
	if productModify.Stock != nil && *productModify.Stock < 0 {
		return nil, ErrInvalidStock
	}

	if actor.Role == entities.RoleSeller {
		sellerID := actor.UserID
		productModify.SellerID = &sellerID
	}

	product, err := s.repository.Create(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *Inventory) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidProductID
	}

	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}
