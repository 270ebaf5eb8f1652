package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

// CreateOrder оформляет заказ клиента: точки, код подтверждения, доставка
// в статусе CREATED и списание остатков в одной транзакции.
// С ключом идемпотентности повтор возвращает исходный результат.
func (s *Delivery) CreateOrder(ctx context.Context, actor entities.Actor, placement entities.OrderPlacement) (result *entities.OrderPlaced, err error) {
	defer func() { observe(operationCreateOrder, err) }()

	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if actor.Role != entities.RoleClient {
		return nil, ErrForbiddenRole
	}
	if err := validatePointModify(placement.Destination); err != nil {
		return nil, err
	}
	if err := validateItems(placement.Items); err != nil {
		return nil, err
	}

	idempotencyKey := ""
	if key := strings.TrimSpace(placement.IdempotencyKey); key != "" {
		idempotencyKey = actor.UserID + ":" + key

		stored, err := s.idempotency.Begin(ctx, idempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("begin idempotent order: %w", err)
		}
		if stored != nil {
			return stored, nil
		}
	}

	created, err := s.placeOrder(ctx, actor, placement)
	if err != nil {
		if idempotencyKey != "" {
			if releaseErr := s.idempotency.Release(context.WithoutCancel(ctx), idempotencyKey); releaseErr != nil {
				s.warn("release idempotency key", logger.NewField("error", releaseErr))
			}
		}
		return nil, err
	}

	placed := &entities.OrderPlaced{
		DeliveryID:       created.ID,
		ConfirmationCode: created.ConfirmationCode,
	}

	if idempotencyKey != "" {
		if err := s.idempotency.Complete(context.WithoutCancel(ctx), idempotencyKey, *placed); err != nil {
			s.warn("store idempotent order result",
				logger.NewField("delivery_id", created.ID),
				logger.NewField("error", err),
			)
		}
	}

	s.publish(ctx, entities.EventDeliveryCreated, actor, created)
	return placed, nil
}

func (s *Delivery) placeOrder(ctx context.Context, actor entities.Actor, placement entities.OrderPlacement) (*entities.Delivery, error) {
	seller := s.resolveSeller(ctx, placement)

	code, err := s.codes.NewCode()
	if err != nil {
		return nil, err
	}

	var created *entities.Delivery
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var (
			sellerID      *string
			pickupPointID *string
		)

		if seller != nil {
			sellerID = &seller.ID

			if seller.Location != nil {
				pickup, err := s.points.CreatePoint(ctx, entities.PointModify{
					Latitude:    &seller.Location.Latitude,
					Longitude:   &seller.Location.Longitude,
					Description: seller.Location.Description,
				})
				if err != nil {
					return fmt.Errorf("create pickup point: %w", err)
				}
				pickupPointID = &pickup.ID
			}
		}

		destination, err := s.points.CreatePoint(ctx, placement.Destination)
		if err != nil {
			return fmt.Errorf("create destination point: %w", err)
		}

		status := entities.DeliveryCreated
		clientID := actor.UserID
		created, err = s.repository.Create(ctx, entities.DeliveryModify{
			Status:           &status,
			ClientID:         &clientID,
			SellerID:         sellerID,
			DeliveryPointID:  &destination.ID,
			PickupPointID:    pickupPointID,
			Items:            placement.Items,
			ConfirmationCode: &code,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		// неудачное списание не откатывает заказ
		for _, item := range placement.Items {
			if item.ProductID == nil {
				continue
			}
			s.inventory.Decrement(ctx, *item.ProductID, item.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveSeller берет продавца из заказа, иначе из первой позиции.
// Неизвестный продавец отбрасывается с предупреждением.
func (s *Delivery) resolveSeller(ctx context.Context, placement entities.OrderPlacement) *entities.User {
	sellerID := placement.SellerID
	if sellerID == nil {
		sellerID = placement.Items[0].SellerID
	}
	if sellerID == nil || strings.TrimSpace(*sellerID) == "" {
		return nil
	}

	seller, err := s.users.GetUser(ctx, *sellerID)
	if err != nil {
		s.warn("seller not resolved, order placed without seller",
			logger.NewField("seller_id", *sellerID),
			logger.NewField("error", err),
		)
		return nil
	}
	if seller.Role != entities.RoleSeller {
		s.warn("user is not a seller, order placed without seller",
			logger.NewField("seller_id", *sellerID),
			logger.NewField("role", seller.Role.String()),
		)
		return nil
	}
	return seller
}

// CancelOrder удаляет доставку, пока она в статусе CREATED.
// Права проверяются раньше статуса.
func (s *Delivery) CancelOrder(ctx context.Context, actor entities.Actor, deliveryID string) (err error) {
	defer func() { observe(operationCancelOrder, err) }()

	if err := validateActor(actor); err != nil {
		return err
	}
	if !isValidID(deliveryID) {
		return ErrInvalidDeliveryID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		d, err := s.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		isOwner := actor.Role == entities.RoleClient && d.ClientID == actor.UserID
		if !isOwner && !actor.IsAdmin() {
			return ErrNotOwner
		}

		if d.Status != entities.DeliveryCreated {
			return fmt.Errorf("%w: current status %s", ErrCancelNotAllowed, d.Status)
		}

		if err := s.repository.Delete(ctx, deliveryID); err != nil {
			return fmt.Errorf("delete delivery: %w", err)
		}
		return nil
	})
}
