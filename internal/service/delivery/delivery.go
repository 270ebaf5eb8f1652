package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/user"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

const (
	operationCreateOrder   = "create_order"
	operationCancelOrder   = "cancel_order"
	operationAssignCourier = "assign_courier"
	operationAdvanceStatus = "advance_status"
	operationSubmitProof   = "submit_proof"
)

// Delivery - оркестратор жизненного цикла доставки.
// Основная запись выполняется в одной транзакции, побочные эффекты
// (журнал, уведомления) публикуются событиями после коммита.
type Delivery struct {
	log         handlerLogger
	repository  Repository
	points      PointService
	users       UserService
	inventory   InventoryAdjuster
	audit       AuditLog
	events      EventPublisher
	codes       CodeFactory
	idempotency IdempotencyStore
	txManager   TxManager
}

func New(
	log handlerLogger,
	repository Repository,
	points PointService,
	users UserService,
	inventory InventoryAdjuster,
	audit AuditLog,
	events EventPublisher,
	codes CodeFactory,
	idempotency IdempotencyStore,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		log:         log,
		repository:  repository,
		points:      points,
		users:       users,
		inventory:   inventory,
		audit:       audit,
		events:      events,
		codes:       codes,
		idempotency: idempotency,
		txManager:   txManager,
	}
}

func (s *Delivery) AssignCourier(ctx context.Context, actor entities.Actor, deliveryID string, courierID string) (result *entities.Delivery, err error) {
	defer func() { observe(operationAssignCourier, err) }()

	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	courierID = strings.TrimSpace(courierID)
	if courierID == "" && actor.Role == entities.RoleCourier {
		courierID = actor.UserID
	}
	if courierID == "" {
		return nil, ErrInvalidCourierID
	}

	switch actor.Role {
	case entities.RoleCourier:
		if courierID != actor.UserID {
			return nil, ErrCourierSelfAssign
		}
	case entities.RoleSeller, entities.RoleAdmin:
	default:
		return nil, ErrForbiddenRole
	}

	courier, err := s.users.GetUser(ctx, courierID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrInvalidUserID) {
			return nil, ErrCourierNotFound
		}
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if courier.Role != entities.RoleCourier {
		return nil, ErrNotACourier
	}

	var updated *entities.Delivery
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		d, err := s.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if actor.Role == entities.RoleSeller && !isSameID(d.SellerID, actor.UserID) {
			return ErrNotOwner
		}
		// курьер не может перехватить доставку, уже назначенную другому
		if actor.Role == entities.RoleCourier && d.CourierID != nil && *d.CourierID != actor.UserID {
			return ErrNotAssignedCourier
		}

		if !entities.CanTransition(d.Status, entities.DeliveryAssigned) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, d.Status, entities.DeliveryAssigned)
		}

		status := entities.DeliveryAssigned
		updated, err = s.repository.Update(ctx, entities.DeliveryModify{
			ID:        &deliveryID,
			Status:    &status,
			CourierID: &courierID,
		})
		if err != nil {
			return fmt.Errorf("assign courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventCourierAssigned, actor, updated)
	return updated, nil
}

// AdvanceStatus переводит доставку в целевой статус по графу entities.CanTransition.
// ASSIGNED и DELIVERED выставляются только через AssignCourier и SubmitProof.
func (s *Delivery) AdvanceStatus(ctx context.Context, actor entities.Actor, deliveryID string, target entities.DeliveryStatus) (result *entities.Delivery, err error) {
	defer func() { observe(operationAdvanceStatus, err) }()

	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	switch target {
	case entities.DeliveryDelivered:
		return nil, ErrProofRequired
	case entities.DeliveryAssigned:
		return nil, ErrAssignRequired
	}

	if actor.Role != entities.RoleCourier && !actor.IsAdmin() {
		return nil, ErrForbiddenRole
	}

	var updated *entities.Delivery
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		d, err := s.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if actor.Role == entities.RoleCourier && !isSameID(d.CourierID, actor.UserID) {
			return ErrNotAssignedCourier
		}

		if !entities.CanTransition(d.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, d.Status, target)
		}

		updated, err = s.repository.Update(ctx, entities.DeliveryModify{
			ID:     &deliveryID,
			Status: &target,
		})
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.EventStatusChanged, actor, updated)
	return updated, nil
}

func (s *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	deliveries, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// DeliveryStats считает доставки по статусам для фоновой задачи статистики.
func (s *Delivery) DeliveryStats(ctx context.Context) (map[entities.DeliveryStatus]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("delivery stats timed out: %w", err)
		}
		return nil, fmt.Errorf("delivery stats: %w", err)
	}
	return counts, nil
}

// GetDelivery читает доставку со всеми связанными записями из одного снимка.
func (s *Delivery) GetDelivery(ctx context.Context, id string) (*entities.DeliveryDetails, error) {
	if !isValidID(id) {
		return nil, ErrInvalidDeliveryID
	}

	var details entities.DeliveryDetails
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		d, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		details.Delivery = *d

		destination, err := s.points.GetPoint(ctx, d.DeliveryPointID)
		if err != nil {
			return fmt.Errorf("get destination point: %w", err)
		}
		details.Destination = *destination

		if d.PickupPointID != nil {
			details.Pickup, err = s.points.GetPoint(ctx, *d.PickupPointID)
			if err != nil {
				return fmt.Errorf("get pickup point: %w", err)
			}
		}

		if details.Client, err = s.optionalUser(ctx, &d.ClientID); err != nil {
			return err
		}
		if details.Courier, err = s.optionalUser(ctx, d.CourierID); err != nil {
			return err
		}
		if details.Seller, err = s.optionalUser(ctx, d.SellerID); err != nil {
			return err
		}

		proof, err := s.repository.GetProof(ctx, id)
		switch {
		case err == nil:
			details.Proof = proof
		case !errors.Is(err, ErrProofNotFound):
			return fmt.Errorf("get proof: %w", err)
		}

		details.Logs, err = s.audit.ListByDelivery(ctx, id)
		if err != nil {
			return fmt.Errorf("list delivery logs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *Delivery) optionalUser(ctx context.Context, id *string) (*entities.User, error) {
	if id == nil {
		return nil, nil
	}

	u, err := s.users.GetUser(ctx, *id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %s: %w", *id, err)
	}
	return u, nil
}

func (s *Delivery) publish(ctx context.Context, eventType entities.DeliveryEventType, actor entities.Actor, d *entities.Delivery) {
	s.events.Publish(ctx, entities.DeliveryEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		DeliveryID: d.ID,
		ActorID:    actor.UserID,
		Status:     d.Status,
		ClientID:   d.ClientID,
		CourierID:  d.CourierID,
		SellerID:   d.SellerID,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *Delivery) warn(msg string, fields ...logger.Field) {
	s.log.With(fields...).Warn(msg)
}

func isSameID(id *string, expected string) bool {
	return id != nil && *id == expected
}

func observe(operation string, err error) {
	OperationsTotal.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrInvalidConfirmationCode):
		return "invalid_confirmation_code"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}
