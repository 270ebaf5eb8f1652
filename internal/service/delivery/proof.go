package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/tx"
)

// SubmitProof завершает доставку. Повторная отправка для уже доставленного
// заказа возвращает существующее подтверждение без повторной проверки.
// Неверный OTP не меняет состояние.
func (s *Delivery) SubmitProof(ctx context.Context, actor entities.Actor, deliveryID string, submission entities.ProofSubmission) (result *entities.ProofOfDelivery, err error) {
	defer func() { observe(operationSubmitProof, err) }()

	if err := validateActor(actor); err != nil {
		return nil, err
	}
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if actor.Role != entities.RoleCourier && !actor.IsAdmin() {
		return nil, ErrForbiddenRole
	}

	var (
		proof     *entities.ProofOfDelivery
		completed *entities.Delivery
		replay    bool
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		d, err := s.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		existing, err := s.repository.GetProof(ctx, deliveryID)
		if err != nil && !errors.Is(err, ErrProofNotFound) {
			return fmt.Errorf("get proof: %w", err)
		}
		if existing != nil {
			proof, replay = existing, true
			return nil
		}
		if d.Status == entities.DeliveryDelivered {
			return ErrProofNotFound
		}

		if actor.Role == entities.RoleCourier && !isSameID(d.CourierID, actor.UserID) {
			return ErrNotAssignedCourier
		}

		if err := ValidateProof(d, submission); err != nil {
			if errors.Is(err, ErrInvalidConfirmationCode) {
				ConfirmationCodeMismatchesTotal.Inc()
			}
			return err
		}

		if !entities.CanTransition(d.Status, entities.DeliveryDelivered) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, d.Status, entities.DeliveryDelivered)
		}

		proof, err = s.repository.CreateProof(ctx, deliveryID, submission)
		if err != nil {
			return fmt.Errorf("create proof: %w", err)
		}

		status := entities.DeliveryDelivered
		completed, err = s.repository.Update(ctx, entities.DeliveryModify{
			ID:     &deliveryID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("complete delivery: %w", err)
		}
		return nil
	})

	switch {
	case errors.Is(err, ErrProofAlreadyExists), errors.Is(err, tx.ErrSerializationFailure):
		// параллельная отправка могла успеть первой
		return s.concurrentProof(ctx, deliveryID, err)
	case err != nil:
		return nil, err
	case replay:
		return proof, nil
	}

	s.publish(ctx, entities.EventDeliveryCompleted, actor, completed)
	return proof, nil
}

// concurrentProof возвращает подтверждение, сохраненное конкурентной транзакцией.
// Если его нет, конфликт был с другим изменением доставки.
func (s *Delivery) concurrentProof(ctx context.Context, deliveryID string, txErr error) (*entities.ProofOfDelivery, error) {
	proof, err := s.repository.GetProof(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, ErrProofNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrConcurrentUpdate, txErr)
		}
		return nil, fmt.Errorf("get proof: %w", err)
	}
	return proof, nil
}
