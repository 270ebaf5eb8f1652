package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

// Audit - журнал действий по доставке, только дозапись.
type Audit struct {
	repository Repository
}

func New(repository Repository) *Audit {
	return &Audit{
		repository: repository,
	}
}

func (s *Audit) Append(ctx context.Context, logModify entities.DeliveryLogModify) (*entities.DeliveryLog, error) {
	if strings.TrimSpace(logModify.DeliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}
	if strings.TrimSpace(logModify.Action) == "" {
		return nil, ErrInvalidAction
	}

	if logModify.UserID != nil && strings.TrimSpace(*logModify.UserID) == "" {
		logModify.UserID = nil
	}
	if logModify.EventID != nil && strings.TrimSpace(*logModify.EventID) == "" {
		logModify.EventID = nil
	}

	entry, err := s.repository.Create(ctx, logModify)
	if err != nil {
		return nil, fmt.Errorf("append delivery log: %w", err)
	}
	return entry, nil
}

// ListByDelivery возвращает журнал в хронологическом порядке.
func (s *Audit) ListByDelivery(ctx context.Context, deliveryID string) ([]entities.DeliveryLog, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}

	entries, err := s.repository.ListByDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list delivery logs: %w", err)
	}
	return entries, nil
}
