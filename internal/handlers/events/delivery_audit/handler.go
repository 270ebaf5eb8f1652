package delivery_audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/audit"
)

const name = "delivery_audit"

// Handler пишет запись в журнал доставки на каждое событие.
type Handler struct {
	audit AuditLog
}

func New(audit AuditLog) *Handler {
	return &Handler{audit: audit}
}

func (h *Handler) Name() string {
	return name
}

func (h *Handler) Handle(ctx context.Context, event entities.DeliveryEvent) error {
	logModify, ok := toLogModify(event)
	if !ok {
		return nil
	}

	_, err := h.audit.Append(ctx, logModify)
	if errors.Is(err, audit.ErrAlreadyRecorded) {
		// повторная доставка события из kafka
		return nil
	}
	if err != nil {
		return fmt.Errorf("audit %s for delivery %s: %w", event.Type, event.DeliveryID, err)
	}
	return nil
}

func toLogModify(event entities.DeliveryEvent) (entities.DeliveryLogModify, bool) {
	logModify := entities.DeliveryLogModify{
		DeliveryID: event.DeliveryID,
		UserID:     pointer.To(event.ActorID),
	}
	if event.ID != "" {
		logModify.EventID = pointer.To(event.ID)
	}

	switch event.Type {
	case entities.EventDeliveryCreated:
		logModify.Action = entities.DeliveryCreated.String()
		logModify.Details = pointer.To("order placed")
	case entities.EventCourierAssigned:
		logModify.Action = entities.DeliveryAssigned.String()
		if event.CourierID != nil {
			logModify.Details = pointer.To("courier " + *event.CourierID)
		}
	case entities.EventStatusChanged:
		logModify.Action = event.Status.String()
	case entities.EventDeliveryCompleted:
		logModify.Action = entities.DeliveryDelivered.String()
		logModify.Details = pointer.To("proof of delivery accepted")
	default:
		return entities.DeliveryLogModify{}, false
	}

	return logModify, true
}
