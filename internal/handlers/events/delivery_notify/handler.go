package delivery_notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

const name = "delivery_notify"

type Handler struct {
	notifier Notifier
	notices  NoticeFactory
}

func New(notifier Notifier, notices NoticeFactory) *Handler {
	return &Handler{
		notifier: notifier,
		notices:  notices,
	}
}

func (h *Handler) Name() string {
	return name
}

// Handle отправляет все уведомления события, неудача одного получателя не отменяет остальных.
func (h *Handler) Handle(ctx context.Context, event entities.DeliveryEvent) error {
	var errs []error

	for _, notice := range h.notices.Notices(event) {
		_, err := h.notifier.Notify(ctx, notice)
		if err != nil {
			errs = append(errs, fmt.Errorf("notify user %s: %w", notice.UserID, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify %s for delivery %s: %w", event.Type, event.DeliveryID, errors.Join(errs...))
	}
	return nil
}
