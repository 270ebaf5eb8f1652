package kafka_relay

import (
	"context"
	"fmt"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/kafka"
)

const name = "kafka_relay"

// Handler выносит события доставки в kafka, ключ сообщения это id доставки.
type Handler struct {
	producer Producer
}

func New(producer Producer) *Handler {
	return &Handler{producer: producer}
}

func (h *Handler) Name() string {
	return name
}

func (h *Handler) Handle(ctx context.Context, event entities.DeliveryEvent) error {
	payload, err := kafka.EncodeDeliveryEvent(event)
	if err != nil {
		return err
	}

	err = h.producer.Publish(ctx, event.DeliveryID, payload)
	if err != nil {
		return fmt.Errorf("relay %s for delivery %s: %w", event.Type, event.DeliveryID, err)
	}
	return nil
}
