package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

var ErrInvalidEvent = errors.New("invalid delivery event")

// deliveryEventMessage формат сообщения в топике событий доставки.
type deliveryEventMessage struct {
	ID         string    `json:"id,omitempty"`
	Type       string    `json:"type"`
	DeliveryID string    `json:"deliveryId"`
	ActorID    string    `json:"actorId,omitempty"`
	Status     string    `json:"status"`
	ClientID   string    `json:"clientId"`
	CourierID  *string   `json:"courierId,omitempty"`
	SellerID   *string   `json:"sellerId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func EncodeDeliveryEvent(event entities.DeliveryEvent) ([]byte, error) {
	data, err := json.Marshal(deliveryEventMessage{
		ID:         event.ID,
		Type:       event.Type.String(),
		DeliveryID: event.DeliveryID,
		ActorID:    event.ActorID,
		Status:     event.Status.String(),
		ClientID:   event.ClientID,
		CourierID:  event.CourierID,
		SellerID:   event.SellerID,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode delivery event: %w", err)
	}
	return data, nil
}

func DecodeDeliveryEvent(data []byte) (entities.DeliveryEvent, error) {
	var msg deliveryEventMessage
	err := json.Unmarshal(data, &msg)
	if err != nil {
		return entities.DeliveryEvent{}, fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	if msg.DeliveryID == "" || msg.Type == "" {
		return entities.DeliveryEvent{}, fmt.Errorf("%w: type and deliveryId are required", ErrInvalidEvent)
	}

	status := entities.DeliveryStatus(msg.Status)
	if !status.IsValid() {
		return entities.DeliveryEvent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidEvent, msg.Status)
	}

	return entities.DeliveryEvent{
		ID:         msg.ID,
		Type:       entities.DeliveryEventType(msg.Type),
		DeliveryID: msg.DeliveryID,
		ActorID:    msg.ActorID,
		Status:     status,
		ClientID:   msg.ClientID,
		CourierID:  msg.CourierID,
		SellerID:   msg.SellerID,
		OccurredAt: msg.OccurredAt,
	}, nil
}
