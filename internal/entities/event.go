package entities

import "time"

type DeliveryEventType string

const (
	EventDeliveryCreated   DeliveryEventType = "delivery_created"
	EventCourierAssigned   DeliveryEventType = "courier_assigned"
	EventStatusChanged     DeliveryEventType = "status_changed"
	EventDeliveryCompleted DeliveryEventType = "delivery_completed"
)

func (t DeliveryEventType) String() string {
	return string(t)
}

// DeliveryEvent публикуется после коммита основной транзакции.
// Снимок содержит все, что нужно подписчикам, чтобы не читать БД повторно.
// ID уникален для события и сохраняется при пересылке через kafka.
type DeliveryEvent struct {
	ID         string
	Type       DeliveryEventType
	DeliveryID string
	ActorID    string
	Status     DeliveryStatus
	ClientID   string
	CourierID  *string
	SellerID   *string
	OccurredAt time.Time
}
