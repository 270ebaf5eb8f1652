package entities

import "time"

type DeliveryLog struct {
	ID         string
	DeliveryID string
	UserID     *string
	Action     string
	Details    *string
	CreatedAt  time.Time
}

// DeliveryLogModify: EventID защищает от повторной записи одного события.
type DeliveryLogModify struct {
	EventID    *string
	DeliveryID string
	UserID     *string
	Action     string
	Details    *string
}
