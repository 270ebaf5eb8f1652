package deliverylog

import "time"

type DeliveryLogDB struct {
	ID         string
	DeliveryID string
	UserID     *string
	Action     string
	Details    *string
	CreatedAt  time.Time
}
