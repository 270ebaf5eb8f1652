package entities

import "time"

type DeliveryStatus string

const (
	DeliveryCreated     DeliveryStatus = "CREATED"
	DeliveryAssigned    DeliveryStatus = "ASSIGNED"
	DeliveryInTransit   DeliveryStatus = "IN_TRANSIT"
	DeliveryArrivedZone DeliveryStatus = "ARRIVED_ZONE"
	DeliveryDelivered   DeliveryStatus = "DELIVERED"
	DeliveryFailed      DeliveryStatus = "FAILED"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryCreated, DeliveryAssigned, DeliveryInTransit,
		DeliveryArrivedZone, DeliveryDelivered, DeliveryFailed:
		return true
	}
	return false
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

// AllDeliveryStatuses в порядке жизненного цикла.
func AllDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryCreated,
		DeliveryAssigned,
		DeliveryInTransit,
		DeliveryArrivedZone,
		DeliveryDelivered,
		DeliveryFailed,
	}
}

// CanTransition проверяет ребро графа статусов.
// Граф линейный: CREATED → ASSIGNED → IN_TRANSIT → ARRIVED_ZONE → DELIVERED,
// FAILED достижим из любого нетерминального статуса, ASSIGNED → ASSIGNED это переназначение.
func CanTransition(current, target DeliveryStatus) bool {
	if !current.IsValid() || !target.IsValid() || current.IsTerminal() {
		return false
	}

	if target == DeliveryFailed {
		return true
	}

	switch current {
	case DeliveryCreated:
		return target == DeliveryAssigned
	case DeliveryAssigned:
		return target == DeliveryAssigned || target == DeliveryInTransit
	case DeliveryInTransit:
		return target == DeliveryArrivedZone
	case DeliveryArrivedZone:
		return target == DeliveryDelivered
	}

	return false
}

type Delivery struct {
	ID               string
	Status           DeliveryStatus
	ClientID         string
	CourierID        *string
	SellerID         *string
	DeliveryPointID  string
	PickupPointID    *string
	Items            []OrderItem
	ConfirmationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type DeliveryModify struct {
	ID               *string
	Status           *DeliveryStatus
	ClientID         *string
	CourierID        *string
	SellerID         *string
	DeliveryPointID  *string
	PickupPointID    *string
	Items            []OrderItem
	ConfirmationCode *string
}

type OrderItem struct {
	ProductID *string
	Name      string
	Price     float64
	Quantity  int
	Image     *string
	SellerID  *string
}

// OrderPlacement - входные данные оформления заказа.
type OrderPlacement struct {
	Destination    PointModify
	Items          []OrderItem
	SellerID       *string
	IdempotencyKey string
}

type OrderPlaced struct {
	DeliveryID       string
	ConfirmationCode string
}

type DeliveryFilter struct {
	Status     *DeliveryStatus
	CourierID  *string
	ClientID   *string
	SearchText *string
	Limit      uint64
	Offset     uint64
}

// DeliveryDetails - доставка со всеми связанными записями.
type DeliveryDetails struct {
	Delivery    Delivery
	Destination DeliveryPoint
	Pickup      *DeliveryPoint
	Client      *User
	Courier     *User
	Seller      *User
	Proof       *ProofOfDelivery
	Logs        []DeliveryLog
}
