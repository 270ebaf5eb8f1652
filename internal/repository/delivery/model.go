package delivery

import "time"

type DeliveryDB struct {
	ID               string
	Status           string
	ClientID         string
	CourierID        *string
	SellerID         *string
	DeliveryPointID  string
	PickupPointID    *string
	Items            []byte
	ConfirmationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItemDB - элемент JSONB массива deliveries.items.
type OrderItemDB struct {
	ProductID *string `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     *string `json:"image,omitempty"`
	SellerID  *string `json:"sellerId,omitempty"`
}

type ProofDB struct {
	ID          string
	DeliveryID  string
	OTP         string
	PhotoURL    *string
	Signature   *string
	Latitude    float64
	Longitude   float64
	DeliveredAt time.Time
}

var deliveryColumns = []string{
	"id",
	"status",
	"client_id",
	"courier_id",
	"seller_id",
	"delivery_point_id",
	"pickup_point_id",
	"items",
	"confirmation_code",
	"created_at",
	"updated_at",
}

const proofColumns = "id, delivery_id, otp, photo_url, signature, latitude, longitude, delivered_at"

func (d *DeliveryDB) scanTargets() []any {
	return []any{
		&d.ID,
		&d.Status,
		&d.ClientID,
		&d.CourierID,
		&d.SellerID,
		&d.DeliveryPointID,
		&d.PickupPointID,
		&d.Items,
		&d.ConfirmationCode,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}

func (p *ProofDB) scanTargets() []any {
	return []any{
		&p.ID,
		&p.DeliveryID,
		&p.OTP,
		&p.PhotoURL,
		&p.Signature,
		&p.Latitude,
		&p.Longitude,
		&p.DeliveredAt,
	}
}
