package dto

import (
	"time"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type Point struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description *string  `json:"description,omitempty"`
}

type OrderItem struct {
	ProductID *string `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     *string `json:"image,omitempty"`
	SellerID  *string `json:"sellerId,omitempty"`
}

type OrderCreateRequest struct {
	Destination Point       `json:"destination"`
	Items       []OrderItem `json:"items"`
	SellerID    *string     `json:"sellerId,omitempty"`
}

type OrderCreateResponse struct {
	DeliveryID       string `json:"deliveryId"`
	ConfirmationCode string `json:"confirmationCode"`
}

type DeliveryAssignRequest struct {
	CourierID string `json:"courierId"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status"`
}

type ProofSubmitRequest struct {
	OTP       string   `json:"otp"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	PhotoURL  *string  `json:"photoUrl,omitempty"`
	Signature *string  `json:"signature,omitempty"`
}

type Delivery struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	ClientID        string      `json:"clientId"`
	CourierID       *string     `json:"courierId"`
	SellerID        *string     `json:"sellerId"`
	DeliveryPointID string      `json:"deliveryPointId"`
	PickupPointID   *string     `json:"pickupPointId"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type DeliveryPoint struct {
	ID          string    `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Proof struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"deliveryId"`
	PhotoURL    *string   `json:"photoUrl"`
	Signature   *string   `json:"signature"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

type DeliveryLog struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId"`
	Action    string    `json:"action"`
	Details   *string   `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeliveryDetails struct {
	Delivery
	Destination DeliveryPoint  `json:"destination"`
	Pickup      *DeliveryPoint `json:"pickup"`
	Client      *User          `json:"client"`
	Courier     *User          `json:"courier"`
	Seller      *User          `json:"seller"`
	Proof       *Proof         `json:"proof"`
	Logs        []DeliveryLog  `json:"logs"`
}

func (p Point) ToEntity() entities.PointModify {
	return entities.PointModify{
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Description: p.Description,
	}
}

func ItemsToEntity(items []OrderItem) []entities.OrderItem {
	res := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		res = append(res, entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			SellerID:  item.SellerID,
		})
	}
	return res
}

func itemsFromEntity(items []entities.OrderItem) []OrderItem {
	res := make([]OrderItem, 0, len(items))
	for _, item := range items {
		res = append(res, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			SellerID:  item.SellerID,
		})
	}
	return res
}

func DeliveryFromEntity(d *entities.Delivery) Delivery {
	return Delivery{
		ID:              d.ID,
		Status:          d.Status.String(),
		ClientID:        d.ClientID,
		CourierID:       d.CourierID,
		SellerID:        d.SellerID,
		DeliveryPointID: d.DeliveryPointID,
		PickupPointID:   d.PickupPointID,
		Items:           itemsFromEntity(d.Items),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func DeliveriesFromEntity(deliveries []entities.Delivery) []Delivery {
	res := make([]Delivery, 0, len(deliveries))
	for i := range deliveries {
		res = append(res, DeliveryFromEntity(&deliveries[i]))
	}
	return res
}

func pointFromEntity(p *entities.DeliveryPoint) DeliveryPoint {
	return DeliveryPoint{
		ID:          p.ID,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func ProofFromEntity(p *entities.ProofOfDelivery) Proof {
	return Proof{
		ID:          p.ID,
		DeliveryID:  p.DeliveryID,
		PhotoURL:    p.PhotoURL,
		Signature:   p.Signature,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		DeliveredAt: p.DeliveredAt,
	}
}

func DeliveryDetailsFromEntity(d *entities.DeliveryDetails) DeliveryDetails {
	res := DeliveryDetails{
		Delivery:    DeliveryFromEntity(&d.Delivery),
		Destination: pointFromEntity(&d.Destination),
		Logs:        make([]DeliveryLog, 0, len(d.Logs)),
	}

	if d.Pickup != nil {
		pickup := pointFromEntity(d.Pickup)
		res.Pickup = &pickup
	}
	if d.Client != nil {
		client := UserFromEntity(d.Client)
		res.Client = &client
	}
	if d.Courier != nil {
		courier := UserFromEntity(d.Courier)
		res.Courier = &courier
	}
	if d.Seller != nil {
		seller := UserFromEntity(d.Seller)
		res.Seller = &seller
	}
	if d.Proof != nil {
		proof := ProofFromEntity(d.Proof)
		res.Proof = &proof
	}

	for _, l := range d.Logs {
		res.Logs = append(res.Logs, DeliveryLog{
			ID:        l.ID,
			UserID:    l.UserID,
			Action:    l.Action,
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		})
	}

	return res
}
