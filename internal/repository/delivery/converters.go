package delivery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

func ToDomain(d *DeliveryDB) (*entities.Delivery, error) {
	if d == nil {
		return nil, nil
	}

	items, err := itemsToDomain(d.Items)
	if err != nil {
		return nil, err
	}

	return &entities.Delivery{
		ID:               d.ID,
		Status:           entities.DeliveryStatus(d.Status),
		ClientID:         d.ClientID,
		CourierID:        d.CourierID,
		SellerID:         d.SellerID,
		DeliveryPointID:  d.DeliveryPointID,
		PickupPointID:    d.PickupPointID,
		Items:            items,
		ConfirmationCode: d.ConfirmationCode,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

func ToDomainList(deliveriesDB []DeliveryDB) ([]entities.Delivery, error) {
	result := make([]entities.Delivery, 0, len(deliveriesDB))
	for i := range deliveriesDB {
		d, err := ToDomain(&deliveriesDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	return result, nil
}

func ProofToDomain(p *ProofDB) *entities.ProofOfDelivery {
	if p == nil {
		return nil
	}

	return &entities.ProofOfDelivery{
		ID:          p.ID,
		DeliveryID:  p.DeliveryID,
		OTP:         p.OTP,
		PhotoURL:    p.PhotoURL,
		Signature:   p.Signature,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		DeliveredAt: p.DeliveredAt,
	}
}

func itemsFromDomain(items []entities.OrderItem) ([]byte, error) {
	itemsDB := make([]OrderItemDB, len(items))
	for i, item := range items {
		itemsDB[i] = OrderItemDB{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			SellerID:  item.SellerID,
		}
	}

	raw, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	return raw, nil
}

func itemsToDomain(raw []byte) ([]entities.OrderItem, error) {
	var itemsDB []OrderItemDB
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &itemsDB); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}

	items := make([]entities.OrderItem, len(itemsDB))
	for i, item := range itemsDB {
		items[i] = entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			SellerID:  item.SellerID,
		}
	}
	return items, nil
}

// escapeLike экранирует спецсимволы шаблона ILIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func prefixed(alias string, columns []string) []string {
	result := make([]string, len(columns))
	for i, c := range columns {
		result[i] = alias + "." + c
	}
	return result
}
