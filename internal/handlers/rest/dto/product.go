package dto

import (
	"time"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

type ProductCreate struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock,omitempty"`
	SellerID *string  `json:"sellerId,omitempty"`
}

type Product struct {
	ID        string    `json:"id"`
	SellerID  *string   `json:"sellerId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ProductFromEntity(p *entities.Product) Product {
	return Product{
		ID:        p.ID,
		SellerID:  p.SellerID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
