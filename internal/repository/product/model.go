package product

import "time"

type ProductDB struct {
	ID        string
	SellerID  *string
	Name      string
	Price     float64
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
