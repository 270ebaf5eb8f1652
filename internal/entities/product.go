package entities

import "time"

type Product struct {
	ID        string
	SellerID  *string
	Name      string
	Price     float64
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductModify struct {
	SellerID *string
	Name     *string
	Price    *float64
	Stock    *int
}

// StockAdjustment - результат попытки списать остаток.
type StockAdjustment struct {
	ProductID string
	Applied   bool
	Reason    string
}
