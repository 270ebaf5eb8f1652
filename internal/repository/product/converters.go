package product

import "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"

func ToDomain(p *ProductDB) *entities.Product {
	if p == nil {
		return nil
	}

	return &entities.Product{
		ID:        p.ID,
		SellerID:  p.SellerID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
