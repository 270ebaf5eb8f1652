package point

import "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"

func ToDomain(p *PointDB) *entities.DeliveryPoint {
	if p == nil {
		return nil
	}

	return &entities.DeliveryPoint{
		ID:          p.ID,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
