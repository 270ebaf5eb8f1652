package delivery

import (
	"math"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateActor(actor entities.Actor) error {
	if !isValidID(actor.UserID) || !actor.Role.IsValid() {
		return ErrMissingActor
	}
	return nil
}

func validatePointModify(p entities.PointModify) error {
	if p.Latitude == nil || p.Longitude == nil {
		return ErrMissingCoordinates
	}
	if !entities.ValidCoordinates(*p.Latitude, *p.Longitude) {
		return ErrInvalidCoordinates
	}
	return nil
}

func validateItems(items []entities.OrderItem) error {
	if len(items) == 0 {
		return ErrMissingItems
	}

	for _, item := range items {
		switch {
		case strings.TrimSpace(item.Name) == "":
			return ErrInvalidItem
		case item.Quantity <= 0:
			return ErrInvalidItem
		case item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0):
			return ErrInvalidItem
		case item.ProductID != nil && strings.TrimSpace(*item.ProductID) == "":
			return ErrInvalidItem
		}
	}
	return nil
}

func normalizeFilter(filter entities.DeliveryFilter) (entities.DeliveryFilter, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return filter, ErrInvalidStatus
	}

	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		return filter, ErrInvalidFilter
	}

	if filter.SearchText != nil {
		search := strings.TrimSpace(*filter.SearchText)
		if search == "" {
			filter.SearchText = nil
		} else {
			filter.SearchText = &search
		}
	}
	return filter, nil
}
