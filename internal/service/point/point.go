package point

import (
	"context"
	"fmt"
	"strings"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
)

// Point - хранилище гео-точек. Точки неизменяемы: только создание и чтение.
// Create выполняется в транзакции вызывающего, если она есть в ctx.
type Point struct {
	repository Repository
}

func New(repository Repository) *Point {
	return &Point{
		repository: repository,
	}
}

func (s *Point) CreatePoint(ctx context.Context, pointModify entities.PointModify) (*entities.DeliveryPoint, error) {
	if pointModify.Latitude == nil || pointModify.Longitude == nil {
		return nil, ErrMissingCoordinates
	}

	if !entities.ValidCoordinates(*pointModify.Latitude, *pointModify.Longitude) {
		return nil, ErrInvalidCoordinates
	}

	if pointModify.Description != nil {
		description := strings.TrimSpace(*pointModify.Description)
		if description == "" {
			pointModify.Description = nil
		} else {
			pointModify.Description = &description
		}
	}

	point, err := s.repository.Create(ctx, pointModify)
	if err != nil {
		return nil, fmt.Errorf("create point: %w", err)
	}

	return point, nil
}

func (s *Point) GetPoint(ctx context.Context, id string) (*entities.DeliveryPoint, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidPointID
	}

	point, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get point: %w", err)
	}

	return point, nil
}
