package point

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/point"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, pointModify entities.PointModify) (*entities.DeliveryPoint, error) {
	query := `
		INSERT INTO delivery_points (id, latitude, longitude, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, latitude, longitude, description, created_at
	`

	var pointDB PointDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		pointModify.Latitude,
		pointModify.Longitude,
		pointModify.Description,
	).Scan(
		&pointDB.ID,
		&pointDB.Latitude,
		&pointDB.Longitude,
		&pointDB.Description,
		&pointDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected point repository create error: %w", err)
	}

	return ToDomain(&pointDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryPoint, error) {
	query := `
		SELECT id, latitude, longitude, description, created_at
		FROM delivery_points
		WHERE id = $1
	`

	var pointDB PointDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&pointDB.ID,
		&pointDB.Latitude,
		&pointDB.Longitude,
		&pointDB.Description,
		&pointDB.CreatedAt,
	)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, point.ErrPointNotFound
		}
		return nil, fmt.Errorf("unexpected point repository getbyid error: %w", err)
	}

	return ToDomain(&pointDB), nil
}
