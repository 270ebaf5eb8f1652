package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/delivery"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/querier"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	items, err := itemsFromDomain(deliveryModify.Items)
	if err != nil {
		return nil, err
	}

	status := entities.DeliveryCreated
	if deliveryModify.Status != nil {
		status = *deliveryModify.Status
	}

	query := `
		INSERT INTO deliveries (id, status, client_id, seller_id, delivery_point_id, pickup_point_id, items, confirmation_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + strings.Join(deliveryColumns, ", ")

	var deliveryDB DeliveryDB
	err = r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		status.String(),
		deliveryModify.ClientID,
		deliveryModify.SellerID,
		deliveryModify.DeliveryPointID,
		deliveryModify.PickupPointID,
		items,
		deliveryModify.ConfirmationCode,
	).Scan(deliveryDB.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) &&
			repository.ConstraintName(err) == "deliveries_client_id_fkey" {
			return nil, delivery.ErrClientNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	builder := querier.Builder.
		Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"id": id})

	var deliveryDB DeliveryDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(deliveryDB.scanTargets()...)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryDB)
}

// Update меняет статус и курьера. Остальные поля доставки неизменяемы.
func (r *Repository) Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	builder := querier.Builder.
		Update("deliveries")

	if deliveryModify.Status != nil {
		builder = builder.Set("status", deliveryModify.Status.String())
	}
	if deliveryModify.CourierID != nil {
		builder = builder.Set("courier_id", *deliveryModify.CourierID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": pointer.Get(deliveryModify.ID)}).
		Suffix("RETURNING " + strings.Join(deliveryColumns, ", "))

	var deliveryDB DeliveryDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(deliveryDB.scanTargets()...)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, delivery.ErrDeliveryNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB)
}

// Delete удаляет доставку вместе с журналом и подтверждением (ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM deliveries WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return delivery.ErrDeliveryNotFound
		}
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := querier.Builder.
		Select(prefixed("d", deliveryColumns)...).
		From("deliveries d").
		Join("delivery_points p ON p.id = d.delivery_point_id").
		OrderBy("d.created_at DESC", "d.id").
		Limit(filter.Limit).
		Offset(filter.Offset)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"d.status": filter.Status.String()})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"d.courier_id": *filter.CourierID})
	}
	if filter.ClientID != nil {
		builder = builder.Where(sq.Eq{"d.client_id": *filter.ClientID})
	}
	if filter.SearchText != nil {
		pattern := "%" + escapeLike(*filter.SearchText) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"d.id::text": pattern},
			sq.ILike{"p.description": pattern},
		})
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		if repository.IsNotFound(err) {
			return []entities.Delivery{}, nil
		}
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveriesDB := make([]DeliveryDB, 0, filter.Limit)
	for rows.Next() {
		var deliveryDB DeliveryDB
		if err := rows.Scan(deliveryDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		deliveriesDB = append(deliveriesDB, deliveryDB)
	}

	if err := rows.Err(); err != nil {
		// невалидный uuid в фильтре courier_id/client_id
		if repository.IsNotFound(err) {
			return []entities.Delivery{}, nil
		}
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(deliveriesDB)
}

func (r *Repository) CreateProof(ctx context.Context, deliveryID string, submission entities.ProofSubmission) (*entities.ProofOfDelivery, error) {
	query := `
		INSERT INTO proofs_of_delivery (id, delivery_id, otp, photo_url, signature, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + proofColumns

	var proofDB ProofDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		deliveryID,
		submission.OTP,
		submission.PhotoURL,
		submission.Signature,
		submission.Latitude,
		submission.Longitude,
	).Scan(proofDB.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrProofAlreadyExists
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository create proof error: %w", err)
	}

	return ProofToDomain(&proofDB), nil
}

func (r *Repository) GetProof(ctx context.Context, deliveryID string) (*entities.ProofOfDelivery, error) {
	query := `
		SELECT ` + proofColumns + `
		FROM proofs_of_delivery
		WHERE delivery_id = $1
	`

	var proofDB ProofDB
	err := r.querier.QueryRow(ctx, query, deliveryID).Scan(proofDB.scanTargets()...)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, delivery.ErrProofNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get proof error: %w", err)
	}

	return ProofToDomain(&proofDB), nil
}

// CountByStatus возвращает число доставок в каждом статусе, отсутствующие статусы равны нулю.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatus]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.DeliveryStatus]int64, len(entities.AllDeliveryStatuses()))
	for _, status := range entities.AllDeliveryStatuses() {
		counts[status] = 0
	}

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
		}
		counts[entities.DeliveryStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository count error: %w", err)
	}
	return counts, nil
}
