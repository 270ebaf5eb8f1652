package deliverylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/audit"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, logModify entities.DeliveryLogModify) (*entities.DeliveryLog, error) {
	query := `
		INSERT INTO delivery_logs (id, event_id, delivery_id, user_id, action, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING id, delivery_id, user_id, action, details, created_at
	`

	var logDB DeliveryLogDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		logModify.EventID,
		logModify.DeliveryID,
		logModify.UserID,
		logModify.Action,
		logModify.Details,
	).Scan(
		&logDB.ID,
		&logDB.DeliveryID,
		&logDB.UserID,
		&logDB.Action,
		&logDB.Details,
		&logDB.CreatedAt,
	)
	if err != nil {
		// ON CONFLICT DO NOTHING не возвращает строку
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, audit.ErrAlreadyRecorded
		}
		// доставку могли отменить (удалить) между коммитом и записью журнала
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) &&
			repository.ConstraintName(err) == "delivery_logs_delivery_id_fkey" {
			return nil, audit.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery log repository create error: %w", err)
	}

	return ToDomain(&logDB), nil
}

func (r *Repository) ListByDelivery(ctx context.Context, deliveryID string) ([]entities.DeliveryLog, error) {
	query := `
		SELECT id, delivery_id, user_id, action, details, created_at
		FROM delivery_logs
		WHERE delivery_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.querier.Query(ctx, query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery log repository list error: %w", err)
	}
	defer rows.Close()

	logsDB := make([]DeliveryLogDB, 0, 8)
	for rows.Next() {
		var logDB DeliveryLogDB
		err := rows.Scan(
			&logDB.ID,
			&logDB.DeliveryID,
			&logDB.UserID,
			&logDB.Action,
			&logDB.Details,
			&logDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery log repository list error: %w", err)
		}
		logsDB = append(logsDB, logDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery log repository list error: %w", err)
	}

	return ToDomainList(logsDB), nil
}
