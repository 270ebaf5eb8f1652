package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/notification"
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

func (r *Repository) Create(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + notificationColumns

	var n NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		notificationModify.UserID,
		notificationModify.Title,
		notificationModify.Message,
		notificationModify.Type.String(),
		notificationModify.Link,
	).Scan(n.scanTargets()...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) ||
			repository.IsPgErrorWithCode(err, repository.PgErrInvalidTextRepresentation) {
			return nil, notification.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&n), nil
}

// ListByUser возвращает уведомления пользователя, новые первыми.
func (r *Repository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]entities.Notification, error) {
	builder := querier.Builder.
		Select(notificationColumns).
		From("notifications").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC", "id DESC")

	if unreadOnly {
		builder = builder.Where("is_read = FALSE")
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		if repository.IsNotFound(err) {
			return []entities.Notification{}, nil
		}
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationsDB := make([]NotificationDB, 0, 16)
	for rows.Next() {
		var n NotificationDB
		if err := rows.Scan(n.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationsDB = append(notificationsDB, n)
	}

	if err := rows.Err(); err != nil {
		if repository.IsNotFound(err) {
			return []entities.Notification{}, nil
		}
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationsDB), nil
}

func (r *Repository) MarkRead(ctx context.Context, id string, userID string) (*entities.Notification, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	var n NotificationDB
	err := r.querier.QueryRow(ctx, query, id, userID).Scan(n.scanTargets()...)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository markread error: %w", err)
	}

	return ToDomain(&n), nil
}

func (r *Repository) Delete(ctx context.Context, id string, userID string) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.querier.Exec(ctx, query, id, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("unexpected notification repository delete error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}
