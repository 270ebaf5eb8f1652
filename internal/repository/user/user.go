package user

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/repository"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/user"
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

func (r *Repository) Create(ctx context.Context, userModify entities.UserModify) (string, error) {
	query := `INSERT INTO users (id, name, phone, role, location_latitude, location_longitude, location_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	lat, lng, description := locationColumns(userModify.Location)

	var role *string
	if userModify.Role != nil {
		roleValue := userModify.Role.String()
		role = &roleValue
	}

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		userModify.Name,
		userModify.Phone,
		role,
		lat,
		lng,
		description,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", user.ErrConflict
		}
		return "", fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	builder := querier.Builder.
		Update("users")

	// опционные поля
	if userModify.Name != nil {
		builder = builder.Set("name", *userModify.Name)
	}
	if userModify.Phone != nil {
		builder = builder.Set("phone", *userModify.Phone)
	}
	if userModify.Role != nil {
		builder = builder.Set("role", userModify.Role.String())
	}
	if userModify.Location != nil {
		lat, lng, description := locationColumns(userModify.Location)
		builder = builder.
			Set("location_latitude", lat).
			Set("location_longitude", lng).
			Set("location_description", description)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": pointer.Get(userModify.ID)}).
		Suffix("RETURNING " + userColumns)

	var userDB UserDB
	err := r.querier.QueryRowBuilder(ctx, builder).Scan(userDB.scanTargets()...)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, user.ErrUserNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}

		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(userDB.scanTargets()...)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, user.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetAll(ctx context.Context, role *entities.UserRole) ([]entities.User, error) {
	builder := querier.Builder.
		Select(userColumns).
		From("users").
		OrderBy("created_at", "id")

	if role != nil {
		builder = builder.Where(sq.Eq{"role": role.String()})
	}

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	usersDB := make([]UserDB, 0, 8)
	for rows.Next() {
		var userDB UserDB
		if err := rows.Scan(userDB.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		usersDB = append(usersDB, userDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(usersDB), nil
}
