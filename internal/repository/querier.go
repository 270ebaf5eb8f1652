package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier - то, что репозитории требуют от pkg/querier.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	QueryBuilder(ctx context.Context, builder sq.Sqlizer) (pgx.Rows, error)
	QueryRowBuilder(ctx context.Context, builder sq.Sqlizer) pgx.Row
}
