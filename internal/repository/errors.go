package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrInvalidTextRepresentation = "22P02"
	PgErrForeignKeyViolation       = "23503"
	PgErrUniqueViolation           = "23505"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// ConstraintName возвращает имя нарушенного ограничения или пустую строку.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsNotFound - строка не найдена, либо идентификатор не является валидным uuid.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || IsPgErrorWithCode(err, PgErrInvalidTextRepresentation)
}
