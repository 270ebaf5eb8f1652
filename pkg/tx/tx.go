package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgSerializationFailure = "40001"

// ErrSerializationFailure оборачивает SQLSTATE 40001: транзакция проиграла
// конкурентной и может быть повторена.
var ErrSerializationFailure = errors.New("could not serialize transaction")

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do - основная транзакция на запись. Если в ctx уже есть транзакция,
// fn выполняется в ней.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	err := m.internal.DoWithSettings(ctx, m.settings(trm.PropagationRequired, pgx.TxOptions{
		IsoLevel: pgx.Serializable,
	}), fn)
	return markSerializationFailure(err)
}

// DoNested открывает SAVEPOINT внутри текущей транзакции: ошибка fn
// откатывает только savepoint, внешняя транзакция продолжает жить.
// Без внешней транзакции ведет себя как Do.
func (m *Manager) DoNested(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings(trm.PropagationNested, pgx.TxOptions{
		IsoLevel: pgx.Serializable,
	}), fn)
}

// DoReadOnly - согласованный снимок для чтения из нескольких таблиц.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings(trm.PropagationRequired, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}), fn)
}

func (m *Manager) settings(propagation trm.Propagation, opts pgx.TxOptions) pgxv5.Settings {
	return pgxv5.MustSettings(
		settings.Must(settings.WithPropagation(propagation)),
		pgxv5.WithTxOptions(opts),
	)
}

func markSerializationFailure(err error) error {
	if err == nil || errors.Is(err, ErrSerializationFailure) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure {
		return fmt.Errorf("%w: %w", ErrSerializationFailure, err)
	}
	return err
}
