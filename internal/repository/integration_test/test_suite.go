//go:build integration

package integration_test

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/postgres"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/migrations"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/querier"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/tx"
)

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	querierOnce     sync.Once
)

// GetQuerier поднимает postgres в контейнере один раз на пакет и накатывает миграции.
// Контейнер живет до конца процесса тестов, testcontainers убирает его через ryuk.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		container, err := pgcontainer.Run(ctx,
			"postgres:16-alpine",
			pgcontainer.WithDatabase("loko_test"),
			pgcontainer.WithUsername("loko"),
			pgcontainer.WithPassword("loko"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get postgres dsn: %v", err)
		}

		if err := migrate(dsn); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		connPool, err := postgres.NewConnPoolFromDSN(ctx, logger.Nop{}, dsn)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(connPool)
	})

	return querierInstance
}

func GetTxManager() *tx.Manager {
	GetQuerier()
	return txInstance
}

func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE notifications, delivery_logs, proofs_of_delivery, deliveries,
			delivery_points, products, users CASCADE;
	`)
	require.NoError(t, err)
}
