package main

import (
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/config"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/dotenv"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/postgres"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/migrations"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger/zap_adapter"
)

// migrate накатывает встроенные миграции: migrate [up|down|status|version]
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			appLogger.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	} else {
		flag.Parse()
	}

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	if err := run(appLogger, command); err != nil {
		appLogger.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		os.Exit(1)
	}
}

func run(log logger.Logger, command string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("pgx", postgres.NewDSN(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	log.Info("migration done", logger.NewField("command", command))
	return nil
}
