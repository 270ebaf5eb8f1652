package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	application "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/app"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/deliveries_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_assign_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_proof_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/delivery_status_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/healthcheck_head"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/notification_delete"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/notification_read_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/notifications_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/order_delete"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/order_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/ping_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/product_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/product_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/user_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/user_post"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/user_put"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/handlers/rest/users_get"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/config"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/dotenv"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/kafka"
	metrics_system "github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/metrics"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/graceful_shutdown"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/identity"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/metrics"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/rate_limiter"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/middlewares/timeout"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/postgres"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/redis"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger/zap_adapter"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/token_bucket"
)

// rateLimiterMaxCallers - предел числа ведер, лишние вытесняются по LRU.
const rateLimiterMaxCallers = 10000

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
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-service application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if redisClient != nil {
		defer closeRedis(runLog, redisClient)
	}

	var producer *kafka.Producer
	if cfg.Events.Mode == config.EventsModeKafka {
		producer, err = kafka.NewProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
	}
	runLog.Info("delivery events mode",
		logger.NewField("mode", cfg.Events.Mode),
	)

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	businessApp.BackgroundWorkers.Wait()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(identity.Middleware())

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewKeyedLimiter(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterMaxCallers)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/orders", order_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/orders/{id}", order_delete.New(log, app.ServiceDelivery)).Methods("DELETE")

	router.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveries/{id}/assign", delivery_assign_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/deliveries/{id}/status", delivery_status_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/deliveries/{id}/proof", delivery_proof_post.New(log, app.ServiceDelivery)).Methods("POST")

	router.Handle("/users", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/users", users_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/users/{id}", user_get.New(log, app.ServiceUser)).Methods("GET")
	router.Handle("/users/{id}", user_put.New(log, app.ServiceUser)).Methods("PUT")

	router.Handle("/products", product_post.New(log, app.ServiceProduct)).Methods("POST")
	router.Handle("/products/{id}", product_get.New(log, app.ServiceProduct)).Methods("GET")

	router.Handle("/notifications", notifications_get.New(log, app.ServiceNotification)).Methods("GET")
	router.Handle("/notifications/{id}/read", notification_read_post.New(log, app.ServiceNotification)).Methods("POST")
	router.Handle("/notifications/{id}", notification_delete.New(log, app.ServiceNotification)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

func closeRedis(log logger.Logger, client *goredis.Client) {
	if err := client.Close(); err != nil {
		log.Error("failed to close redis client",
			logger.NewField("error", err),
		)
	}
}
