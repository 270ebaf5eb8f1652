package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/pkg/config"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
	retrierconfig "github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/retrier"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/retrier/backoff_adapter"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
)

// NewClient возвращает nil без ошибки, если REDIS_ADDR не задан.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	if cfg.Addr == "" {
		log.Info("redis is not configured, Idempotency-Key support disabled")
		return nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	retrier := backoff_adapter.New(retrierconfig.Connect())

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		redisLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	redisLog.With(
		logger.NewField("attempts", attempt),
	).Info("Redis connection established")
	return client, nil
}
