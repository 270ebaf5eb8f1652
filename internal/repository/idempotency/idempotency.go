package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/service/delivery"
)

const (
	keyPrefix     = "idempotency:create_order:"
	pendingMarker = "pending"
)

type placedDB struct {
	DeliveryID       string `json:"deliveryId"`
	ConfirmationCode string `json:"confirmationCode"`
}

// Store хранит результаты createOrder в redis. Ключ сначала резервируется
// маркером pending, после коммита заменяется результатом. Без клиента
// (REDIS_ADDR не задан) каждый запрос обрабатывается как новый.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

func New(client *goredis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func (s *Store) Begin(ctx context.Context, key string) (*entities.OrderPlaced, error) {
	if s.client == nil {
		return nil, nil
	}

	reserved, err := s.client.SetNX(ctx, keyPrefix+key, pendingMarker, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if reserved {
		return nil, nil
	}

	raw, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		// ключ истек между SETNX и GET, клиенту стоит повторить
		if errors.Is(err, goredis.Nil) {
			return nil, delivery.ErrIdempotencyInFlight
		}
		return nil, fmt.Errorf("read idempotency key: %w", err)
	}

	if raw == pendingMarker {
		return nil, delivery.ErrIdempotencyInFlight
	}

	var stored placedDB
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode idempotent result: %w", err)
	}

	return &entities.OrderPlaced{
		DeliveryID:       stored.DeliveryID,
		ConfirmationCode: stored.ConfirmationCode,
	}, nil
}

func (s *Store) Complete(ctx context.Context, key string, result entities.OrderPlaced) error {
	if s.client == nil {
		return nil
	}

	raw, err := json.Marshal(placedDB{
		DeliveryID:       result.DeliveryID,
		ConfirmationCode: result.ConfirmationCode,
	})
	if err != nil {
		return fmt.Errorf("encode idempotent result: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store idempotent result: %w", err)
	}
	return nil
}

func (s *Store) Release(ctx context.Context, key string) error {
	if s.client == nil {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
