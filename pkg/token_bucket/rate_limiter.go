package token_bucket

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

/*
Ведро пополняется дробными токенами пропорционально прошедшему времени,
поэтому медленные скорости (меньше одного токена в секунду) не теряются на округлении.
KeyedLimiter держит отдельное ведро на каждого вызывающего.
*/

type Limiter interface {
	Allow() bool
}

type KeyLimiter interface {
	Allow(key string) bool
}

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// idle сообщает, что ведро полностью восстановилось и его можно выкинуть из KeyedLimiter.
func (t *TokenBucket) idle(now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(now)
	return t.tokens >= t.capacity
}

type KeyedLimiter struct {
	capacity   int
	refillRate float64

	mu      sync.Mutex
	buckets *simplelru.LRU[string, *TokenBucket]
}

const defaultMaxKeys = 10000

// NewKeyedLimiter создает лимитер с ведром на ключ.
// Ключей хранится не больше maxKeys: сначала выкидываются восстановленные ведра
// из хвоста LRU, затем самое давно использованное. maxKeys <= 0 означает defaultMaxKeys.
func NewKeyedLimiter(capacity int, refillRate float64, maxKeys int) *KeyedLimiter {
	if maxKeys <= 0 {
		maxKeys = defaultMaxKeys
	}

	// ошибка возможна только при size <= 0
	buckets, _ := simplelru.NewLRU[string, *TokenBucket](maxKeys, nil)

	return &KeyedLimiter{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    buckets,
	}
}

func (k *KeyedLimiter) Allow(key string) bool {
	return k.bucket(key).Allow()
}

func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.buckets.Len()
}

func (k *KeyedLimiter) bucket(key string) *TokenBucket {
	k.mu.Lock()
	defer k.mu.Unlock()

	if b, ok := k.buckets.Get(key); ok {
		return b
	}

	k.evictIdle(time.Now())

	b := NewTokenBucket(k.capacity, k.refillRate)
	k.buckets.Add(key, b)
	return b
}

// evictIdle снимает восстановленные ведра с конца LRU и останавливается на первом занятом.
func (k *KeyedLimiter) evictIdle(now time.Time) {
	for {
		_, b, ok := k.buckets.GetOldest()
		if !ok || !b.idle(now) {
			return
		}
		k.buckets.RemoveOldest()
	}
}
