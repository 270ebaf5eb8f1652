package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	// Опционально, например для логирования неудачных попыток
	Notify NotifyFunc
}

// Connect - профиль для прогрева соединений при старте (postgres, redis, kafka).
func Connect() Config {
	return Config{
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// Publish - короткий профиль для публикации сообщений на горячем пути.
func Publish() Config {
	return Config{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  3 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
	}
}
