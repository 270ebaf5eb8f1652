package eventbus

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

// Bus раздает события доставки подписчикам после коммита.
// Ошибки подписчиков логируются и считаются в метрике, наружу они не выходят.
type Bus struct {
	log         busLogger
	timeout     time.Duration
	subscribers []Subscriber
}

func New(log busLogger, timeout time.Duration, subscribers ...Subscriber) *Bus {
	return &Bus{
		log:         log,
		timeout:     timeout,
		subscribers: subscribers,
	}
}

// Publish блокирует до завершения всех подписчиков или истечения таймаута.
// Отмена контекста запроса на доставку событий не влияет.
func (b *Bus) Publish(ctx context.Context, event entities.DeliveryEvent) {
	if len(b.subscribers) == 0 {
		return
	}

	dispatchCtx := context.WithoutCancel(ctx)
	if b.timeout > 0 {
		var cancel context.CancelFunc
		dispatchCtx, cancel = context.WithTimeout(dispatchCtx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	eventsPublishedTotal.WithLabelValues(event.Type.String()).Inc()

	// ошибки собираются в run, errgroup нужен только для ожидания
	var g errgroup.Group
	for _, sub := range b.subscribers {
		g.Go(func() error {
			b.run(dispatchCtx, sub, event)
			return nil
		})
	}
	_ = g.Wait()

	dispatchDuration.WithLabelValues(event.Type.String()).Observe(time.Since(start).Seconds())
}

func (b *Bus) run(ctx context.Context, sub Subscriber, event entities.DeliveryEvent) {
	log := b.log.With(
		logger.NewField("subscriber", sub.Name()),
		logger.NewField("event", event.Type.String()),
		logger.NewField("delivery_id", event.DeliveryID),
	)

	defer func() {
		if r := recover(); r != nil {
			sideEffectFailuresTotal.WithLabelValues(sub.Name(), reasonPanic).Inc()
			log.Error("subscriber panicked",
				logger.NewField("panic", fmt.Sprint(r)),
			)
		}
	}()

	err := sub.Handle(ctx, event)
	if err != nil {
		sideEffectFailuresTotal.WithLabelValues(sub.Name(), reasonError).Inc()
		log.Error("subscriber failed",
			logger.NewField("error", err),
		)
	}
}
