package delivery_stats

import (
	"context"
	"time"

	"github.com/mustaklebrown/loko-logistique-comores-sub001/internal/entities"
	"github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"
)

type DeliveryStats struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewDeliveryStats(log taskLogger, service Service, interval time.Duration) *DeliveryStats {
	return &DeliveryStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DeliveryStats) TTL() time.Duration {
	return d.interval
}

func (d *DeliveryStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	stats, err := d.service.DeliveryStats(ctxWithTimeout)
	if err != nil {
		return err
	}

	var active int64
	for _, status := range entities.AllDeliveryStatuses() {
		count := stats[status]
		deliveriesByStatus.WithLabelValues(status.String()).Set(float64(count))

		if !status.IsTerminal() {
			active += count
		}
	}

	d.log.With(
		logger.NewField("active_deliveries", active),
	).Debug("delivery stats")

	return nil
}

func (d *DeliveryStats) Info() string {
	return "delivery stats"
}
