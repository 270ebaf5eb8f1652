package inventory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inventory_stock_adjustments_total",
		Help: "Stock decrement attempts made while placing orders, by outcome",
	},
	[]string{"result"},
)
