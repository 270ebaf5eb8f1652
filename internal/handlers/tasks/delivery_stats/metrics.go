package delivery_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var deliveriesByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "deliveries_by_status",
		Help: "Current number of deliveries per lifecycle status",
	},
	[]string{"status"},
)
