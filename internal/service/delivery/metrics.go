package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_operations_total",
			Help: "Delivery lifecycle operations by operation and outcome",
		},
		[]string{"operation", "result"},
	)

	ConfirmationCodeMismatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_confirmation_code_mismatches_total",
			Help: "Proof submissions rejected because of a wrong confirmation code",
		},
	)
)
