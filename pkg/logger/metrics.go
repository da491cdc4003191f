package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for the calculator session. They are auto-registered
// on the default registry and exposed via /metrics when the telemetry server
// is enabled.

var (
	// CalculationsTotal counts successful calculations by operation symbol
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_calculations_total",
			Help: "Total number of successful calculations",
		},
		[]string{"operation"},
	)

	// InputErrorsTotal counts rejected input lines by error kind
	InputErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_input_errors_total",
			Help: "Total number of rejected input lines",
		},
		[]string{"reason"},
	)

	// CommandsTotal counts dispatched special commands
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_commands_total",
			Help: "Total number of dispatched commands",
		},
		[]string{"command"},
	)

	// HistorySize tracks the current number of entries in the session history
	HistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calc_history_size",
			Help: "Current number of calculations in the session history",
		},
	)
)
