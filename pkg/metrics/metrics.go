// Package metrics exposes the engine's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MonitorTicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plantcare_monitor_ticks_total",
		Help: "Completed monitoring ticks.",
	})

	MonitorTickErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plantcare_monitor_tick_errors_total",
		Help: "Monitoring ticks that failed at the iteration level.",
	})

	PlantCheckErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plantcare_plant_check_errors_total",
		Help: "Per-plant check failures isolated by the monitoring loop.",
	})

	AlertsRaisedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantcare_alerts_raised_total",
		Help: "Alerts created, by severity.",
	}, []string{"severity"})

	AlertsSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plantcare_alerts_suppressed_total",
		Help: "Alert creations suppressed by deduplication.",
	})

	IrrigationsStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantcare_irrigations_started_total",
		Help: "Irrigation events started, by trigger type.",
	}, []string{"trigger"})

	DecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plantcare_decisions_total",
		Help: "Scoring decisions evaluated, by action.",
	}, []string{"action"})
)
