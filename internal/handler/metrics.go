package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant_bot",
			Subsystem: "telegram",
			Name:      "updates_total",
			Help:      "Total number of Telegram updates handled by kind",
		},
		[]string{"kind"},
	)

	updateDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "restaurant_bot",
			Subsystem: "telegram",
			Name:      "update_duration_seconds",
			Help:      "Histogram of update handling durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	eventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant_bot",
			Subsystem: "orders",
			Name:      "channel_events_total",
			Help:      "Total number of classified channel events by event and outcome",
		},
		[]string{"event", "outcome"},
	)

	actionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "restaurant_bot",
			Subsystem: "orders",
			Name:      "staff_actions_total",
			Help:      "Total number of staff button presses by action and outcome",
		},
		[]string{"action", "outcome"},
	)
)

// RegisterMetrics registers handler metrics together with a gauge that
// reports the number of open orders on every scrape.
func RegisterMetrics(openOrders func() int) {
	prometheus.MustRegister(
		updatesTotal,
		updateDuration,
		eventsTotal,
		actionsTotal,

		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "restaurant_bot",
				Subsystem: "orders",
				Name:      "open_orders",
				Help:      "Number of orders awaiting staff action",
			},
			func() float64 { return float64(openOrders()) },
		),
	)
}
