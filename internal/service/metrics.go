package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var orderLogFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "restaurant_bot",
	Subsystem: "orders",
	Name:      "order_log_failures_total",
	Help:      "Total number of order log writes that failed after all retries.",
})
