package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "restaurant_bot",
	Subsystem: "kafka_publisher",
	Name:      "events_total",
	Help:      "Total number of lifecycle events handed to Kafka by status.",
}, []string{"status"})
