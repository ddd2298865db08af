package notifier

import (
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var telegramCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "restaurant_bot",
	Subsystem: "telegram",
	Name:      "outbound_calls_total",
	Help:      "Total number of outbound Telegram calls by audience, kind and status.",
}, []string{"audience", "kind", "status"})

func observe(to entities.Audience, kind string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	telegramCallsTotal.WithLabelValues(to.String(), kind, status).Inc()
}
