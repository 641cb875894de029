// Package metrics declares the Prometheus collectors of the order workflow.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "boutique"

var (
	// OrdersCreated counts order creation attempts by outcome.
	OrdersCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Count of order creation attempts by result.",
	}, []string{"result"})

	// OrderTotal observes the total price of created orders in francs.
	OrderTotal = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_total_francs",
		Help:      "Total price of created orders.",
		Buckets:   []float64{5000, 10000, 25000, 50000, 100000, 250000, 500000, 1000000},
	})

	// OutboxPublished counts outbox relay outcomes.
	OutboxPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_published_total",
		Help:      "Count of outbox events handed to the broker by result.",
	}, []string{"topic", "result"})
)

// MustRegister registers every collector on reg, tolerating collectors that are already registered.
func MustRegister(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{OrdersCreated, OrderTotal, OutboxPublished} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			panic(fmt.Errorf("register metric: %w", err))
		}
	}
}
