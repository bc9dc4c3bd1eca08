package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPriced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barista_orders_priced_total",
			Help: "Total number of orders priced, by rule pack version",
		},
		[]string{"rules_version"},
	)

	guardHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barista_guard_hits_total",
			Help: "Total number of guard violations, by rule",
		},
		[]string{"rule"},
	)
)
