package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts calendar queries by granularity and outcome.
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "localdate",
			Subsystem: "api",
			Name:      "queries_total",
			Help:      "Total number of calendar queries handled.",
		},
		[]string{"granularity", "outcome"},
	)

	// parseFailures counts inputs rejected by the date and month parsers.
	parseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "localdate",
			Subsystem: "api",
			Name:      "parse_failures_total",
			Help:      "Total number of malformed date inputs rejected.",
		},
	)
)
