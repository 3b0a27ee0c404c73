// Package metrics exposes the service's Prometheus collectors. Counters are
// registered on the default registry and served via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HoldsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hba_holds_created_total",
		Help: "Number of room holds successfully created.",
	})

	HoldsReleased = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hba_holds_released_total",
		Help: "Number of holds explicitly released by the holder.",
	})

	HoldsEvicted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hba_holds_evicted_total",
		Help: "Number of expired holds evicted by the sweeper.",
	})

	HoldsExtended = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hba_holds_extended_total",
		Help: "Number of hold extensions granted.",
	})

	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hba_bookings_confirmed_total",
		Help: "Number of holds consumed into confirmed bookings.",
	})
)
