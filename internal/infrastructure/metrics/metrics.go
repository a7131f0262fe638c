package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "showdown"

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rooms_created_total",
		Help:      "Number of rooms created since startup.",
	})

	PlayersJoined = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "players_joined_total",
		Help:      "Number of successful room joins.",
	})

	ChoicesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "choices_submitted_total",
		Help:      "Number of accepted choice submissions.",
	})

	// RoundsResolved is labeled by outcome: "win" or "draw".
	RoundsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_resolved_total",
		Help:      "Number of resolved rounds by outcome.",
	}, []string{"outcome"})

	BroadcastsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_dropped_total",
		Help:      "Broadcasts dropped because the dispatch queue or a client buffer was full.",
	})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers",
		Help:      "Currently connected topic subscribers.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status.",
	}, []string{"method", "path", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// ResolvedOutcome records one resolved round.
func ResolvedOutcome(draw bool) {
	if draw {
		RoundsResolved.WithLabelValues("draw").Inc()
		return
	}
	RoundsResolved.WithLabelValues("win").Inc()
}

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
