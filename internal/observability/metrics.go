package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	APIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "flare_api_requests_total", Help: "API requests"},
		[]string{"endpoint", "status"},
	)
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "flare_registrations_total", Help: "Phone registration outcomes"},
		[]string{"result"},
	)
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "flare_events_published_total", Help: "Registration event publish results"},
		[]string{"result"},
	)
	StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "flare_store_latency_seconds", Help: "Store call latency", Buckets: prometheus.DefBuckets},
		[]string{"op"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(APIRequests, Registrations, EventsPublished, StoreLatency)
}
