package api

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outbound request metrics, labeled by route template rather than raw
// path so ID segments do not blow up label cardinality.
var (
	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartevents_api_requests_total",
		Help: "Outbound requests to the SmartEvents backend by method, route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartevents_api_request_duration_seconds",
		Help:    "Outbound backend request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func observeRequest(method, path, status string, elapsed time.Duration) {
	route := routeTemplate(path)
	requestTotal.WithLabelValues(method, route, status).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// staticSegments are path segments that are route words, not IDs.
var staticSegments = map[string]bool{
	"events": true, "categories": true, "users": true, "upload": true,
	"myevents": true, "registered": true, "register": true, "login": true,
	"profile": true, "forgotpassword": true, "resetpassword": true,
	"all": true, "approve": true,
}

// routeTemplate collapses ID segments: /events/68ab… -> /events/{id}.
func routeTemplate(path string) string {
	path = strings.SplitN(path, "?", 2)[0]
	segs := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range segs {
		if seg != "" && !staticSegments[seg] {
			segs[i] = "{id}"
		}
	}
	return "/" + strings.Join(segs, "/")
}
