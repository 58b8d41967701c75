package web

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartevents/internal/adapters/api"
	"smartevents/internal/adapters/email"
	"smartevents/internal/adapters/http/middleware"
	sessionStore "smartevents/internal/adapters/storage/session"
)

// Deps holds everything the handlers need: the backend client, the
// persisted session store, and contact-mail delivery.
type Deps struct {
	API      *api.Client
	Sessions sessionStore.Store
	Sender   email.Sender

	ContactTo   string
	ContactFrom string

	// CSRFKey is the 32-byte gorilla/csrf auth key.
	CSRFKey []byte
	// TrustedOrigins for CSRF checks (host:port, no scheme).
	TrustedOrigins []string
}

// Global deps instance (set by NewMux)
var deps *Deps

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, d *Deps) http.Handler {
	deps = d

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.Handle("/metrics", promhttp.Handler())
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Metrics -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(d.CSRFKey, d.TrustedOrigins),
		middleware.Auth(d.Sessions),
		middleware.RateLimit(limiter),
		middleware.Metrics,
	)
}
