package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harborlight-health/clinic-platform/internal/dashboard"
	httpmiddleware "github.com/harborlight-health/clinic-platform/internal/http/middleware"
	"github.com/harborlight-health/clinic-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Dashboard          *dashboard.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Requests per second allowed per client IP on the clinic API. Zero
	// disables rate limiting.
	APIRequestsPerSecond float64
	APIBurst             int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Group(func(api chi.Router) {
		if cfg.APIRequestsPerSecond > 0 {
			burst := cfg.APIBurst
			if burst <= 0 {
				burst = int(cfg.APIRequestsPerSecond) * 2
			}
			api.Use(httpmiddleware.RateLimit(cfg.APIRequestsPerSecond, burst))
		}
		if cfg.Dashboard != nil {
			api.Get("/clinics/{orgID}/dashboard/metrics", cfg.Dashboard.GetMetrics)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
