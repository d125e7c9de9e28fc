// Package rest exposes the pre-consultation commands and queries over HTTP.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/preconsultation-backend/internal/auth"
	"github.com/heartmarshall/preconsultation-backend/internal/config"
	"github.com/heartmarshall/preconsultation-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Caller, error)
}

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Logger             *slog.Logger
	Tokens             tokenValidator
	PreConsultations   *PreConsultationHandler
	Health             *HealthHandler
	CORS               config.CORSConfig
	RateLimiter        *middleware.RateLimiter
	RateLimitPerMinute int
}

// NewRouter builds the HTTP handler. Health probes are served at the root,
// everything else under /api/v1.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(d.CORS))
	r.Use(middleware.Auth(d.Tokens))
	r.Use(middleware.Logger(d.Logger))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api/v1", func(api chi.Router) {
		if d.RateLimiter != nil {
			api.Use(d.RateLimiter.Limit(d.RateLimitPerMinute))
		}
		d.PreConsultations.Routes(api)
	})

	return r
}
