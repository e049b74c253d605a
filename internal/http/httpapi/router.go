package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"jakob/internal/http/handlers"
	"jakob/internal/infra"
	"jakob/internal/middleware"
)

func NewRouter(cfg *infra.Config, app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	r.Get("/v1/healthz", app.Health)

	// write endpoints share a per-IP budget
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/v1/signup", app.SignupCreate)
		r.Post("/v1/donations", app.DonationsCreate)
	})

	r.Route("/v1/creators", func(r chi.Router) {
		r.Get("/{id}", app.CreatorProfile)
		r.Get("/{id}/donations", app.CreatorDonations)
	})

	r.Get("/v1/stats", app.StatsSummary)

	return r
}
