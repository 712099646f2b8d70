package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/nigellippett2/nrml/internal/config"
)

// Module provides the page and health handlers.
var Module = fx.Module("handlers",
	fx.Provide(
		NewPages,
		NewHealth,
	),
)

// RegisterRoutes mounts the page and health routes. The showcase route
// exists only when cfg.ShowcaseEnabled.
func RegisterRoutes(r chi.Router, pages *Pages, health *Health, cfg *config.Config) {
	r.Get("/", pages.Landing)
	r.Post("/signup", pages.Signup)
	if cfg.ShowcaseEnabled {
		r.Get("/styles", pages.Showcase)
	}

	r.Get("/health", health.Health)
	r.Get("/api/health", health.Health)
	r.Get("/healthz", health.Healthz)

	r.NotFound(pages.NotFound)
}
