package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/nigellippett2/nrml/internal/backend"
	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/healthcheck"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/version"
)

const pingTimeout = 5 * time.Second

// Pinger is a dependency the health report probes.
type Pinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

// Health handles health check requests
type Health struct {
	backend Pinger
	cfg     *config.Config
	log     *slog.Logger
	startAt time.Time
}

func NewHealth(c *backend.Client, cfg *config.Config, log *slog.Logger) *Health {
	return newHealth(c, cfg, log)
}

func newHealth(p Pinger, cfg *config.Config, log *slog.Logger) *Health {
	return &Health{
		backend: p,
		cfg:     cfg,
		log:     log.With(logger.Scope("health")),
		startAt: time.Now(),
	}
}

// Health returns the overall service health: 200 when healthy, 503 when a
// check failed. Disabled collaborators do not count as failures.
func (h *Health) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	checks := map[string]healthcheck.Check{
		"backend": h.backendCheck(ctx),
		"email":   h.emailCheck(),
	}

	overall := healthcheck.StatusHealthy
	for _, c := range checks {
		if c.Status == healthcheck.StatusUnhealthy {
			overall = healthcheck.StatusUnhealthy
		}
	}

	resp := healthcheck.Response{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Version:   version.Version,
		Checks:    checks,
	}

	status := http.StatusOK
	if overall == healthcheck.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("encode health response", logger.Error(err))
	}
}

func (h *Health) backendCheck(ctx context.Context) healthcheck.Check {
	if !h.backend.Enabled() {
		return healthcheck.Check{Status: healthcheck.StatusDisabled, Message: "credentials not configured"}
	}
	if err := h.backend.Ping(ctx); err != nil {
		h.log.Warn("backend ping failed", logger.Error(err))
		return healthcheck.Check{Status: healthcheck.StatusUnhealthy, Message: err.Error()}
	}
	return healthcheck.Check{Status: healthcheck.StatusHealthy}
}

func (h *Health) emailCheck() healthcheck.Check {
	if !h.cfg.Email.Enabled || !h.cfg.Email.IsConfigured() {
		return healthcheck.Check{Status: healthcheck.StatusDisabled}
	}
	return healthcheck.Check{Status: healthcheck.StatusHealthy, Message: "mailgun"}
}

// Healthz is the liveness probe.
func (h *Health) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
