// Package backend is a small client for the backend-as-a-service project
// that stores landing page signups. It speaks the PostgREST dialect exposed
// under /rest/v1.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/logger"
)

var (
	// ErrNotConfigured is returned by every operation of a client built
	// without credentials.
	ErrNotConfigured = errors.New("backend is not configured")
	// ErrConflict is returned when the row already exists.
	ErrConflict = errors.New("backend row already exists")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Signup is one row of the signup table.
type Signup struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Client talks to the backend. A zero-credential client is valid and
// disabled.
type Client struct {
	http    *resty.Client
	table   string
	enabled bool
	log     *slog.Logger
}

// NewClient builds a client from configuration. Missing credentials yield a
// disabled client and a single warning.
func NewClient(cfg *config.Config, log *slog.Logger) *Client {
	log = log.With(logger.Scope("backend"))

	c := &Client{
		table: cfg.Backend.SignupTable,
		log:   log,
	}
	if !cfg.Backend.IsConfigured() {
		log.Warn("backend credentials missing, signups will be rejected",
			slog.Bool("url_set", cfg.Backend.URL != ""),
			slog.Bool("key_set", cfg.Backend.AnonKey != ""))
		return c
	}

	c.enabled = true
	c.http = resty.New().
		SetBaseURL(strings.TrimRight(cfg.Backend.URL, "/")+"/rest/v1").
		SetTimeout(cfg.Backend.Timeout).
		SetHeader("apikey", cfg.Backend.AnonKey).
		SetAuthToken(cfg.Backend.AnonKey).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	log.Info("backend client configured", slog.String("table", c.table))
	return c
}

// Enabled reports whether the client has credentials.
func (c *Client) Enabled() bool { return c.enabled }

// InsertSignup stores one signup row.
func (c *Client) InsertSignup(ctx context.Context, s Signup) error {
	if !c.enabled {
		return ErrNotConfigured
	}

	apiErr := &APIError{}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody([]Signup{s}).
		SetError(apiErr).
		Post("/" + c.table)
	if err != nil {
		c.log.Error("insert signup request failed", logger.Error(err))
		return fmt.Errorf("insert signup: %w", err)
	}

	if resp.StatusCode() == http.StatusConflict {
		return ErrConflict
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		c.log.Error("insert signup rejected",
			slog.Int("status", apiErr.StatusCode),
			slog.String("code", apiErr.Code),
			slog.String("message", apiErr.Message))
		return fmt.Errorf("insert signup: %w", apiErr)
	}

	c.log.Debug("signup stored", slog.String("id", s.ID.String()))
	return nil
}

// Ping checks the backend is reachable and accepts the key.
func (c *Client) Ping(ctx context.Context) error {
	if !c.enabled {
		return ErrNotConfigured
	}

	resp, err := c.http.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping backend: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("ping backend: %w", &APIError{StatusCode: resp.StatusCode()})
	}
	return nil
}
