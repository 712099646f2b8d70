// Package healthcheck defines the health report served at /api/health and
// a client that fetches it.
package healthcheck

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

	"github.com/nigellippett2/nrml/internal/logger"
)

// Check statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// ErrUnhealthy is returned when the service answers but reports itself
// unhealthy.
var ErrUnhealthy = errors.New("service reported unhealthy")

// Response is the health report.
type Response struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check is an individual health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether the overall status is healthy.
func (r *Response) Healthy() bool {
	return r.Status == StatusHealthy
}

// Client fetches health reports.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetJSONMarshaler(json.Marshal).
			SetJSONUnmarshaler(json.Unmarshal),
		log: log.With(logger.Scope("healthcheck")),
	}
}

// Check calls GET /api/health. A 503 with a decodable report returns the
// report together with ErrUnhealthy.
func (c *Client) Check(ctx context.Context) (*Response, error) {
	var out Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&out).
		Get("/api/health")
	if err != nil {
		c.log.Error("health check request failed", logger.Error(err))
		return nil, fmt.Errorf("health check: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &out, nil
	case http.StatusServiceUnavailable:
		if out.Status == "" {
			err := fmt.Errorf("health check: unexpected status %d", resp.StatusCode())
			c.log.Error("health check failed", logger.Error(err))
			return nil, err
		}
		c.log.Warn("service unhealthy", slog.Any("checks", out.Checks))
		return &out, ErrUnhealthy
	default:
		err := fmt.Errorf("health check: unexpected status %d", resp.StatusCode())
		c.log.Error("health check failed", logger.Error(err))
		return nil, err
	}
}
