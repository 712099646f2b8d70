// Package signup handles the landing page signup form.
package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/nigellippett2/nrml/internal/apperror"
	"github.com/nigellippett2/nrml/internal/backend"
	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/email"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/metrics"
)

// Module provides the signup Service.
var Module = fx.Module("signup",
	fx.Provide(
		NewService,
		func(c *backend.Client) Store { return c },
	),
)

const maxEmailLength = 254

// User-facing messages.
const (
	MsgInvalidEmail = "Please enter a valid email address."
	MsgRateLimited  = "Too many attempts. Please wait a minute and try again."
	MsgUnavailable  = "Signups are temporarily unavailable. Please try again later."
	MsgThanks       = "Thanks! We'll be in touch soon."
)

// Store persists signups.
type Store interface {
	InsertSignup(ctx context.Context, s backend.Signup) error
}

// Request is one form submission.
type Request struct {
	Email    string
	Source   string
	ClientIP string
}

// Service validates, rate limits, stores and confirms signups.
type Service struct {
	store   Store
	sender  email.Sender
	limiter *RateLimiter
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a signup service.
func NewService(cfg *config.Config, store Store, sender email.Sender, log *slog.Logger) *Service {
	return &Service{
		store:   store,
		sender:  sender,
		limiter: NewRateLimiter(cfg.Signup.RatePerMinute, cfg.Signup.Burst),
		log:     log.With(logger.Scope("signup")),
		now:     time.Now,
	}
}

// Submit handles one signup. Returned errors are *apperror.Error values
// carrying a message fit to show the visitor.
func (s *Service) Submit(ctx context.Context, req Request) error {
	addr, err := NormalizeEmail(req.Email)
	if err != nil {
		metrics.Signups.WithLabelValues(metrics.SignupInvalid).Inc()
		return apperror.NewValidation(MsgInvalidEmail).WithInternal(err)
	}

	if !s.limiter.Allow(req.ClientIP) {
		metrics.Signups.WithLabelValues(metrics.SignupRateLimited).Inc()
		s.log.Warn("signup rate limited", slog.String("client_ip", req.ClientIP))
		return apperror.ErrTooManyRequests.WithMessage(MsgRateLimited)
	}

	source := req.Source
	if source == "" {
		source = "landing"
	}

	row := backend.Signup{
		ID:        uuid.New(),
		Email:     addr,
		Source:    source,
		CreatedAt: s.now().UTC(),
	}

	err = s.store.InsertSignup(ctx, row)
	switch {
	case err == nil:
	case errors.Is(err, backend.ErrConflict):
		// Already on the list; treat as success without a second email.
		metrics.Signups.WithLabelValues(metrics.SignupAccepted).Inc()
		s.log.Info("signup already recorded")
		return nil
	case errors.Is(err, backend.ErrNotConfigured):
		metrics.Signups.WithLabelValues(metrics.SignupUnavailable).Inc()
		return apperror.ErrUnavailable.WithMessage(MsgUnavailable).WithInternal(err)
	default:
		metrics.Signups.WithLabelValues(metrics.SignupFailed).Inc()
		s.log.Error("signup store failed", logger.Error(err))
		return apperror.ErrUnavailable.WithMessage(MsgUnavailable).WithInternal(err)
	}

	metrics.Signups.WithLabelValues(metrics.SignupAccepted).Inc()
	s.log.Info("signup recorded",
		slog.String("id", row.ID.String()),
		slog.String("source", source))

	s.sendConfirmation(ctx, addr)
	return nil
}

// sendConfirmation is best effort; the signup already succeeded.
func (s *Service) sendConfirmation(ctx context.Context, addr string) {
	opts, err := email.Confirmation(addr)
	if err != nil {
		s.log.Error("render confirmation email", logger.Error(err))
		return
	}

	_, err = s.sender.Send(ctx, opts)
	switch {
	case errors.Is(err, email.ErrDisabled):
		return
	case err != nil:
		metrics.ConfirmationEmails.WithLabelValues("false").Inc()
		s.log.Warn("confirmation email not sent", logger.Error(err))
		return
	}
	metrics.ConfirmationEmails.WithLabelValues("true").Inc()
}

// NormalizeEmail trims and lowercases a bare address and rejects anything
// that is not a single plain mailbox.
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("email is empty")
	}
	if len(raw) > maxEmailLength {
		return "", errors.New("email is too long")
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", err
	}
	if addr.Name != "" || addr.Address != raw {
		return "", errors.New("email must be a bare address")
	}

	at := strings.LastIndexByte(addr.Address, '@')
	if !strings.Contains(addr.Address[at+1:], ".") {
		return "", errors.New("email domain must be qualified")
	}
	return strings.ToLower(addr.Address), nil
}
