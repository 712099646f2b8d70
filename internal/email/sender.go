// Package email sends the signup confirmation email.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/nigellippett2/nrml/internal/config"
	"github.com/nigellippett2/nrml/internal/logger"
)

// ErrDisabled is returned when sending is switched off.
var ErrDisabled = errors.New("email sending is disabled")

const sendTimeout = 30 * time.Second

// SendOptions describes one outgoing email.
type SendOptions struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// SendResult is the outcome of a successful send.
type SendResult struct {
	MessageID string
}

// Sender delivers email.
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

// MailgunSender sends emails via the Mailgun API.
type MailgunSender struct {
	cfg    config.EmailConfig
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunSender returns nil if Mailgun is not configured.
func NewMailgunSender(cfg config.EmailConfig, log *slog.Logger) *MailgunSender {
	if !cfg.IsConfigured() {
		return nil
	}

	return &MailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("email.mailgun")),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

// Send sends an email via Mailgun.
func (s *MailgunSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	if !s.cfg.Enabled {
		return nil, ErrDisabled
	}
	if err := s.validate(); err != nil {
		s.log.Error("email configuration invalid", logger.Error(err))
		return nil, err
	}

	to := opts.To
	if opts.ToName != "" {
		to = fmt.Sprintf("%s <%s>", opts.ToName, opts.To)
	}
	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)

	message := s.client.NewMessage(from, opts.Subject, opts.Text, to)
	if opts.HTML != "" {
		message.SetHtml(opts.HTML)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, messageID, err := s.client.Send(sendCtx, message)
	if err != nil {
		s.log.Error("failed to send email",
			slog.String("to", opts.To),
			logger.Error(err))
		return nil, fmt.Errorf("send email: %w", err)
	}

	s.log.Info("email sent",
		slog.String("to", opts.To),
		slog.String("message_id", messageID))
	return &SendResult{MessageID: messageID}, nil
}

func (s *MailgunSender) validate() error {
	if s.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if s.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	return nil
}

// noOpSender drops every message and reports ErrDisabled.
type noOpSender struct {
	log *slog.Logger
}

func (s *noOpSender) Send(_ context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Debug("email skipped, sending disabled", slog.String("subject", opts.Subject))
	return nil, ErrDisabled
}
