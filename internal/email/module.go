package email

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/nigellippett2/nrml/internal/config"
)

// Module provides the email Sender.
var Module = fx.Module("email",
	fx.Provide(NewSender),
)

// NewSender uses Mailgun when configured and enabled, otherwise a no-op
// sender.
func NewSender(cfg *config.Config, log *slog.Logger) Sender {
	if cfg.Email.Enabled && cfg.Email.IsConfigured() {
		if s := NewMailgunSender(cfg.Email, log); s != nil {
			log.Info("using Mailgun sender",
				slog.String("domain", cfg.Email.MailgunDomain),
				slog.String("from", cfg.Email.FromEmail))
			return s
		}
	}

	log.Info("using no-op email sender (Mailgun not configured or email disabled)")
	return &noOpSender{log: log}
}
