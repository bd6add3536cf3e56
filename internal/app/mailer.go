package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/y0ngdev/the-bridge/internal/adapter/mail"
	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

// Mailer delivers a rendered message.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// NewMailer returns the mailer selected by cfg.Provider.
func NewMailer(cfg config.MailConfig, log *slog.Logger) (Mailer, error) {
	switch cfg.Provider {
	case config.MailProviderConsole:
		return mail.NewConsoleMailer(log, cfg.FromName), nil
	case config.MailProviderSendGrid:
		return mail.NewSendGridMailer(log, cfg.SendGridAPIKey, cfg.FromName, cfg.FromAddress), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
