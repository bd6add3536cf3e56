// Package mail delivers outgoing email through SendGrid or, in
// development, the application log.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// ConsoleMailer writes messages to the log instead of sending them.
type ConsoleMailer struct {
	log        *slog.Logger
	subjPrefix string
}

// NewConsoleMailer creates a ConsoleMailer.
func NewConsoleMailer(log *slog.Logger, appName string) *ConsoleMailer {
	return &ConsoleMailer{
		log:        log.With("mailer", "console"),
		subjPrefix: subjectPrefix(appName),
	}
}

// Send logs msg at info level. Messages without recipients are skipped.
func (m *ConsoleMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	if !msg.HasRecipients() {
		return nil
	}
	to := make([]string, len(msg.To))
	for i, a := range msg.To {
		to[i] = a.String()
	}
	m.log.InfoContext(ctx, "mail",
		slog.String("to", strings.Join(to, ", ")),
		slog.String("subject", m.subjPrefix+msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}

func subjectPrefix(appName string) string {
	if appName == "" {
		return ""
	}
	return "[" + appName + "] "
}
