package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

// SendGridMailer sends messages through the SendGrid v3 API.
type SendGridMailer struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
	log        *slog.Logger

	// do performs the HTTP request; replaced in tests.
	do func(ctx context.Context, req rest.Request) (*rest.Response, error)
}

// NewSendGridMailer creates a SendGridMailer sending as fromName <fromAddr>.
func NewSendGridMailer(log *slog.Logger, key, fromName, fromAddr string) *SendGridMailer {
	return &SendGridMailer{
		key:        key,
		host:       sendGridHost,
		from:       sgmail.NewEmail(fromName, fromAddr),
		subjPrefix: subjectPrefix(fromName),
		log:        log.With("mailer", "sendgrid"),
		do:         sendgrid.MakeRequestRetryWithContext,
	}
}

// Send delivers msg. A response status of 400 or above is an error.
func (m *SendGridMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	if !msg.HasRecipients() {
		return nil
	}

	req := sendgrid.GetRequest(m.key, sendGridEndpoint, m.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(msg))

	res, err := m.do(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}

	m.log.InfoContext(ctx, "mail sent",
		slog.Int("recipients", len(msg.To)),
		slog.Int("status", res.StatusCode),
	)
	return nil
}

func (m *SendGridMailer) prepare(msg domain.MailMessage) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail(to.Name, to.Address))
	}

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.Text))
	return v3
}
