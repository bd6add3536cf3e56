// Package notify sends birthday digests to the alumni office.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

type alumnusRepo interface {
	ListBirthdaysInMonths(ctx context.Context, months []time.Month) ([]domain.Alumnus, error)
}

type mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// Service builds and sends birthday digests.
type Service struct {
	alumni           alumnusRepo
	mailer           mailer
	defaultRecipient string
	now              func() time.Time
	log              *slog.Logger
}

// NewService creates a notify Service. defaultRecipient is used when
// SendBirthdayDigest is called without a recipient.
func NewService(log *slog.Logger, alumni alumnusRepo, m mailer, defaultRecipient string) *Service {
	return &Service{
		alumni:           alumni,
		mailer:           m,
		defaultRecipient: defaultRecipient,
		now:              time.Now,
		log:              log.With("service", "notify"),
	}
}

// Birthday is one entry of a digest.
type Birthday struct {
	Alumnus domain.Alumnus
	Date    time.Time // the birthday inside the window
}

// Result reports what a digest run did.
type Result struct {
	Period    domain.BirthdayPeriod
	From, To  time.Time
	Birthdays []Birthday
	Sent      bool
}

// SendBirthdayDigest collects the birthdays falling in the current period
// and mails them to recipient. Nothing is sent for an empty window.
func (s *Service) SendBirthdayDigest(ctx context.Context, period domain.BirthdayPeriod, recipient string) (Result, error) {
	if !period.IsValid() {
		return Result{}, domain.NewValidationError("period", "must be daily, weekly or monthly")
	}
	if recipient == "" {
		recipient = s.defaultRecipient
	}
	to, err := mail.ParseAddress(recipient)
	if err != nil {
		return Result{}, domain.NewValidationError("recipient", "invalid email address")
	}

	from, until := Window(period, s.now())
	res := Result{Period: period, From: from, To: until}

	res.Birthdays, err = s.birthdaysBetween(ctx, from, until)
	if err != nil {
		return res, err
	}
	if len(res.Birthdays) == 0 {
		s.log.InfoContext(ctx, "no birthdays in window", slog.String("period", period.String()))
		return res, nil
	}

	text, err := renderDigest(digestData{
		Period:    period,
		From:      from,
		To:        until,
		Birthdays: res.Birthdays,
	})
	if err != nil {
		return res, fmt.Errorf("render digest: %w", err)
	}

	msg := domain.MailMessage{
		To:      []mail.Address{*to},
		Subject: subject(period, from),
		Text:    text,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return res, fmt.Errorf("send digest: %w", err)
	}
	res.Sent = true

	s.log.InfoContext(ctx, "birthday digest sent",
		slog.String("period", period.String()),
		slog.Int("count", len(res.Birthdays)),
	)
	return res, nil
}

func (s *Service) birthdaysBetween(ctx context.Context, from, until time.Time) ([]Birthday, error) {
	list, err := s.alumni.ListBirthdaysInMonths(ctx, monthsFor(from, until))
	if err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}

	var out []Birthday
	for i := range list {
		a := &list[i]
		for year := from.Year(); year <= until.Year(); year++ {
			day, ok := a.BirthdayInYear(year, from.Location())
			if !ok {
				break
			}
			if !day.Before(from) && !day.After(until) {
				out = append(out, Birthday{Alumnus: *a, Date: day})
				break
			}
		}
	}
	sortBirthdays(out)
	return out, nil
}

func subject(period domain.BirthdayPeriod, from time.Time) string {
	switch period {
	case domain.BirthdayPeriodWeekly:
		return "Birthdays this week (from " + from.Format("2 Jan") + ")"
	case domain.BirthdayPeriodMonthly:
		return "Birthdays in " + from.Format("January 2006")
	default:
		return "Birthdays today, " + from.Format("2 Jan 2006")
	}
}
