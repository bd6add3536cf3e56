// Command birthdays mails the upcoming-birthday digest. It is meant to be run
// by an external scheduler (cron, k8s CronJob), once per period.
//
// Flags:
//
//	--period  daily, weekly or monthly (default: weekly)
//	--email   recipient; defaults to mail.birthday_recipient
//
// Exit codes: 0 = success (including an empty window), 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	alumnusrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/alumnus"
	"github.com/y0ngdev/the-bridge/internal/app"
	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/internal/domain"
	"github.com/y0ngdev/the-bridge/internal/service/notify"
)

func main() {
	period := flag.String("period", string(domain.BirthdayPeriodWeekly), "daily, weekly or monthly")
	email := flag.String("email", "", "recipient address (overrides mail.birthday_recipient)")
	flag.Usage = config.Usage(os.Stderr, flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	mailer, err := app.NewMailer(cfg.Mail, logger)
	if err != nil {
		logger.Error("create mailer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notify.NewService(logger, alumnusrepo.New(pool), mailer, cfg.Mail.BirthdayRecipient)

	res, err := svc.SendBirthdayDigest(ctx, domain.BirthdayPeriod(*period), *email)
	if err != nil {
		logger.Error("send birthday digest",
			slog.String("period", *period),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("birthday digest finished",
		slog.String("period", res.Period.String()),
		slog.Time("from", res.From),
		slog.Time("to", res.To),
		slog.Int("birthdays", len(res.Birthdays)),
		slog.Bool("sent", res.Sent),
	)
}
