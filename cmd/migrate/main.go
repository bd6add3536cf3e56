// Command migrate applies or inspects the database schema migrations that
// are embedded in the binary.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is "up". The connection string comes from
// DATABASE_DSN like the server's.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/y0ngdev/the-bridge/internal/app"
	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/migrations"
)

func main() {
	flag.Usage = config.Usage(os.Stderr, flag.CommandLine)
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, command, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS,
		goose.WithSlog(logger.With("component", "goose")),
	)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration))
		}
		if len(results) == 0 {
			logger.Info("schema is up to date")
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			applied := "-"
			if st.State == goose.StateApplied {
				applied = st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-8s  %s\n", st.Source.Version, st.State, applied)
		}
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
	return nil
}
