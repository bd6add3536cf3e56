package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	alumnusrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/alumnus"
	auditrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/audit"
	commrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/communication"
	departmentrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/department"
	dismissalrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/dismissal"
	tenurerepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/tenure"
	userrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/user"
	authpkg "github.com/y0ngdev/the-bridge/internal/auth"
	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/internal/service/alumnus"
	authsvc "github.com/y0ngdev/the-bridge/internal/service/auth"
	"github.com/y0ngdev/the-bridge/internal/service/communication"
	"github.com/y0ngdev/the-bridge/internal/service/department"
	"github.com/y0ngdev/the-bridge/internal/service/duplicate"
	"github.com/y0ngdev/the-bridge/internal/service/tenure"
	"github.com/y0ngdev/the-bridge/internal/transport/dataloader"
	"github.com/y0ngdev/the-bridge/internal/transport/middleware"
	"github.com/y0ngdev/the-bridge/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	pool, err := postgres.NewPool(connectCtx, cfg.Database, logger)
	cancel()
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewHTTPHandler(cfg, pool, logger, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHTTPHandler builds the full HTTP stack on top of pool: repositories,
// services, REST handlers and the global middleware chain.
func NewHTTPHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	alumni := alumnusrepo.New(pool)
	audits := auditrepo.New(pool)
	comms := commrepo.New(pool)
	departments := departmentrepo.New(pool)
	dismissals := dismissalrepo.New(pool)
	tenures := tenurerepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	alumnusService := alumnus.NewService(logger, alumni, audits, txm)
	commService := communication.NewService(logger, comms, alumni)
	departmentService := department.NewService(logger, departments, audits, txm)
	tenureService := tenure.NewService(logger, tenures, audits, txm)
	duplicateService := duplicate.NewService(logger, duplicate.Config{
		FuzzyScanLimit:      cfg.Duplicates.FuzzyScanLimit,
		SimilarityThreshold: cfg.Duplicates.SimilarityThreshold,
		MinFuzzyNameLength:  cfg.Duplicates.MinFuzzyNameLength,
	}, alumni, dismissals, comms, audits, txm)

	mux := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        rest.NewAuthHandler(authService, logger),
		Alumni:      rest.NewAlumniHandler(alumnusService, commService, logger),
		Duplicates:  rest.NewDuplicatesHandler(duplicateService, logger),
		Departments: rest.NewDepartmentsHandler(departmentService, logger),
		Tenures:     rest.NewTenuresHandler(tenureService, logger),
	}, rest.RouterConfig{
		Authenticate: middleware.Auth(authService),
		LoginLimit:   limiter.Limit(cfg.RateLimit.LoginPerMinute),
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		dataloader.Middleware(&dataloader.Repos{Department: departments, Tenure: tenures}),
	)(mux)
}
