// Command useradd creates a staff account. It is used to bootstrap the first
// admin and to add accounts without going through the API.
//
// Usage:
//
//	useradd --email=jane@example.com --name="Jane Doe" --role=admin
//
// The password is read from --password or, if empty, from the
// BRIDGE_USER_PASSWORD environment variable. Database and auth settings come
// from the usual configuration.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	userrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/user"
	authpkg "github.com/y0ngdev/the-bridge/internal/auth"
	"github.com/y0ngdev/the-bridge/internal/app"
	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/internal/domain"
	authsvc "github.com/y0ngdev/the-bridge/internal/service/auth"
)

const passwordEnv = "BRIDGE_USER_PASSWORD"

func main() {
	email := flag.String("email", "", "login email of the new user")
	name := flag.String("name", "", "display name")
	role := flag.String("role", string(domain.UserRoleStaff), "staff or admin")
	password := flag.String("password", "", "password (defaults to $"+passwordEnv+")")
	flag.Usage = config.Usage(os.Stderr, flag.CommandLine)
	flag.Parse()

	if *email == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: useradd --email=user@example.com --name=\"Full Name\" [--role=admin]")
		os.Exit(1)
	}
	if *password == "" {
		*password = os.Getenv(passwordEnv)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	svc := authsvc.NewService(logger, userrepo.New(pool), jwtManager, cfg.Auth)

	user, err := svc.CreateUser(ctx, authsvc.CreateUserInput{
		Email:    *email,
		Name:     *name,
		Password: *password,
		Role:     domain.UserRole(*role),
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
			}
			os.Exit(1)
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			fmt.Fprintf(os.Stderr, "A user with email %q already exists.\n", *email)
			os.Exit(1)
		}
		logger.Error("create user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("User %q created with id %d and role %s.\n", user.Email, user.ID, user.Role)
}
