//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/y0ngdev/the-bridge/internal/adapter/postgres/testhelper"
	userrepo "github.com/y0ngdev/the-bridge/internal/adapter/postgres/user"
	authpkg "github.com/y0ngdev/the-bridge/internal/auth"
	"github.com/y0ngdev/the-bridge/internal/app"
	"github.com/y0ngdev/the-bridge/internal/config"
	"github.com/y0ngdev/the-bridge/internal/domain"
	authsvc "github.com/y0ngdev/the-bridge/internal/service/auth"
	"github.com/y0ngdev/the-bridge/internal/transport/middleware"
)

const testPassword = "correct-horse-battery"

// testServer wraps the full HTTP stack on its own database.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	auth   *authsvc.Service
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-secret-that-is-long-enough-for-hmac",
			JWTIssuer:      "the-bridge-e2e",
			AccessTokenTTL: time.Hour,
			BcryptCost:     bcrypt.MinCost,
		},
		Duplicates: config.DuplicatesConfig{
			FuzzyScanLimit:      200,
			SimilarityThreshold: 85,
			MinFuzzyNameLength:  5,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		},
		RateLimit: config.RateLimitConfig{LoginPerMinute: 5},
	}
}

// setupTestServer serves app.NewHTTPHandler from httptest against a fresh
// database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHTTPHandler(cfg, pool, logger, limiter))
	t.Cleanup(srv.Close)

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		auth:   authsvc.NewService(logger, userrepo.New(pool), jwtManager, cfg.Auth),
	}
}

// createUser adds an account the way the useradd command does.
func (ts *testServer) createUser(t *testing.T, role domain.UserRole) *domain.User {
	t.Helper()

	u, err := ts.auth.CreateUser(context.Background(), authsvc.CreateUserInput{
		Email:    testhelper.UniqueEmail(),
		Name:     "E2E " + string(role),
		Password: testPassword,
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

// login creates a user with role and returns a bearer token obtained through
// the login endpoint.
func (ts *testServer) login(t *testing.T, role domain.UserRole) string {
	t.Helper()

	u := ts.createUser(t, role)
	status, body := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    u.Email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, status, "login: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in %v", body)
	return token
}

// do sends a JSON request and decodes a JSON object response. A 204 yields
// a nil map.
func (ts *testServer) do(t *testing.T, method, path, token string, payload any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), "%s %s", method, path)
	return resp.StatusCode, body
}

// createAlumnus posts payload and returns the new id.
func (ts *testServer) createAlumnus(t *testing.T, token string, payload map[string]any) int64 {
	t.Helper()

	status, body := ts.do(t, http.MethodPost, "/api/v1/alumni", token, payload)
	require.Equal(t, http.StatusCreated, status, "create alumnus: %v", body)
	return idOf(t, body)
}

func idOf(t *testing.T, obj map[string]any) int64 {
	t.Helper()
	id, ok := obj["id"].(float64)
	require.True(t, ok, "expected numeric id in %v", obj)
	return int64(id)
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error object in %v", body)
	code, _ := e["code"].(string)
	return code
}

func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array in %v", body)
	out := make([]map[string]any, len(raw))
	for i, v := range raw {
		out[i], ok = v.(map[string]any)
		require.True(t, ok)
	}
	return out
}

func alumnusPath(id int64, suffix string) string {
	return fmt.Sprintf("/api/v1/alumni/%d%s", id, suffix)
}
