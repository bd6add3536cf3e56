// Package testhelper provides a disposable PostgreSQL for repository and
// end-to-end tests, plus seed helpers for the alumni schema.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/y0ngdev/the-bridge/migrations"
)

const (
	pgImage      = "postgres:16-alpine"
	pgUser       = "bridge"
	pgPassword   = "bridge"
	adminDB      = "postgres"
	templateName = "bridge_template"
)

// cluster is one container holding the migrated template database.
type cluster struct {
	host  string
	port  string
	admin *pgxpool.Pool
}

var (
	clusterOnce sync.Once
	shared      *cluster
	clusterErr  error
	dbSeq       atomic.Int64

	// CREATE DATABASE ... TEMPLATE fails if the template has other sessions,
	// so clones are taken one at a time.
	cloneMu sync.Mutex
)

func (c *cluster) dsn(database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgUser, pgPassword),
		Host:     c.host + ":" + c.port,
		Path:     "/" + database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// SetupTestDB returns a pool on a fresh database cloned from the migrated
// template. Each test sees only its own rows. The database is dropped when
// the test finishes. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: database tests skipped in short mode")
	}

	clusterOnce.Do(func() {
		shared, clusterErr = startCluster()
	})
	if clusterErr != nil {
		t.Fatalf("testhelper: start postgres: %v", clusterErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := fmt.Sprintf("bridge_t%d", dbSeq.Add(1))
	if err := shared.clone(ctx, name); err != nil {
		t.Fatalf("testhelper: %v", err)
	}

	pool, err := pgxpool.New(ctx, shared.dsn(name))
	if err != nil {
		t.Fatalf("testhelper: open %s: %v", name, err)
	}

	t.Cleanup(func() {
		pool.Close()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		_, _ = shared.admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+pgx.Identifier{name}.Sanitize()+" WITH (FORCE)")
	})

	return pool
}

func (c *cluster) clone(ctx context.Context, name string) error {
	cloneMu.Lock()
	defer cloneMu.Unlock()

	stmt := fmt.Sprintf("CREATE DATABASE %s TEMPLATE %s",
		pgx.Identifier{name}.Sanitize(), pgx.Identifier{templateName}.Sanitize())
	if _, err := c.admin.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("clone template into %s: %w", name, err)
	}
	return nil
}

func startCluster() (*cluster, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       adminDB,
			},
			// The entrypoint restarts the server once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("run container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("mapped port: %w", err)
	}

	c := &cluster{host: host, port: port.Port()}

	c.admin, err = pgxpool.New(ctx, c.dsn(adminDB))
	if err != nil {
		return nil, fmt.Errorf("admin pool: %w", err)
	}
	if _, err := c.admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{templateName}.Sanitize()); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	if err := migrateTemplate(ctx, c.dsn(templateName)); err != nil {
		return nil, err
	}
	return c, nil
}

// migrateTemplate applies the embedded migrations and closes every
// connection so the template can be cloned.
func migrateTemplate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate template: %w", err)
	}
	return nil
}
