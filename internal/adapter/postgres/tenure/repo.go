// Package tenure implements the tenure (graduating class) repository.
package tenure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	entity  = "tenure"
	columns = `id, name, year, is_active, start_date, end_date, created_at, updated_at`

	singleActiveIndex = "tenures_single_active_idx"
)

// Repo provides tenure persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tenure repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a tenure. Inserting a second active tenure yields
// domain.ErrConflict; callers deactivate the others first.
func (r *Repo) Create(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTenure(q.QueryRow(ctx,
		`INSERT INTO tenures (name, year, is_active, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+columns,
		t.Name, t.Year, t.IsActive, t.StartDate, t.EndDate,
	))
	if err != nil {
		return nil, mapError(err, 0)
	}
	return created, nil
}

// Update overwrites every mutable column of t.
func (r *Repo) Update(ctx context.Context, t *domain.Tenure) (*domain.Tenure, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTenure(q.QueryRow(ctx,
		`UPDATE tenures
		 SET name = $2, year = $3, is_active = $4, start_date = $5, end_date = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+columns,
		t.ID, t.Name, t.Year, t.IsActive, t.StartDate, t.EndDate,
	))
	if err != nil {
		return nil, mapError(err, t.ID)
	}
	return updated, nil
}

// DeactivateAllExcept clears is_active on every tenure other than keepID.
// Pass 0 to deactivate all.
func (r *Repo) DeactivateAllExcept(ctx context.Context, keepID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx,
		`UPDATE tenures SET is_active = false, updated_at = now()
		 WHERE is_active AND id <> $1`,
		keepID,
	); err != nil {
		return fmt.Errorf("deactivate tenures: %w", err)
	}
	return nil
}

// Delete removes a tenure. Alumni referencing it keep a NULL tenure.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM tenures WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tenure.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tenure, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTenure(q.QueryRow(ctx, `SELECT `+columns+` FROM tenures WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

// GetActive returns the active tenure or domain.ErrNotFound.
func (r *Repo) GetActive(ctx context.Context) (*domain.Tenure, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTenure(q.QueryRow(ctx, `SELECT `+columns+` FROM tenures WHERE is_active`))
	if err != nil {
		return nil, postgres.MapError(err, "active "+entity, 0)
	}
	return t, nil
}

// GetByIDs returns the tenures among ids. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tenure, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM tenures WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get tenures by ids: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Tenure])
	if err != nil {
		return nil, fmt.Errorf("get tenures by ids: %w", err)
	}
	return out, nil
}

// List returns all tenures, most recent year first.
func (r *Repo) List(ctx context.Context) ([]domain.Tenure, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM tenures ORDER BY year DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tenures: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Tenure])
	if err != nil {
		return nil, fmt.Errorf("list tenures: %w", err)
	}
	return out, nil
}

func scanTenure(row pgx.Row) (*domain.Tenure, error) {
	var t domain.Tenure
	err := row.Scan(&t.ID, &t.Name, &t.Year, &t.IsActive, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapError(err error, id int64) error {
	if postgres.IsUniqueViolation(err, singleActiveIndex) {
		return fmt.Errorf("%s %d: another tenure is active: %w", entity, id, domain.ErrConflict)
	}
	return postgres.MapError(err, entity, id)
}
