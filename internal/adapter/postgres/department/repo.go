// Package department implements the department repository using PostgreSQL.
package department

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	entity  = "department"
	columns = `id, code, name, school, created_at, updated_at`
)

// Repo provides department persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new department repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a department. A taken code yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanDepartment(q.QueryRow(ctx,
		`INSERT INTO departments (code, name, school) VALUES ($1, $2, $3)
		 RETURNING `+columns,
		d.Code, d.Name, d.School,
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	return created, nil
}

// Update overwrites code, name and school.
func (r *Repo) Update(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanDepartment(q.QueryRow(ctx,
		`UPDATE departments SET code = $2, name = $3, school = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+columns,
		d.ID, d.Code, d.Name, d.School,
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, d.ID)
	}
	return updated, nil
}

// Delete removes a department. Alumni referencing it keep a NULL department.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a department.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDepartment(q.QueryRow(ctx, `SELECT `+columns+` FROM departments WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// GetByIDs returns the departments among ids. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM departments WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get departments by ids: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Department])
	if err != nil {
		return nil, fmt.Errorf("get departments by ids: %w", err)
	}
	return out, nil
}

// List returns all departments ordered by school, then name.
func (r *Repo) List(ctx context.Context) ([]domain.Department, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM departments ORDER BY school NULLS LAST, name, id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Department])
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return out, nil
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var d domain.Department
	if err := row.Scan(&d.ID, &d.Code, &d.Name, &d.School, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
