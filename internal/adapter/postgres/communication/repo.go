// Package communication implements the communication log repository.
package communication

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	entity  = "communication_log"
	columns = `id, alumnus_id, user_id, type, outcome, notes, occurred_at, created_at`
)

// Repo provides communication log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new communication log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a log entry.
func (r *Repo) Create(ctx context.Context, l *domain.CommunicationLog) (*domain.CommunicationLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLog(q.QueryRow(ctx,
		`INSERT INTO communication_logs (alumnus_id, user_id, type, outcome, notes, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+columns,
		l.AlumnusID, l.UserID, string(l.Type), string(l.Outcome), l.Notes, l.OccurredAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, l.AlumnusID)
	}
	return created, nil
}

// Delete removes a log entry.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM communication_logs WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ReassignAlumnus moves every log of from onto to and returns how many rows
// moved. Used when merging duplicate records.
func (r *Repo) ReassignAlumnus(ctx context.Context, from, to int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE communication_logs SET alumnus_id = $2 WHERE alumnus_id = $1`, from, to)
	if err != nil {
		return 0, postgres.MapError(err, entity, from)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a log entry.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.CommunicationLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx,
		`SELECT `+columns+` FROM communication_logs WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return l, nil
}

// ListByAlumnus returns the logs of an alumnus, newest first.
func (r *Repo) ListByAlumnus(ctx context.Context, alumnusID int64) ([]domain.CommunicationLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+columns+` FROM communication_logs
		 WHERE alumnus_id = $1
		 ORDER BY occurred_at DESC, id DESC`,
		alumnusID,
	)
	if err != nil {
		return nil, fmt.Errorf("list communication logs: %w", err)
	}
	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CommunicationLog, error) {
		l, err := scanLog(row)
		if err != nil {
			return domain.CommunicationLog{}, err
		}
		return *l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list communication logs: %w", err)
	}
	return logs, nil
}

func scanLog(row pgx.Row) (*domain.CommunicationLog, error) {
	var (
		l            domain.CommunicationLog
		typ, outcome string
	)
	if err := row.Scan(&l.ID, &l.AlumnusID, &l.UserID, &typ, &outcome, &l.Notes, &l.OccurredAt, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Type = domain.CommunicationType(typ)
	l.Outcome = domain.CommunicationOutcome(outcome)
	return &l, nil
}
