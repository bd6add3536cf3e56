// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	entity  = "audit_record"
	columns = `id, user_id, entity_type, entity_id, action, changes, created_at`
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	created, err := scanRecord(q.QueryRow(ctx,
		`INSERT INTO audit_log (user_id, entity_type, entity_id, action, changes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+columns,
		record.UserID, string(record.EntityType), record.EntityID, string(record.Action), changesJSON,
	))
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, entity, record.EntityID)
	}
	return created, nil
}

// Log creates an audit record without returning it.
// Satisfies the auditLogger interface of every service.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, newest
// first, limited to limit records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+columns+` FROM audit_log
		 WHERE entity_type = $1 AND entity_id = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3`,
		string(entityType), entityID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec                domain.AuditRecord
		entityType, action string
		changes            []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	rec.Changes = make(map[string]any)
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %d unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
