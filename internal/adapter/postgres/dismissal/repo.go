// Package dismissal stores alumnus pairs that staff marked as "not a
// duplicate". Pairs are kept in canonical (low, high) order.
package dismissal

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

const entity = "dismissed_duplicate"

// Repo provides dismissed pair persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dismissal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Dismiss records key as not-a-duplicate. Dismissing an already dismissed
// pair is a no-op that returns the existing row.
func (r *Repo) Dismiss(ctx context.Context, key domain.PairKey, by *int64) (domain.DismissedPair, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.DismissedPair
	err := q.QueryRow(ctx,
		`INSERT INTO dismissed_duplicates (alumnus_id_low, alumnus_id_high, dismissed_by)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (alumnus_id_low, alumnus_id_high) DO NOTHING
		 RETURNING id, alumnus_id_low, alumnus_id_high, dismissed_by, created_at`,
		key.Low, key.High, by,
	).Scan(&p.ID, &p.AlumnusIDLow, &p.AlumnusIDHigh, &p.DismissedBy, &p.CreatedAt)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.DismissedPair{}, postgres.MapError(err, entity, key.Low)
	}

	// Conflict: the pair was dismissed before.
	err = q.QueryRow(ctx,
		`SELECT id, alumnus_id_low, alumnus_id_high, dismissed_by, created_at
		 FROM dismissed_duplicates
		 WHERE alumnus_id_low = $1 AND alumnus_id_high = $2`,
		key.Low, key.High,
	).Scan(&p.ID, &p.AlumnusIDLow, &p.AlumnusIDHigh, &p.DismissedBy, &p.CreatedAt)
	if err != nil {
		return domain.DismissedPair{}, postgres.MapError(err, entity, key.Low)
	}
	return p, nil
}

// IsDismissed reports whether key has been dismissed.
func (r *Repo) IsDismissed(ctx context.Context, key domain.PairKey) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM dismissed_duplicates
		     WHERE alumnus_id_low = $1 AND alumnus_id_high = $2
		 )`,
		key.Low, key.High,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check dismissed pair: %w", err)
	}
	return exists, nil
}

// ListAmong returns every dismissed pair whose both members are in ids.
func (r *Repo) ListAmong(ctx context.Context, ids []int64) (map[domain.PairKey]struct{}, error) {
	out := make(map[domain.PairKey]struct{})
	if len(ids) < 2 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx,
		`SELECT alumnus_id_low, alumnus_id_high
		 FROM dismissed_duplicates
		 WHERE alumnus_id_low = ANY($1) AND alumnus_id_high = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list dismissed pairs: %w", err)
	}
	keys, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PairKey, error) {
		var k domain.PairKey
		err := row.Scan(&k.Low, &k.High)
		return k, err
	})
	if err != nil {
		return nil, fmt.Errorf("list dismissed pairs: %w", err)
	}

	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out, nil
}
