// Package alumnus implements the alumni directory repository on PostgreSQL.
package alumnus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/y0ngdev/the-bridge/internal/adapter/postgres"
	"github.com/y0ngdev/the-bridge/internal/domain"
)

const entity = "alumnus"

var columns = []string{
	"id", "name", "email", "phones", "department_id", "tenure_id", "gender",
	"birth_date", "is_staff", "unit", "state", "address", "past_exco_office",
	"current_exco_office", "merged_into", "created_at", "updated_at",
}

// Repo provides alumni persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alumnus repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new alumnus and returns the stored row.
func (r *Repo) Create(ctx context.Context, a *domain.Alumnus) (*domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Insert("alumni").
		Columns(
			"name", "email", "phones", "department_id", "tenure_id", "gender",
			"birth_date", "is_staff", "unit", "state", "address",
			"past_exco_office", "current_exco_office",
		).
		Values(
			a.Name, a.Email, phonesOrEmpty(a.Phones), a.DepartmentID, a.TenureID, genderPtr(a.Gender),
			a.BirthDate, a.IsStaff, a.Unit, a.State, a.Address,
			a.PastExcoOffice, a.CurrentExcoOffice,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert alumnus: %w", err)
	}

	created, err := scanAlumnus(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, 0)
	}
	return created, nil
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id int64, params domain.AlumnusUpdateParams) (*domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Update("alumni").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Email != nil {
		b = b.Set("email", emptyToNil(*params.Email))
	}
	if params.Phones != nil {
		b = b.Set("phones", params.Phones)
	}
	if params.DepartmentID != nil {
		b = b.Set("department_id", *params.DepartmentID)
	}
	if params.TenureID != nil {
		b = b.Set("tenure_id", *params.TenureID)
	}
	if params.Gender != nil {
		b = b.Set("gender", string(*params.Gender))
	}
	if params.BirthDate != nil {
		b = b.Set("birth_date", *params.BirthDate)
	}
	if params.IsStaff != nil {
		b = b.Set("is_staff", *params.IsStaff)
	}
	if params.Unit != nil {
		b = b.Set("unit", emptyToNil(*params.Unit))
	}
	if params.State != nil {
		b = b.Set("state", emptyToNil(*params.State))
	}
	if params.Address != nil {
		b = b.Set("address", emptyToNil(*params.Address))
	}
	if params.PastExcoOffice != nil {
		b = b.Set("past_exco_office", emptyToNil(*params.PastExcoOffice))
	}
	if params.CurrentExcoOffice != nil {
		b = b.Set("current_exco_office", emptyToNil(*params.CurrentExcoOffice))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update alumnus: %w", err)
	}

	updated, err := scanAlumnus(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return updated, nil
}

// Delete removes an alumnus. Records that other records were merged into
// cannot be deleted and return domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM alumni WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%s %d: referenced by merged records: %w", entity, id, domain.ErrConflict)
		}
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// UpdatePhones replaces the phone list of id.
func (r *Repo) UpdatePhones(ctx context.Context, id int64, phones []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE alumni SET phones = $2, updated_at = now() WHERE id = $1`,
		id, phonesOrEmpty(phones),
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// MarkMerged tombstones id by pointing merged_into at primaryID. Only an
// active record can be tombstoned.
func (r *Repo) MarkMerged(ctx context.Context, id, primaryID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE alumni SET merged_into = $2, updated_at = now()
		 WHERE id = $1 AND merged_into IS NULL`,
		id, primaryID,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyMerged)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an alumnus, tombstones included.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAlumnus(q.QueryRow(ctx,
		`SELECT `+joinColumns()+` FROM alumni WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return a, nil
}

// GetForUpdate loads the given alumni and locks their rows until the
// surrounding transaction ends. Rows are locked in ascending id order.
// Missing ids yield domain.ErrNotFound.
func (r *Repo) GetForUpdate(ctx context.Context, ids ...int64) (map[int64]*domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+joinColumns()+` FROM alumni WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, fmt.Errorf("lock alumni: %w", err)
	}
	list, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("lock alumni: %w", err)
	}

	out := make(map[int64]*domain.Alumnus, len(list))
	for i := range list {
		out[list[i].ID] = &list[i]
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
		}
	}
	return out, nil
}

// ExistingIDs reports which of ids exist, tombstones included.
func (r *Repo) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id FROM alumni WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing alumni ids: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("existing alumni ids: %w", err)
	}

	out := make(map[int64]bool, len(found))
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}

// List returns one page of active alumni matching filter, ordered by name,
// together with the total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.AlumnusFilter) ([]domain.Alumnus, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	filter = normalizeFilter(filter)
	where := filterPredicate(filter)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("alumni").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count alumni: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count alumni: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns...).From("alumni").Where(where).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list alumni: %w", err)
	}
	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list alumni: %w", err)
	}
	list, err := collect(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list alumni: %w", err)
	}
	return list, total, nil
}

const listSharedEmailSQL = `
SELECT %s FROM alumni
WHERE merged_into IS NULL
  AND email IN (
      SELECT email FROM alumni
      WHERE merged_into IS NULL AND email IS NOT NULL AND email <> ''
      GROUP BY email
      HAVING count(*) > 1
  )
ORDER BY email, id`

// ListWithSharedEmail returns active alumni whose exact email is shared with
// at least one other active alumnus, ordered by email then id.
func (r *Repo) ListWithSharedEmail(ctx context.Context) ([]domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, fmt.Sprintf(listSharedEmailSQL, joinColumns()))
	if err != nil {
		return nil, fmt.Errorf("list shared-email alumni: %w", err)
	}
	list, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("list shared-email alumni: %w", err)
	}
	return list, nil
}

// ListActiveByName returns up to limit active alumni ordered by name then id.
func (r *Repo) ListActiveByName(ctx context.Context, limit int) ([]domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+joinColumns()+` FROM alumni
		 WHERE merged_into IS NULL
		 ORDER BY name, id
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list alumni by name: %w", err)
	}
	list, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("list alumni by name: %w", err)
	}
	return list, nil
}

// ListBirthdaysInMonths returns active alumni born in any of months.
func (r *Repo) ListBirthdaysInMonths(ctx context.Context, months []time.Month) ([]domain.Alumnus, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ms := make([]int32, len(months))
	for i, m := range months {
		ms[i] = int32(m)
	}

	rows, err := q.Query(ctx,
		`SELECT `+joinColumns()+` FROM alumni
		 WHERE merged_into IS NULL
		   AND birth_date IS NOT NULL
		   AND EXTRACT(MONTH FROM birth_date)::int = ANY($1)
		 ORDER BY EXTRACT(MONTH FROM birth_date), EXTRACT(DAY FROM birth_date), name`, ms)
	if err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}
	list, err := collect(rows)
	if err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}
	return list, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanAlumnus(row scanner) (*domain.Alumnus, error) {
	var (
		a      domain.Alumnus
		gender *string
	)
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phones, &a.DepartmentID, &a.TenureID, &gender,
		&a.BirthDate, &a.IsStaff, &a.Unit, &a.State, &a.Address, &a.PastExcoOffice,
		&a.CurrentExcoOffice, &a.MergedInto, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if gender != nil {
		g := domain.Gender(*gender)
		a.Gender = &g
	}
	if a.Phones == nil {
		a.Phones = []string{}
	}
	return &a, nil
}

func collect(rows pgx.Rows) ([]domain.Alumnus, error) {
	defer rows.Close()

	var out []domain.Alumnus
	for rows.Next() {
		a, err := scanAlumnus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func phonesOrEmpty(phones []string) []string {
	if phones == nil {
		return []string{}
	}
	return phones
}

func genderPtr(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
