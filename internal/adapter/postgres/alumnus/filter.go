package alumnus

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f domain.AlumnusFilter) domain.AlumnusFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// filterPredicate builds the WHERE clause of the active listing. Tombstones
// are always excluded.
func filterPredicate(f domain.AlumnusFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"merged_into": nil}}

	if f.Search != nil {
		if s := strings.TrimSpace(*f.Search); s != "" {
			pattern := "%" + escapeLike(s) + "%"
			where = append(where, squirrel.Or{
				squirrel.ILike{"name": pattern},
				squirrel.ILike{"email": pattern},
				squirrel.Expr("EXISTS (SELECT 1 FROM unnest(phones) AS p WHERE p ILIKE ?)", pattern),
			})
		}
	}
	if f.DepartmentID != nil {
		where = append(where, squirrel.Eq{"department_id": *f.DepartmentID})
	}
	if f.TenureID != nil {
		where = append(where, squirrel.Eq{"tenure_id": *f.TenureID})
	}
	if f.Unit != nil {
		where = append(where, squirrel.Eq{"unit": *f.Unit})
	}
	if f.State != nil {
		where = append(where, squirrel.Eq{"state": *f.State})
	}
	if f.Gender != nil {
		where = append(where, squirrel.Eq{"gender": string(*f.Gender)})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
