package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCode returns prefix joined with a short random suffix.
func UniqueCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uniqueSuffix())
}

// UniqueEmail returns a random address under example.com.
func UniqueEmail() string {
	return "alumnus-" + uniqueSuffix() + "@example.com"
}

// SeedUser inserts a staff user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		Email:        "staff-" + suffix + "@example.com",
		Name:         "Staff " + suffix,
		Role:         role,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotarealhashnotarealhashnot",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, name, role, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.Name, string(user.Role), user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedDepartment inserts a department with a unique code.
func SeedDepartment(t *testing.T, pool *pgxpool.Pool) domain.Department {
	t.Helper()

	school := "SEET"
	d := domain.Department{Code: UniqueCode("CSC"), Name: "Computer Science", School: &school}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO departments (code, name, school) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		d.Code, d.Name, d.School,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDepartment: %v", err)
	}
	return d
}

// SeedTenure inserts an inactive tenure for year.
func SeedTenure(t *testing.T, pool *pgxpool.Pool, year int) domain.Tenure {
	t.Helper()

	tn := domain.Tenure{Name: "Class of " + uniqueSuffix(), Year: year}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tenures (name, year) VALUES ($1, $2)
		 RETURNING id, is_active, created_at, updated_at`,
		tn.Name, tn.Year,
	).Scan(&tn.ID, &tn.IsActive, &tn.CreatedAt, &tn.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTenure: %v", err)
	}
	return tn
}

// AlumnusOption customizes SeedAlumnus.
type AlumnusOption func(a *domain.Alumnus)

// WithEmail sets the alumnus email.
func WithEmail(email string) AlumnusOption {
	return func(a *domain.Alumnus) { a.Email = &email }
}

// WithPhones sets the alumnus phones.
func WithPhones(phones ...string) AlumnusOption {
	return func(a *domain.Alumnus) { a.Phones = phones }
}

// WithBirthDate sets the alumnus birth date.
func WithBirthDate(d time.Time) AlumnusOption {
	return func(a *domain.Alumnus) { a.BirthDate = &d }
}

// WithTenure sets the alumnus tenure.
func WithTenure(id int64) AlumnusOption {
	return func(a *domain.Alumnus) { a.TenureID = &id }
}

// SeedAlumnus inserts an active alumnus named name.
func SeedAlumnus(t *testing.T, pool *pgxpool.Pool, name string, opts ...AlumnusOption) domain.Alumnus {
	t.Helper()

	a := domain.Alumnus{Name: name, Phones: []string{}}
	for _, opt := range opts {
		opt(&a)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO alumni (name, email, phones, tenure_id, birth_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.Phones, a.TenureID, a.BirthDate,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAlumnus: %v", err)
	}
	return a
}

// MarkMerged tombstones id into target directly.
func MarkMerged(t *testing.T, pool *pgxpool.Pool, id, target int64) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`UPDATE alumni SET merged_into = $2 WHERE id = $1`, id, target,
	); err != nil {
		t.Fatalf("testhelper: MarkMerged: %v", err)
	}
}

// SeedCommunicationLog inserts a successful call logged against alumnusID.
func SeedCommunicationLog(t *testing.T, pool *pgxpool.Pool, alumnusID int64) domain.CommunicationLog {
	t.Helper()

	l := domain.CommunicationLog{
		AlumnusID:  alumnusID,
		Type:       domain.CommunicationCall,
		Outcome:    domain.OutcomeSuccessful,
		OccurredAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO communication_logs (alumnus_id, type, outcome, occurred_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		l.AlumnusID, string(l.Type), string(l.Outcome), l.OccurredAt,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCommunicationLog: %v", err)
	}
	return l
}
