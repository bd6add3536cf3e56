// Package dataloader provides per-request loaders that batch the department
// and tenure lookups behind alumni responses into one query each.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type departmentRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Department, error)
}

type tenureRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tenure, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Department departmentRepo
	Tenure     tenureRepo
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	DepartmentByID *dataloader.Loader[int64, *domain.Department]
	TenureByID     *dataloader.Loader[int64, *domain.Tenure]
}

// NewLoaders creates loaders backed by repos. Results are cached for the
// lifetime of the Loaders, so create one set per request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		DepartmentByID: newLoader(newDepartmentsBatchFn(repos.Department)),
		TenureByID:     newLoader(newTenuresBatchFn(repos.Tenure)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores l in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's Loaders, or nil when none were
// installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
