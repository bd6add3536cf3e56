package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

func newDepartmentsBatchFn(repo departmentRepo) dataloader.BatchFunc[int64, *domain.Department] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Department] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Department](len(keys), err)
		}

		byID := make(map[int64]*domain.Department, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

func newTenuresBatchFn(repo tenureRepo) dataloader.BatchFunc[int64, *domain.Tenure] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Tenure] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Tenure](len(keys), err)
		}

		byID := make(map[int64]*domain.Tenure, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults puts found values back in key order. Missing keys resolve to
// the zero value without an error.
func mapResults[V any](keys []int64, found map[int64]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: found[key]}
	}
	return results
}
