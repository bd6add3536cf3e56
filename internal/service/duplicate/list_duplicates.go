package duplicate

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// FindDuplicates scans the current active records and returns every
// duplicate pair, dismissed or not.
func (s *Service) FindDuplicates(ctx context.Context) ([]domain.DuplicatePair, error) {
	var emailCandidates, fuzzyCandidates []domain.Alumnus

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emailCandidates, err = s.alumni.ListWithSharedEmail(gctx)
		if err != nil {
			return fmt.Errorf("list shared emails: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fuzzyCandidates, err = s.alumni.ListActiveByName(gctx, s.fuzzyLimit)
		if err != nil {
			return fmt.Errorf("list fuzzy candidates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.finder.Find(emailCandidates, fuzzyCandidates), nil
}

// ListDuplicates returns the duplicate pairs that staff have not dismissed.
func (s *Service) ListDuplicates(ctx context.Context) ([]domain.DuplicatePair, error) {
	pairs, err := s.FindDuplicates(ctx)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return []domain.DuplicatePair{}, nil
	}

	ids := candidateIDs(pairs)
	dismissed, err := s.dismissals.ListAmong(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list dismissed pairs: %w", err)
	}

	out := make([]domain.DuplicatePair, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := dismissed[p.Key()]; ok {
			continue
		}
		out = append(out, p)
	}

	s.log.DebugContext(ctx, "duplicate scan",
		slog.Int("found", len(pairs)),
		slog.Int("dismissed", len(pairs)-len(out)),
	)

	return out, nil
}

func candidateIDs(pairs []domain.DuplicatePair) []int64 {
	seen := make(map[int64]struct{}, 2*len(pairs))
	ids := make([]int64, 0, 2*len(pairs))
	for _, p := range pairs {
		for _, id := range []int64{p.First.ID, p.Second.ID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
