package domain

import "time"

// PairKey is an unordered pair of alumnus ids stored as (min, max).
type PairKey struct {
	Low  int64
	High int64
}

// NewPairKey canonicalizes a and b so that NewPairKey(a, b) == NewPairKey(b, a).
func NewPairKey(a, b int64) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

// DismissedPair is a recorded decision that two alumni are not duplicates.
type DismissedPair struct {
	ID            int64
	AlumnusIDLow  int64
	AlumnusIDHigh int64
	DismissedBy   *int64
	CreatedAt     time.Time
}

// Key returns the canonical pair key.
func (d DismissedPair) Key() PairKey {
	return PairKey{Low: d.AlumnusIDLow, High: d.AlumnusIDHigh}
}

// DuplicatePair is a candidate pair produced by a duplicate scan. It is
// never persisted.
type DuplicatePair struct {
	First  Alumnus
	Second Alumnus
	Reason MatchReason
}

// Key returns the canonical pair key.
func (p DuplicatePair) Key() PairKey {
	return NewPairKey(p.First.ID, p.Second.ID)
}

// GroupPairs expands ids into every unordered pair among the distinct ids,
// in first-seen order.
func GroupPairs(ids []int64) []PairKey {
	distinct := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	pairs := make([]PairKey, 0, len(distinct)*(len(distinct)-1)/2)
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			pairs = append(pairs, NewPairKey(distinct[i], distinct[j]))
		}
	}
	return pairs
}

// MergePlan is the validated outcome of pairing two records for a merge.
type MergePlan struct {
	Primary   *Alumnus
	Secondary *Alumnus
	Phones    []string
}

// PlanMerge validates a merge of a and b into primaryID and computes the
// primary's resulting phone list. Errors are checked in order:
// ErrInvalidPrimary, ErrAlreadyMerged, ErrSelfMerge.
func PlanMerge(a, b *Alumnus, primaryID int64) (MergePlan, error) {
	if primaryID != a.ID && primaryID != b.ID {
		return MergePlan{}, ErrInvalidPrimary
	}
	if a.IsMerged() || b.IsMerged() {
		return MergePlan{}, ErrAlreadyMerged
	}
	if a.ID == b.ID {
		return MergePlan{}, ErrSelfMerge
	}

	primary, secondary := a, b
	if primaryID == b.ID {
		primary, secondary = b, a
	}

	return MergePlan{
		Primary:   primary,
		Secondary: secondary,
		Phones:    UnionPhones(primary.Phones, secondary.Phones),
	}, nil
}

// UnionPhones appends the entries of secondary missing from primary.
// Entries compare verbatim; formatting variants are kept as distinct.
func UnionPhones(primary, secondary []string) []string {
	out := make([]string, 0, len(primary)+len(secondary))
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	for _, list := range [][]string{primary, secondary} {
		for _, p := range list {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
