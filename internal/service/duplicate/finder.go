package duplicate

import (
	"github.com/y0ngdev/the-bridge/internal/domain"
)

// Default tuning used when a Config field is unset.
const (
	DefaultFuzzyScanLimit      = 200
	DefaultSimilarityThreshold = 85.0
	DefaultMinFuzzyNameLength  = 5
)

// Config tunes the duplicate scan.
type Config struct {
	// FuzzyScanLimit caps how many active records, ordered by name, enter
	// the quadratic name/phone comparison.
	FuzzyScanLimit int
	// SimilarityThreshold is the minimum similar-text percentage for two
	// names to match.
	SimilarityThreshold float64
	// MinFuzzyNameLength is the minimum normalized name length in bytes for
	// the similarity check. Shorter names only match exactly.
	MinFuzzyNameLength int
}

func (c Config) withDefaults() Config {
	if c.FuzzyScanLimit <= 0 {
		c.FuzzyScanLimit = DefaultFuzzyScanLimit
	}
	if c.SimilarityThreshold == 0 {
		c.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if c.MinFuzzyNameLength == 0 {
		c.MinFuzzyNameLength = DefaultMinFuzzyNameLength
	}
	return c
}

// Finder detects duplicate pairs in an in-memory snapshot. It has no state
// between calls.
type Finder struct {
	cfg Config
}

// NewFinder creates a Finder. Zero fields of cfg take the defaults.
func NewFinder(cfg Config) *Finder {
	return &Finder{cfg: cfg.withDefaults()}
}

// Find returns every duplicate pair in the snapshot.
//
// emailCandidates are grouped by exact email. fuzzyCandidates are compared
// pairwise in the given order, skipping pairs already emitted by the email
// pass. Tombstoned records are ignored in both passes. The result is
// deterministic for a fixed input order.
func (f *Finder) Find(emailCandidates, fuzzyCandidates []domain.Alumnus) []domain.DuplicatePair {
	seen := make(map[domain.PairKey]struct{})
	var pairs []domain.DuplicatePair

	emit := func(a, b domain.Alumnus, reason domain.MatchReason) {
		seen[domain.NewPairKey(a.ID, b.ID)] = struct{}{}
		pairs = append(pairs, domain.DuplicatePair{First: a, Second: b, Reason: reason})
	}

	// Pass 1: exact email.
	var order []string
	groups := make(map[string][]domain.Alumnus)
	for _, a := range emailCandidates {
		if a.IsMerged() || a.Email == nil || *a.Email == "" {
			continue
		}
		if _, ok := groups[*a.Email]; !ok {
			order = append(order, *a.Email)
		}
		groups[*a.Email] = append(groups[*a.Email], a)
	}
	for _, email := range order {
		group := groups[email]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if group[i].ID == group[j].ID {
					continue
				}
				if _, ok := seen[domain.NewPairKey(group[i].ID, group[j].ID)]; ok {
					continue
				}
				emit(group[i], group[j], domain.MatchEmail)
			}
		}
	}

	// Pass 2: names and phones over the bounded sample.
	sample := make([]candidate, 0, len(fuzzyCandidates))
	for _, a := range fuzzyCandidates {
		if a.IsMerged() {
			continue
		}
		sample = append(sample, candidate{
			Alumnus: a,
			name:    domain.NormalizeName(a.Name),
			digits:  domain.PhoneDigitSet(a.Phones),
		})
	}
	for i := 0; i < len(sample); i++ {
		for j := i + 1; j < len(sample); j++ {
			a, b := sample[i], sample[j]
			if a.ID == b.ID {
				continue
			}
			if _, ok := seen[domain.NewPairKey(a.ID, b.ID)]; ok {
				continue
			}
			if reason, ok := f.match(a, b); ok {
				emit(a.Alumnus, b.Alumnus, reason)
			}
		}
	}

	return pairs
}

type candidate struct {
	domain.Alumnus
	name   string
	digits map[string]struct{}
}

func (f *Finder) match(a, b candidate) (domain.MatchReason, bool) {
	if a.name != "" && a.name == b.name {
		return domain.MatchName, true
	}
	if len(a.name) >= f.cfg.MinFuzzyNameLength && len(b.name) >= f.cfg.MinFuzzyNameLength &&
		domain.SimilarityPercent(a.name, b.name) >= f.cfg.SimilarityThreshold {
		return domain.MatchName, true
	}
	for d := range a.digits {
		if _, ok := b.digits[d]; ok {
			return domain.MatchPhone, true
		}
	}
	return "", false
}
