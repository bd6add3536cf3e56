package duplicate

import (
	"sort"

	"github.com/y0ngdev/the-bridge/internal/domain"
)

// Clusters groups pairs into connected components: two records land in the
// same cluster when a chain of pairs links them. Members of a cluster are
// ordered by id, clusters by their smallest id.
func Clusters(pairs []domain.DuplicatePair) [][]domain.Alumnus {
	parent := make(map[int64]int64)
	records := make(map[int64]domain.Alumnus)

	var find func(id int64) int64
	find = func(id int64) int64 {
		for parent[id] != id {
			parent[id] = parent[parent[id]]
			id = parent[id]
		}
		return id
	}
	union := func(a, b int64) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if ra < rb {
			parent[rb] = ra
		} else {
			parent[ra] = rb
		}
	}

	for _, p := range pairs {
		for _, a := range []domain.Alumnus{p.First, p.Second} {
			if _, ok := parent[a.ID]; !ok {
				parent[a.ID] = a.ID
				records[a.ID] = a
			}
		}
		union(p.First.ID, p.Second.ID)
	}

	byRoot := make(map[int64][]domain.Alumnus)
	for id, a := range records {
		root := find(id)
		byRoot[root] = append(byRoot[root], a)
	}

	out := make([][]domain.Alumnus, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].ID < out[j][0].ID })
	return out
}
