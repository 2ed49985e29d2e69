package reconcile

import (
	"fmt"
	"sort"
)

// alignment is the result of restricting both sides to their shared identifiers.
type alignment struct {
	ids     []int64
	urlsA   []string
	urlsB   []string
	onlyInA int
	onlyInB int
}

// indexPairs maps identifiers to URLs, rejecting duplicates.
func indexPairs(side Side, pairs []URLPair) (map[int64]string, error) {
	index := make(map[int64]string, len(pairs))
	for _, p := range pairs {
		if _, exists := index[p.ID]; exists {
			return nil, fmt.Errorf("%w: id %d appears more than once on side %s", ErrDuplicateID, p.ID, side)
		}
		index[p.ID] = p.URL
	}
	return index, nil
}

// align intersects the identifier sets and returns both URL lists sorted by identifier.
func align(pairsA, pairsB []URLPair) (*alignment, error) {
	indexA, err := indexPairs(SideA, pairsA)
	if err != nil {
		return nil, err
	}
	indexB, err := indexPairs(SideB, pairsB)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, min(len(indexA), len(indexB)))
	for id := range indexA {
		if _, ok := indexB[id]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoOverlap
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	a := &alignment{
		ids:     ids,
		urlsA:   make([]string, len(ids)),
		urlsB:   make([]string, len(ids)),
		onlyInA: len(indexA) - len(ids),
		onlyInB: len(indexB) - len(ids),
	}
	for i, id := range ids {
		a.urlsA[i] = indexA[id]
		a.urlsB[i] = indexB[id]
	}
	return a, nil
}
