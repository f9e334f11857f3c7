package cases

import (
	"sort"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// weightedSampler draws items with probability proportional to
// 1/(price+1): cheaper items roll more often, and no weight is ever zero
// or negative. Cumulative weights are precomputed once per request and
// each draw is a binary search.
type weightedSampler struct {
	items []domain.Item
	cum   []float64
	total float64
}

func newWeightedSampler(items []domain.Item) *weightedSampler {
	s := &weightedSampler{
		items: items,
		cum:   make([]float64, len(items)),
	}
	for i, item := range items {
		s.total += item.Weight()
		s.cum[i] = s.total
	}
	return s
}

// Pick maps a roll in [0, 1) to an item. Draws are independent and with
// replacement.
func (s *weightedSampler) Pick(rnd float64) domain.Item {
	roll := rnd * s.total
	i := sort.SearchFloat64s(s.cum, roll)
	if i >= len(s.items) {
		i = len(s.items) - 1
	}
	return s.items[i]
}
