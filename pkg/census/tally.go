package census

import (
	"pokerhandcensus/internal/dataset"
	"pokerhandcensus/pkg/poker"
)

// TotalHands is C(52,5), the number of distinct five-card hands
const TotalHands = 2598960

// Tally accumulates per-category hand counts. It is owned exclusively by
// the enumerator during pass 1 and must be treated as read-only once the
// pass completes.
type Tally struct {
	counts map[poker.Category]int
	total  int
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{
		counts: make(map[poker.Category]int, len(poker.Categories())),
	}
}

// Add records one classified hand
func (t *Tally) Add(c poker.Category) {
	t.counts[c]++
	t.total++
}

// Count returns the number of hands recorded for the category
func (t *Tally) Count(c poker.Category) int {
	return t.counts[c]
}

// Total returns the number of hands recorded across all categories.
// After a full enumeration this is exactly TotalHands.
func (t *Tally) Total() int {
	return t.total
}

// Percent returns the category's share of all recorded hands as a
// percentage. It is derived from counts alone, never from a previously
// computed percentage, so repeated derivation always yields the same value.
func (t *Tally) Percent(c poker.Category) float64 {
	if t.total == 0 {
		return 0
	}

	return float64(t.counts[c]) / float64(t.total) * 100
}

// Totals returns one row per category, all ten categories included
func (t *Tally) Totals() []dataset.CategoryTotal {
	totals := make([]dataset.CategoryTotal, 0, len(poker.Categories()))
	for _, c := range poker.Categories() {
		totals = append(totals, dataset.CategoryTotal{
			Category: c,
			Count:    t.counts[c],
			Percent:  t.Percent(c),
		})
	}

	return totals
}
