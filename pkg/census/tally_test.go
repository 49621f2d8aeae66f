package census

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerhandcensus/pkg/poker"
)

func TestTally(t *testing.T) {
	a := assert.New(t)

	tally := NewTally()
	a.Equal(0, tally.Total())
	a.Equal(float64(0), tally.Percent(poker.HighCard))

	tally.Add(poker.RoyalFlush)
	tally.Add(poker.HighCard)
	tally.Add(poker.HighCard)
	tally.Add(poker.HighCard)

	a.Equal(4, tally.Total())
	a.Equal(1, tally.Count(poker.RoyalFlush))
	a.Equal(3, tally.Count(poker.HighCard))
	a.Equal(0, tally.Count(poker.Flush))

	a.Equal(float64(25), tally.Percent(poker.RoyalFlush))
	a.Equal(float64(75), tally.Percent(poker.HighCard))
	a.Equal(float64(0), tally.Percent(poker.Flush))
}

func TestTally_Totals(t *testing.T) {
	tally := NewTally()
	tally.Add(poker.OnePair)
	tally.Add(poker.OnePair)

	totals := tally.Totals()
	assert.Equal(t, 10, len(totals))

	sum := 0
	for _, row := range totals {
		sum += row.Count
		if row.Category == poker.OnePair {
			assert.Equal(t, 2, row.Count)
			assert.Equal(t, float64(100), row.Percent)
		} else {
			assert.Equal(t, 0, row.Count)
		}
	}
	assert.Equal(t, tally.Total(), sum)
}

// re-deriving percentages must depend only on counts
func TestTally_percentDerivationIsStable(t *testing.T) {
	tally := NewTally()
	for i := 0; i < 7; i++ {
		tally.Add(poker.TwoPair)
	}
	for i := 0; i < 3; i++ {
		tally.Add(poker.Flush)
	}

	first := tally.Percent(poker.TwoPair)
	second := tally.Percent(poker.TwoPair)
	assert.Equal(t, first, second)
	assert.Equal(t, float64(70), first)
}
