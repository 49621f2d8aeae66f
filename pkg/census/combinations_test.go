package census

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerhandcensus/pkg/deck"
)

func TestCombinations(t *testing.T) {
	cards := deck.CardsFromString("2C,3C,4C,5C,6C")

	gen := NewCombinations(cards, 2)
	var got []string
	for {
		hand, ok := gen.Next()
		if !ok {
			break
		}
		got = append(got, hand.String())
	}

	// lexicographic over input indices
	assert.Equal(t, []string{
		"2C 3C", "2C 4C", "2C 5C", "2C 6C",
		"3C 4C", "3C 5C", "3C 6C",
		"4C 5C", "4C 6C",
		"5C 6C",
	}, got)
}

func TestCombinations_count(t *testing.T) {
	d := deck.New()

	// C(7,5) = 21
	gen := NewCombinations(d.Cards[0:7], 5)
	seen := make(map[string]bool)
	for {
		hand, ok := gen.Next()
		if !ok {
			break
		}
		assert.Equal(t, 5, len(hand))
		assert.False(t, seen[hand.String()], "duplicate combination %s", hand)
		seen[hand.String()] = true
	}

	assert.Equal(t, 21, len(seen))
}

func TestCombinations_restartable(t *testing.T) {
	cards := deck.CardsFromString("2C,3C,4C,5C,6C,7C")

	first := NewCombinations(cards, 3)
	second := NewCombinations(cards, 3)
	for {
		h1, ok1 := first.Next()
		h2, ok2 := second.Next()
		assert.Equal(t, ok1, ok2)
		if !ok1 {
			break
		}
		assert.Equal(t, h1.String(), h2.String())
	}
}

func TestCombinations_degenerate(t *testing.T) {
	cards := deck.CardsFromString("2C,3C")

	_, ok := NewCombinations(cards, 3).Next()
	assert.False(t, ok)

	_, ok = NewCombinations(cards, 0).Next()
	assert.False(t, ok)

	hand, ok := NewCombinations(cards, 2).Next()
	assert.True(t, ok)
	assert.Equal(t, "2C 3C", hand.String())
}
