// Package census enumerates every five-card hand in the deck, classifies
// each one, accumulates category totals, and reconciles the persisted
// per-hand dataset once the totals are known.
package census

import "pokerhandcensus/pkg/deck"

// Combinations iterates over every k-card subset of a card list in
// lexicographic index order. The order is fully determined by the input
// order, so enumerating the canonical deck is stable across runs. The
// only state is the index cursor; construct a new generator to restart.
type Combinations struct {
	cards []*deck.Card
	k     int
	idx   []int
	done  bool
}

// NewCombinations returns a generator over all k-card combinations of cards
func NewCombinations(cards []*deck.Card, k int) *Combinations {
	c := &Combinations{
		cards: cards,
		k:     k,
	}

	if k <= 0 || k > len(cards) {
		c.done = true
		return c
	}

	c.idx = make([]int, k)
	for i := range c.idx {
		c.idx[i] = i
	}

	return c
}

// Next returns the next combination, or false once the generator is exhausted
func (c *Combinations) Next() (deck.Hand, bool) {
	if c.done {
		return nil, false
	}

	hand := make(deck.Hand, c.k)
	for i, j := range c.idx {
		hand[i] = c.cards[j]
	}

	c.advance()
	return hand, true
}

// advance moves the cursor to the lexicographic successor
func (c *Combinations) advance() {
	n := len(c.cards)

	i := c.k - 1
	for i >= 0 && c.idx[i] == n-c.k+i {
		i--
	}

	if i < 0 {
		c.done = true
		return
	}

	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}
}
