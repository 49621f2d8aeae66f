package deck

import "strings"

// Hand represents a collection of cards
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// String returns the space-joined card codes, i.e. "2C 3H 4S 5D 6C".
// This is the HandString column of the per-hand dataset.
func (h Hand) String() string {
	codes := make([]string, len(h))
	for i, c := range h {
		codes[i] = c.String()
	}

	return strings.Join(codes, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
