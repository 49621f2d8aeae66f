package deck

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents an unshuffled playing deck in canonical order.
// The order is rank-major, suit-minor: 2C 2D 2H 2S 3C ... AS. Every
// enumeration in this project derives its stable ordering from it.
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of 52 cards in canonical order
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, Size)
	for rank := 2; rank <= Ace; rank++ {
		for _, suit := range Suits() {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}
