package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits returns the four suits in canonical order (clubs, diamonds, hearts, spades)
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// face cards
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// rankChars maps rank-2 to its single-character code
const rankChars = "23456789TJQKA"

// RankChar returns the single-character code for a rank, i.e. "T" for ten
func RankChar(rank int) string {
	if rank < 2 || rank > Ace {
		panic(fmt.Sprintf("rank out of range: %d", rank))
	}

	return string(rankChars[rank-2])
}

// String returns the two-character card code used in the datasets, i.e. "AC" or "TD"
func (c *Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "C"
	case Diamonds:
		suit = "D"
	case Hearts:
		suit = "H"
	case Spades:
		suit = "S"
	default:
		panic("unknown suit")
	}

	return RankChar(c.Rank) + suit
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank returns the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return 1
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9TJQKA])([CDHS])\z`)

// CardFromString returns a Card from a two-character code like "2C" or "AS".
// Malformed input is a programming error and panics.
func CardFromString(s string) *Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank := strings.IndexByte(rankChars, strings.ToUpper(match[1])[0]) + 2

	var suit Suit
	switch strings.ToUpper(match[2]) {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will return a slice of cards from a comma-separated list of codes
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2C,3H,4S,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
