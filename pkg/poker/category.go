package poker

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category, ascending strength
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the category label used in the persisted datasets
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// Categories returns all ten categories in descending strength
func Categories() []Category {
	return []Category{
		RoyalFlush,
		StraightFlush,
		FourOfAKind,
		FullHouse,
		Flush,
		Straight,
		ThreeOfAKind,
		TwoPair,
		OnePair,
		HighCard,
	}
}

// CategoryFromString returns the Category for a persisted label.
// An unknown label is a programming error and panics.
func CategoryFromString(label string) Category {
	for _, c := range Categories() {
		if c.String() == label {
			return c
		}
	}

	panic(fmt.Sprintf("unknown category label: %s", label))
}
