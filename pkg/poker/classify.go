package poker

import (
	"fmt"
	"sort"

	"pokerhandcensus/pkg/deck"
)

// HandSize is the number of cards in a classifiable hand
const HandSize = 5

// Classify returns the category of a five-card hand.
//
// The checks below are mutually exclusive where it matters: five cards of
// one suit are five distinct ranks, so a flush can never carry a rank
// pattern beyond [1,1,1,1,1]. The only genuine overlap is a hand that is
// both a straight and a flush, which is resolved first. The frequency
// patterns partition the remaining hands uniquely, so their relative order
// is immaterial.
func Classify(cards []*deck.Card) Category {
	if len(cards) != HandSize {
		panic(fmt.Sprintf("classify requires exactly %d cards, got %d", HandSize, len(cards)))
	}

	counts := rankCounts(cards)
	flush := isFlush(cards)
	high, straight := straightHigh(cards)

	if straight && flush {
		if high == deck.Ace {
			return RoyalFlush
		}

		return StraightFlush
	}

	switch {
	case patternIs(counts, 4, 1):
		return FourOfAKind
	case patternIs(counts, 3, 2):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case patternIs(counts, 3, 1, 1):
		return ThreeOfAKind
	case patternIs(counts, 2, 2, 1):
		return TwoPair
	case patternIs(counts, 2, 1, 1, 1):
		return OnePair
	}

	return HighCard
}

// rankCounts returns the multiset of rank frequencies, sorted descending,
// i.e. a full house yields [3 2] and an unpaired hand [1 1 1 1 1]
func rankCounts(cards []*deck.Card) []int {
	byRank := make(map[int]int)
	for _, c := range cards {
		byRank[c.Rank]++
	}

	counts := make([]int, 0, len(byRank))
	for _, n := range byRank {
		counts = append(counts, n)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(counts)))
	return counts
}

func patternIs(counts []int, pattern ...int) bool {
	if len(counts) != len(pattern) {
		return false
	}

	for i, n := range pattern {
		if counts[i] != n {
			return false
		}
	}

	return true
}

func isFlush(cards []*deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// straightHigh returns the high rank of the straight and whether the five
// cards form one. In the wheel (A-2-3-4-5) the Ace plays low, so the high
// card is the five. A naive consecutive check on rank order would miss the
// wheel since the Ace sits at the top of the order.
func straightHigh(cards []*deck.Card) (int, bool) {
	ranks := make([]int, HandSize)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Ints(ranks)

	// wheel
	if ranks[0] == 2 && ranks[1] == 3 && ranks[2] == 4 && ranks[3] == 5 && ranks[4] == deck.Ace {
		return 5, true
	}

	for i := 1; i < HandSize; i++ {
		if ranks[i] != ranks[0]+i {
			return 0, false
		}
	}

	return ranks[4], true
}
