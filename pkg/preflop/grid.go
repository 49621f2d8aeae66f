// Package preflop generates the 13x13 grid of canonical two-card starting
// hands: 13 pairs, 78 suited, and 78 offsuit classes, 169 in all.
package preflop

import "pokerhandcensus/pkg/deck"

// combo counts per starting-hand class
const (
	PairCombos    = 6
	SuitedCombos  = 4
	OffsuitCombos = 12
)

// TotalCombos is C(52,2), the number of distinct two-card hands
const TotalCombos = 1326

// Size is the grid dimension, one row and column per rank
const Size = 13

// Cell is one of the 169 canonical starting-hand classes
type Cell struct {
	Label   string
	Combos  int
	Percent float64
}

// Ranks returns the axis ranks in grid order, Ace-high to 2-low
func Ranks() []int {
	ranks := make([]int, 0, Size)
	for rank := deck.Ace; rank >= 2; rank-- {
		ranks = append(ranks, rank)
	}

	return ranks
}

// RankLabels returns the axis labels in grid order, "A" down to "2"
func RankLabels() []string {
	labels := make([]string, Size)
	for i, rank := range Ranks() {
		labels[i] = deck.RankChar(rank)
	}

	return labels
}

// Grid returns the 13x13 starting-hand matrix, both axes Ace-high to
// 2-low. The diagonal holds the pairs, the upper-right triangle the
// suited classes, and the lower-left triangle the offsuit classes.
// Labels put the higher rank first, i.e. "AKs" and "AKo".
func Grid() [Size][Size]Cell {
	var grid [Size][Size]Cell

	for i, r1 := range Ranks() {
		for j, r2 := range Ranks() {
			var label string
			var combos int

			switch {
			case r1 == r2:
				label = deck.RankChar(r1) + deck.RankChar(r2)
				combos = PairCombos
			case r1 > r2:
				label = deck.RankChar(r1) + deck.RankChar(r2) + "s"
				combos = SuitedCombos
			default:
				label = deck.RankChar(r2) + deck.RankChar(r1) + "o"
				combos = OffsuitCombos
			}

			grid[i][j] = Cell{
				Label:   label,
				Combos:  combos,
				Percent: float64(combos) / TotalCombos * 100,
			}
		}
	}

	return grid
}
