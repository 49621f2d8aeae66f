package census

import (
	"fmt"

	"pokerhandcensus/internal/dataset"
	"pokerhandcensus/pkg/deck"
	"pokerhandcensus/pkg/poker"
)

// RecordSink receives each hand record as it is produced
type RecordSink interface {
	Write(rec *dataset.HandRecord) error
}

// Enumerator drives pass 1: it walks every five-card combination of the
// deck in canonical order, classifies each hand, folds the category into
// a Tally, and streams a placeholder record to the sink. Only one record
// is in flight at a time.
type Enumerator struct {
	// ProgressEvery controls how often Progress is invoked; zero or
	// negative disables reporting
	ProgressEvery int

	// Progress is invoked with the number of hands processed so far
	Progress func(hands int)
}

// Run enumerates the deck and returns the completed tally. Any sink error
// aborts the run; the partially written dataset is not valid output.
func (e *Enumerator) Run(d *deck.Deck, sink RecordSink) (*Tally, error) {
	tally := NewTally()
	combos := NewCombinations(d.Cards, poker.HandSize)

	hands := 0
	for {
		hand, ok := combos.Next()
		if !ok {
			break
		}

		category := poker.Classify(hand)
		tally.Add(category)

		rec := dataset.HandRecord{
			Cards:    hand,
			Category: category,
		}
		if err := sink.Write(&rec); err != nil {
			return nil, fmt.Errorf("could not persist hand %s: %w", hand, err)
		}

		hands++
		if e.Progress != nil && e.ProgressEvery > 0 && hands%e.ProgressEvery == 0 {
			e.Progress(hands)
		}
	}

	return tally, nil
}
