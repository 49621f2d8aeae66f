package dataset

import (
	"encoding/csv"
	"fmt"

	"pokerhandcensus/pkg/preflop"
)

// WritePreflop writes the preflop grid dataset: a 13x13 matrix with rank
// labels Ace-high to 2-low on both axes. Each cell is rendered as
// "LABEL (P.PPP%)" with the probability to three decimal places.
func WritePreflop(path string, grid [preflop.Size][preflop.Size]preflop.Cell) (err error) {
	file, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(file)

	labels := preflop.RankLabels()
	header := append([]string{""}, labels...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("could not write preflop header: %w", err)
	}

	for i, row := range grid {
		record := make([]string, 0, preflop.Size+1)
		record = append(record, labels[i])
		for _, cell := range row {
			record = append(record, fmt.Sprintf("%s (%.3f%%)", cell.Label, cell.Percent))
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write preflop row %s: %w", labels[i], err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not flush preflop dataset: %w", err)
	}

	return nil
}
