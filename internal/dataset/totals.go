package dataset

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"pokerhandcensus/pkg/poker"
)

// TotalsHeader is the header row of the category totals dataset
var TotalsHeader = []string{"Category", "Count", "ProbabilityPercent"}

// CategoryTotal is one row of the category totals dataset
type CategoryTotal struct {
	Category poker.Category
	Count    int
	Percent  float64
}

// WriteTotals writes the category totals dataset, ordered by descending
// count (stronger category first on equal counts).
func WriteTotals(path string, totals []CategoryTotal) (err error) {
	rows := make([]CategoryTotal, len(totals))
	copy(rows, totals)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}

		return rows[i].Category > rows[j].Category
	})

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
	if err := w.Write(TotalsHeader); err != nil {
		return fmt.Errorf("could not write totals header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Category.String(),
			strconv.Itoa(row.Count),
			FormatPercent(row.Percent),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("could not write totals row for %s: %w", row.Category, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not flush totals dataset: %w", err)
	}

	return nil
}
