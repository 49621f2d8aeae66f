package census

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pokerhandcensus/internal/dataset"
	"pokerhandcensus/pkg/poker"
)

// Reconcile performs pass 2: it re-reads the per-hand dataset in the
// order pass 1 wrote it and replaces each placeholder percentage with the
// category's final percentage from the tally. Rows stream through a temp
// file which is renamed over the original, so memory stays bounded and a
// reader sees either the all-placeholder file or the finished one. The
// rewrite depends only on the category column and the tally, making it
// idempotent.
//
// Must not be called before pass 1 has fully completed: the percentages
// are only correct once every hand has been counted.
func Reconcile(path string, tally *Tally) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open hands dataset: %w", err)
	}
	defer in.Close()

	out, err := os.CreateTemp(filepath.Dir(path), ".reconcile-*.csv")
	if err != nil {
		return fmt.Errorf("could not create reconcile temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(out.Name())
		}
	}()

	reader := csv.NewReader(in)
	writer := csv.NewWriter(out)

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("could not read hands header: %w", err)
	}
	if len(header) != len(dataset.HandsHeader) {
		return fmt.Errorf("unexpected hands header width: %d", len(header))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write hands header: %w", err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("could not read hands row: %w", err)
		}

		category := poker.CategoryFromString(row[dataset.HandsColCategory])
		row[dataset.HandsColPercent] = dataset.FormatPercent(tally.Percent(category))

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("could not write hands row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("could not flush reconciled dataset: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close reconciled dataset: %w", err)
	}

	if err := os.Rename(out.Name(), path); err != nil {
		return fmt.Errorf("could not replace hands dataset: %w", err)
	}

	return nil
}
