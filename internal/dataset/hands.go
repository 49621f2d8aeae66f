package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"pokerhandcensus/pkg/deck"
	"pokerhandcensus/pkg/poker"
)

// HandRecord is one row of the per-hand dataset. The probability column is
// not part of the record: pass 1 writes the placeholder, and only the
// reconciler knows the final value.
type HandRecord struct {
	Cards    deck.Hand
	Category poker.Category
}

// HandsWriter streams per-hand rows to the dataset file as they are
// produced, so no more than one record is held in memory at a time.
type HandsWriter struct {
	file *os.File
	csv  *csv.Writer
	rows int
}

// NewHandsWriter creates the per-hand dataset file and writes its header
func NewHandsWriter(path string) (*HandsWriter, error) {
	file, err := createFile(path)
	if err != nil {
		return nil, err
	}

	w := &HandsWriter{
		file: file,
		csv:  csv.NewWriter(file),
	}

	if err := w.csv.Write(HandsHeader); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("could not write hands header: %w", err)
	}

	return w, nil
}

// Write appends one record with the placeholder percentage
func (w *HandsWriter) Write(rec *HandRecord) error {
	row := make([]string, 0, len(HandsHeader))
	for _, c := range rec.Cards {
		row = append(row, c.String())
	}
	row = append(row, rec.Cards.String(), rec.Category.String(), Placeholder)

	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("could not write hand record: %w", err)
	}

	w.rows++
	return nil
}

// Rows returns the number of records written so far
func (w *HandsWriter) Rows() int {
	return w.rows
}

// Close flushes and closes the dataset file
func (w *HandsWriter) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("could not flush hands dataset: %w", err)
	}

	return w.file.Close()
}
