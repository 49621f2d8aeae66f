// Package dataset defines the persisted CSV artifacts: the per-hand
// dataset, the category totals dataset, and the preflop grid dataset.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Placeholder is the provisional percentage written during pass 1. The
// per-hand dataset is not valid until the reconciler has replaced it.
const Placeholder = "0"

// HandsHeader is the header row of the per-hand dataset
var HandsHeader = []string{
	"Card1",
	"Card2",
	"Card3",
	"Card4",
	"Card5",
	"HandString",
	"Category",
	"CategoryProbabilityPercent",
}

// column indices in the per-hand dataset
const (
	HandsColCategory = 6
	HandsColPercent  = 7
)

// FormatPercent formats a probability percentage to six decimal places
func FormatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 6, 64)
}

// createFile creates the file at path, making parent directories as needed
func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create file %s: %w", path, err)
	}

	return file, nil
}
