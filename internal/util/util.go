package util

import (
	"github.com/google/uuid"
)

// RunID generates a unique identifier for a census run, used to correlate
// log lines from the same execution
func RunID() string {
	return uuid.New().String()
}
