package organize

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates the requested source directory does not exist.
// Callers can test for it with errors.Is.
var ErrSourceNotFound = errors.New("source directory not found")

// MoveError records a per-file failure while applying a plan.
// A MoveError never aborts the batch; the remaining files are still
// processed and the error is surfaced through the report.
type MoveError struct {
	Source      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("moving %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
