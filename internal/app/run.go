package app

import "github.com/google/uuid"

// Run tracks a single CLI invocation. The ID ties together every log line
// the invocation writes, which matters because all runs append to one
// shared log file.
type Run struct {
	ID        string
	Operation string
	Status    string // "success" or "error"
}

// NewRun creates a run record for the named operation (e.g. "Organize").
func NewRun(operation string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Operation: operation,
		Status:    "success",
	}
}

// Fail marks the run as failed. Calling it more than once is harmless.
func (r *Run) Fail() {
	r.Status = "error"
}
