package organize

import "time"

// Outcome classifies what happened to a single planned move.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeCopied
	OutcomeFailed
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeCopied:
		return "copied"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result records the outcome of one planned move.
// Err is non-nil only when Outcome is OutcomeFailed.
type Result struct {
	Move    Move
	Outcome Outcome
	Err     error
}

// Report aggregates per-file results for a completed batch.
type Report struct {
	Results    []Result
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded returns the number of files moved or copied.
func (r *Report) Succeeded() int {
	count := 0
	for _, res := range r.Results {
		if res.Outcome != OutcomeFailed {
			count++
		}
	}
	return count
}

// Failed returns the number of files that could not be relocated.
func (r *Report) Failed() int {
	count := 0
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			count++
		}
	}
	return count
}

// Failures returns the results that carry an error.
func (r *Report) Failures() []Result {
	var failures []Result
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failures = append(failures, res)
		}
	}
	return failures
}

// Duration returns how long the apply phase took.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
