package organize

import (
	"errors"
	"testing"
	"time"
)

func TestReport_Counts(t *testing.T) {
	report := &Report{
		Results: []Result{
			{Outcome: OutcomeMoved},
			{Outcome: OutcomeCopied},
			{Outcome: OutcomeFailed, Err: errors.New("boom")},
		},
	}

	if got := report.Succeeded(); got != 2 {
		t.Errorf("Succeeded() = %d, want 2", got)
	}
	if got := report.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if got := len(report.Failures()); got != 1 {
		t.Errorf("len(Failures()) = %d, want 1", got)
	}
}

func TestReport_Duration(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	report := &Report{StartedAt: start, FinishedAt: start.Add(3 * time.Second)}

	if got := report.Duration(); got != 3*time.Second {
		t.Errorf("Duration() = %v, want 3s", got)
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &MoveError{Source: "/a", Destination: "/b", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(MoveError, cause) = false, want true")
	}
}
