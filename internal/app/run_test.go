package app

import "testing"

func TestNewRun(t *testing.T) {
	run := NewRun("Organize")

	if run.Operation != "Organize" {
		t.Errorf("Operation = %q, want %q", run.Operation, "Organize")
	}
	if run.Status != "success" {
		t.Errorf("Status = %q, want %q", run.Status, "success")
	}
	if run.ID == "" {
		t.Error("ID is empty, want a generated run ID")
	}

	other := NewRun("Organize")
	if other.ID == run.ID {
		t.Error("two runs share the same ID, want unique IDs")
	}
}

func TestRun_Fail(t *testing.T) {
	run := NewRun("Organize")

	run.Fail()
	if run.Status != "error" {
		t.Errorf("Status = %q after Fail(), want %q", run.Status, "error")
	}

	// Fail is idempotent.
	run.Fail()
	if run.Status != "error" {
		t.Errorf("Status = %q after second Fail(), want %q", run.Status, "error")
	}
}
