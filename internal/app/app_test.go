package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"po-go/internal/app"
	"po-go/internal/config"
	"po-go/internal/organize"
)

func testConfig(t *testing.T) (*config.Config, string, string) {
	t.Helper()
	base := t.TempDir()
	src := filepath.Join(base, "incoming")
	lib := filepath.Join(base, "library")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		InstallID:  "test-install",
		LibraryDir: lib,
		LogDir:     filepath.Join(base, "log"),
		Organize: config.OrganizeConfig{
			Types:  []string{"jpg"},
			Layout: organize.DefaultLayout,
		},
	}
	return cfg, src, lib
}

func TestPOApp_Organize(t *testing.T) {
	t.Run("moves files using config defaults", func(t *testing.T) {
		cfg, src, lib := testConfig(t)
		if err := os.WriteFile(filepath.Join(src, "a.jpg"), []byte("aaa"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(src, "notes.txt"), []byte("nnn"), 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := app.NewPOApp(cfg, "Organize", false)
		if err != nil {
			t.Fatalf("NewPOApp() error = %v", err)
		}
		defer a.Close()

		// Destination root and types come from config when the request
		// leaves them empty.
		_, report, err := a.Organize(organize.Request{Source: src})
		if err != nil {
			t.Fatalf("Organize() error = %v", err)
		}
		if report.Succeeded() != 1 || report.Failed() != 0 {
			t.Fatalf("report: succeeded = %d failed = %d, want 1 and 0", report.Succeeded(), report.Failed())
		}

		// The creation timestamp of a freshly written file decides the
		// destination; derive the expectation from the file itself.
		moved := report.Results[0].Move
		wantDir := filepath.Join(lib, moved.Entry.CreatedAt.Format(organize.DefaultLayout))
		if got := filepath.Dir(moved.Destination); got != wantDir {
			t.Errorf("destination dir = %q, want %q", got, wantDir)
		}
		if _, err := os.Stat(moved.Destination); err != nil {
			t.Errorf("moved file missing at destination: %v", err)
		}
		if _, err := os.Stat(filepath.Join(src, "a.jpg")); err == nil {
			t.Error("a.jpg still present at source after move")
		}
		if _, err := os.Stat(filepath.Join(src, "notes.txt")); err != nil {
			t.Error("notes.txt outside the allowlist should be untouched")
		}
	})

	t.Run("dry run mutates nothing and skips the lock", func(t *testing.T) {
		cfg, src, lib := testConfig(t)
		if err := os.WriteFile(filepath.Join(src, "a.jpg"), []byte("aaa"), 0o644); err != nil {
			t.Fatal(err)
		}

		a, err := app.NewPOApp(cfg, "Organize", false)
		if err != nil {
			t.Fatalf("NewPOApp() error = %v", err)
		}
		defer a.Close()

		plan, report, err := a.Organize(organize.Request{Source: src, DryRun: true})
		if err != nil {
			t.Fatalf("Organize() error = %v", err)
		}
		if report != nil {
			t.Error("dry run should not produce a report")
		}
		if len(plan.Moves) != 1 {
			t.Errorf("len(plan.Moves) = %d, want 1", len(plan.Moves))
		}
		if _, err := os.Stat(filepath.Join(src, "a.jpg")); err != nil {
			t.Error("dry run moved the source file")
		}
		if _, err := os.Stat(lib); err == nil {
			t.Error("dry run created the library directory")
		}
	})

	t.Run("missing source surfaces ErrSourceNotFound", func(t *testing.T) {
		cfg, src, _ := testConfig(t)

		a, err := app.NewPOApp(cfg, "Organize", false)
		if err != nil {
			t.Fatalf("NewPOApp() error = %v", err)
		}
		defer a.Close()

		_, _, err = a.Organize(organize.Request{Source: filepath.Join(src, "nope")})
		if !errors.Is(err, organize.ErrSourceNotFound) {
			t.Fatalf("Organize() error = %v, want ErrSourceNotFound", err)
		}
	})
}
