package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		InstallID:  "test-install-abc",
		LibraryDir: "/home/user/photos/library",
		LogDir:     "/home/user/.local/share/po/log",
		Organize: OrganizeConfig{
			Types:  []string{"jpg", "dng"},
			Layout: "2006/01",
		},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.InstallID != original.InstallID {
		t.Errorf("InstallID = %q, want %q", got.InstallID, original.InstallID)
	}
	if got.LibraryDir != original.LibraryDir {
		t.Errorf("LibraryDir = %q, want %q", got.LibraryDir, original.LibraryDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if len(got.Organize.Types) != 2 || got.Organize.Types[0] != "jpg" {
		t.Errorf("Organize.Types = %v, want %v", got.Organize.Types, original.Organize.Types)
	}
	if got.Organize.Layout != "2006/01" {
		t.Errorf("Organize.Layout = %q, want %q", got.Organize.Layout, "2006/01")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("install-1", "/data/po")

	if cfg.InstallID != "install-1" {
		t.Errorf("InstallID = %q, want %q", cfg.InstallID, "install-1")
	}
	if cfg.LibraryDir != filepath.Join("/data/po", "library") {
		t.Errorf("LibraryDir = %q, want %q", cfg.LibraryDir, "/data/po/library")
	}
	if cfg.LogDir != filepath.Join("/data/po", "log") {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/data/po/log")
	}
	if len(cfg.Organize.Types) != 3 {
		t.Errorf("len(Organize.Types) = %d, want 3", len(cfg.Organize.Types))
	}
	if cfg.Organize.Layout != "2006/01" {
		t.Errorf("Organize.Layout = %q, want %q", cfg.Organize.Layout, "2006/01")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates a new config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "po.toml")
		cfg := NewConfig("install-1", "/data/po")

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.InstallID != "install-1" {
			t.Errorf("InstallID = %q, want %q", got.InstallID, "install-1")
		}
	})

	t.Run("refuses to overwrite an existing config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "po.toml")
		if err := os.WriteFile(path, []byte("install_id = \"x\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := Init(path, NewConfig("install-2", "/data/po")); err == nil {
			t.Error("Init() expected error for existing config file")
		}
	})
}

func TestReadFromFile_Missing(t *testing.T) {
	_, err := ReadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("ReadFromFile() expected error for missing file")
	}
}
