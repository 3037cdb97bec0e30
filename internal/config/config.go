package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"po-go/internal/organize"
)

// Config represents the main configuration for po.
type Config struct {
	InstallID  string         `toml:"install_id"`
	LibraryDir string         `toml:"library_dir"`
	LogDir     string         `toml:"log_dir"`
	Organize   OrganizeConfig `toml:"organize"`
}

// OrganizeConfig holds defaults for the organize command. Command-line
// flags override these per invocation.
type OrganizeConfig struct {
	// Types is the extension allowlist applied when --types is not given.
	Types []string `toml:"types"`

	// Layout is the Go time format used to build destination
	// subdirectories, e.g. "2006/01" for year/month.
	Layout string `toml:"layout"`
}

// NewConfig creates a new Config with the provided values and default
// organize settings.
func NewConfig(installID, baseDir string) *Config {
	return &Config{
		InstallID:  installID,
		LibraryDir: filepath.Join(baseDir, "library"),
		LogDir:     filepath.Join(baseDir, "log"),
		Organize: OrganizeConfig{
			Types:  append([]string(nil), organize.DefaultTypes...),
			Layout: organize.DefaultLayout,
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
