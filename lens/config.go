package lens

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the workspace-local configuration file.
const DefaultConfigName = "lenscope.yaml"

// Config matches lenscope.yaml inside the workspace.
type Config struct {
	Enabled *bool          `yaml:"enabled"`
	Servers []ServerConfig `yaml:"servers"`
	Audit   AuditConfig    `yaml:"audit"`
}

// ServerConfig describes one user-configured language server entry, which
// takes precedence over the built-in descriptors.
type ServerConfig struct {
	Language   string   `yaml:"language"`
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	Extensions []string `yaml:"extensions"`
}

// AuditConfig controls the resolution log. An empty path disables it.
type AuditConfig struct {
	Path string `yaml:"path"`
}

// FeatureEnabled reports the enabled flag, defaulting to on when unset.
func (c *Config) FeatureEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}
	return *c.Enabled
}

// DefaultConfigPath returns lenscope.yaml within the workspace.
func DefaultConfigPath(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, DefaultConfigName)
}

// LoadConfig loads the config or returns defaults when the file is missing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FeatureGate is the process-wide switch deciding whether lenses are
// offered at all. It re-reads the backing config on every change
// notification; the CLI wires SIGHUP to Reload.
type FeatureGate struct {
	mu      sync.RWMutex
	path    string
	enabled bool
}

// NewFeatureGate reads the initial state from the config at path.
func NewFeatureGate(path string) (*FeatureGate, error) {
	gate := &FeatureGate{path: path}
	if err := gate.Reload(); err != nil {
		return nil, err
	}
	return gate, nil
}

// Enabled reports whether lenses should currently be offered.
func (g *FeatureGate) Enabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.enabled
}

// Reload re-reads the backing config and updates the gate.
func (g *FeatureGate) Reload() error {
	cfg, err := LoadConfig(g.path)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.enabled = cfg.FeatureEnabled()
	g.mu.Unlock()
	return nil
}
