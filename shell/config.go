package shell

import (
	"fmt"
	"os"

	"github.com/tailored-agentic-units/ritualmesh/module"
	"github.com/tailored-agentic-units/ritualmesh/session"
	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt   = "\n⛩️  Invoke > "
	defaultObserver = "slog"
)

// Config holds initialization parameters for the shell and its subsystems.
type Config struct {
	Session  session.Config `yaml:"session"`
	Modules  module.Config  `yaml:"modules"`
	Prompt   string         `yaml:"prompt,omitempty"`
	Observer string         `yaml:"observer,omitempty"` // Name in the observability registry.
}

// DefaultConfig returns a Config with defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Session:  session.DefaultConfig(),
		Modules:  module.DefaultConfig(),
		Prompt:   defaultPrompt,
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Session.Merge(&source.Session)
	c.Modules.Merge(&source.Modules)

	if source.Prompt != "" {
		c.Prompt = source.Prompt
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a YAML (or JSON) config file and merges it over the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
