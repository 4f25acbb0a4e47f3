package shell

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/tailored-agentic-units/ritualmesh/module"
	"github.com/tailored-agentic-units/ritualmesh/session"
)

// Env holds the RITUALMESH_* environment overrides. The shell takes no
// flags; the environment is its only startup input besides the config file
// it names.
type Env struct {
	ConfigFile string `env:"RITUALMESH_CONFIG"`
	ModulesDir string `env:"RITUALMESH_MODULES_DIR"`
	ModuleExt  string `env:"RITUALMESH_MODULE_EXT"`
	Prompt     string `env:"RITUALMESH_PROMPT"`
	Observer   string `env:"RITUALMESH_OBSERVER"`
	SessionID  string `env:"RITUALMESH_SESSION_ID"`
	Verbose    bool   `env:"RITUALMESH_VERBOSE" envDefault:"false"`
	NoColor    bool   `env:"RITUALMESH_NO_COLOR" envDefault:"false"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// ResolveConfig loads the config file named by e, or the defaults when none
// is set, and applies e's overrides on top.
func (e Env) ResolveConfig() (*Config, error) {
	var cfg *Config
	if e.ConfigFile != "" {
		loaded, err := LoadConfig(e.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		defaults := DefaultConfig()
		cfg = &defaults
	}

	cfg.Merge(&Config{
		Session:  session.Config{ID: e.SessionID},
		Modules:  module.Config{Dir: e.ModulesDir, Extension: e.ModuleExt},
		Prompt:   e.Prompt,
		Observer: e.Observer,
	})
	return cfg, nil
}
