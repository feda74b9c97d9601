package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Paths holds locations that can only come from the environment.
type Paths struct {
	ConfigFile string `env:"TENFOLD_CONFIG"`
	LogFile    string `env:"TENFOLD_LOG"`
}

// ParseEnv loads tagged fields of target from environment variables.
// Fields whose variable is unset keep their current value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadPaths reads Paths from the environment, falling back to the XDG
// config path.
func LoadPaths() (Paths, error) {
	var p Paths
	if err := ParseEnv(&p); err != nil {
		return Paths{}, err
	}
	if p.ConfigFile == "" {
		p.ConfigFile = DefaultConfigPath()
	}
	return p, nil
}
