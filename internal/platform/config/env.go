package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvWithAliases loads configuration like ParseEnv, reading each alias
// value whenever its canonical variable is unset. Aliases map canonical names
// to the legacy names deployments may still export.
func ParseEnvWithAliases(target any, aliases map[string]string) error {
	environ := env.ToMap(os.Environ())
	for canonical, legacy := range aliases {
		if _, ok := environ[canonical]; ok {
			continue
		}
		if value, ok := environ[legacy]; ok {
			environ[canonical] = value
		}
	}
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
