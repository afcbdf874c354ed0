package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv populates target from environment variables using env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv overrides the window and debug defaults from the environment.
// Unset variables keep their defaults.
func LoadEnv() error {
	if err := ParseEnv(C); err != nil {
		return err
	}
	return ParseEnv(&Debug)
}
