package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable consulted when no path is passed to Load.
const PathEnv = "HOMECHECK_CONFIG"

const defaultPath = "./homecheck.yaml"

// Load builds the configuration for one binary. Environment variables win
// over the YAML file, which wins over env-default tags.
//
// The file is resolved in order: the path argument (usually a -config flag),
// then $HOMECHECK_CONFIG, then ./homecheck.yaml. Only the last one may be
// missing; a path that was asked for explicitly must exist.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := true
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		path, explicit = defaultPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
