package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath is the environment variable naming a JSON config file for
// commands whose arguments cannot carry a -c flag.
const EnvConfigPath = "MORDOR_CONFIG"

type envSource struct {
	ConfigPath string `env:"MORDOR_CONFIG" env-description:"path to JSON config file"`
}

// ConfigPathFromEnv returns the value of MORDOR_CONFIG, or "" when unset.
func ConfigPathFromEnv() (string, error) {
	var e envSource
	if err := cleanenv.ReadEnv(&e); err != nil {
		return "", fmt.Errorf("read environment: %w", err)
	}
	return e.ConfigPath, nil
}
