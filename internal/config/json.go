package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJson overlays cfg with values from the JSON file at path.
//
// Only keys present in the file are changed, so a file may set just
// "argon2": {"memory": 131072} and keep every other default. An empty path
// is a no-op. Read and unmarshal errors are returned.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
