package config

import (
	"fmt"

	"github.com/dmitrijs2005/mordor-tools/internal/cryptox"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings shared by adduser and genpassword.
//
// Fields:
//   - DatabaseFile: SQLite file path or postgres:// DSN of the credential store.
//   - Argon2: cost parameters for new password digests.
type Config struct {
	DatabaseFile string          `json:"database_file" validate:"required"`
	Argon2       cryptox.Params `json:"argon2"`
}

// LoadDefaults populates c with the values used when nothing is configured.
func (c *Config) LoadDefaults() {
	c.DatabaseFile = "/var/web_server/mordor/mordor.db"
	c.Argon2 = cryptox.DefaultParams()
}

// Validate checks the struct tags on Config and its nested Argon2 params.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file at path (if path is not empty). Command-line flags are
// applied by the caller afterwards, then Validate is called.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
