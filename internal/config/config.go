// Package config holds the settings of the barista tools. Values come from
// defaults, then an optional YAML file, then BARISTA_* environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	cerrors "github.com/Victor-armando18/beverage-commercial/internal/errors"
)

const envPrefix = "BARISTA_"

type Config struct {
	LogLevel           string  `yaml:"logLevel"`
	Currency           string  `yaml:"currency"`
	Locale             string  `yaml:"locale"`
	RulesVersion       string  `yaml:"rulesVersion"`
	RulesDir           string  `yaml:"rulesDir"`
	CatalogPath        string  `yaml:"catalogPath"`
	DiscountPercentage float64 `yaml:"discountPercentage"`
}

func Default() Config {
	return Config{
		LogLevel:     "info",
		Currency:     "USD",
		Locale:       "en-US",
		RulesVersion: "v1",
	}
}

// Load reads path (skipped when empty) over the defaults and applies the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, cerrors.WrapWithContext(cerrors.ErrCodeNotFound, "failed to read config", err,
				map[string]any{"path": path})
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest, "failed to parse config", err,
				map[string]any{"path": path})
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":     &c.LogLevel,
		"CURRENCY":      &c.Currency,
		"LOCALE":        &c.Locale,
		"RULES_VERSION": &c.RulesVersion,
		"RULES_DIR":     &c.RulesDir,
		"CATALOG":       &c.CatalogPath,
	}
	for key, dst := range strs {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}
	if v, ok := lookup(envPrefix + "DISCOUNT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest, "invalid discount", err,
				map[string]any{"env": envPrefix + "DISCOUNT"})
		}
		c.DiscountPercentage = f
	}
	return nil
}

func (c Config) Validate() error {
	if c.Currency == "" {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "currency is required")
	}
	if c.RulesVersion == "" {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "rules version is required")
	}
	if math.IsNaN(c.DiscountPercentage) || c.DiscountPercentage < 0 || c.DiscountPercentage > 1 {
		return cerrors.New(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("discount %v is outside [0, 1]", c.DiscountPercentage))
	}
	return nil
}
