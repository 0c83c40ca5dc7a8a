package check

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tt "github.com/gnolang/ndcheck/internal/types"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up by default.
const DefaultConfigFile = ".ndcheck.yaml"

const (
	envStrictNames = "NDCHECK_STRICT_NAMES"
	envParallel    = "NDCHECK_PARALLEL"
)

// Config represents the checker configuration: a name, per-rule
// severities keyed by rule symbol, and engine switches.
type Config struct {
	Name        string                   `yaml:"name"`
	Rules       map[string]tt.ConfigRule `yaml:"rules"`
	StrictNames bool                     `yaml:"strict_names"`
	Parallel    bool                     `yaml:"parallel"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Name:  "ndcheck",
		Rules: map[string]tt.ConfigRule{},
	}
}

// LoadConfig reads the configuration at path. Values from a .env file
// and the environment override the file. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("error reading configuration: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("error parsing configuration %s: %w", path, err)
			}
		}
	}

	if err := envBool(envStrictNames, &cfg.StrictNames); err != nil {
		return cfg, err
	}
	if err := envBool(envParallel, &cfg.Parallel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	*dst = b
	return nil
}

// WriteConfig writes cfg to path as YAML.
func WriteConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshalling configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing configuration: %w", err)
	}
	return nil
}
