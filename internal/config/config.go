package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for use with errors.Is.
var (
	ErrMissing = errors.New("config file not found")
	ErrCorrupt = errors.New("config file is corrupt")
)

// Config is the persisted configuration: the OpenWeatherMap credential and
// the default location set during setup.
type Config struct {
	APIKey        string  `yaml:"api_key"`
	Latitude      float64 `yaml:"latitude"`
	Longitude     float64 `yaml:"longitude"`
	LocationLabel string  `yaml:"location_label,omitempty"`
}

// Path returns the config file location: SKYCAST_CONFIG if set, otherwise
// the per-user config directory.
func Path() (string, error) {
	if p := os.Getenv("SKYCAST_CONFIG"); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "skycast", "config.yaml"), nil
}

// Load reads and validates the persisted config. OPENWEATHER_API_KEY, when
// set, overrides the saved credential without touching the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	if key := os.Getenv("OPENWEATHER_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &cfg, nil
}

// Save validates and writes the config, overwriting any existing file. The
// parent directory is created if missing. An invalid config is never
// written.
func Save(cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (set OPENWEATHER_API_KEY or run setup)")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %.4f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %.4f out of range [-180, 180]", c.Longitude)
	}
	return nil
}
