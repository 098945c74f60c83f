// Package config loads calmly settings from a YAML file, a .env file and
// CALMLY_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	MinMeditationMinutes = 1
	MaxMeditationMinutes = 30
)

// Config holds all application settings.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Activities ActivitiesConfig `yaml:"activities"`
	UI         UIConfig         `yaml:"ui"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File receives JSON log lines. Empty disables logging.
	File string `yaml:"file"`
}

// ActivitiesConfig holds activity defaults.
type ActivitiesConfig struct {
	MeditationMinutes int  `yaml:"meditation_minutes"`
	SoundCues         bool `yaml:"sound_cues"`
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
	Splash    bool `yaml:"splash"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Activities: ActivitiesConfig{
			MeditationMinutes: 5,
			SoundCues:         true,
		},
		UI: UIConfig{
			AltScreen: true,
			Splash:    true,
		},
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. CALMLY_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/calmly/config.yaml
// 3. ~/.config/calmly/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("CALMLY_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "calmly", "config.yaml"), nil
}

// Load reads the config at path (or DefaultPath when empty), applies
// environment overrides and validates the result. A missing file at the
// default location is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	// .env is optional, but a broken one is reported.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
		explicit = os.Getenv("CALMLY_CONFIG") != ""
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CALMLY_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("CALMLY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CALMLY_MEDITATION_MINUTES"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CALMLY_MEDITATION_MINUTES: %w", err)
		}
		c.Activities.MeditationMinutes = m
	}
	if v := os.Getenv("CALMLY_SOUND"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CALMLY_SOUND: %w", err)
		}
		c.Activities.SoundCues = on
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Logging.Level)
	}
	m := c.Activities.MeditationMinutes
	if m < MinMeditationMinutes || m > MaxMeditationMinutes {
		return fmt.Errorf("meditation_minutes must be between %d and %d, got %d",
			MinMeditationMinutes, MaxMeditationMinutes, m)
	}
	return nil
}
