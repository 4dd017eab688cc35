// Package config loads exifclean configuration from a YAML file and
// environment variables. Flags override both; see the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// Default configuration values.
const (
	DefaultLevel      = "standard"
	DefaultTimeout    = 30 * time.Second
	DefaultConfigDir  = ".exifclean"
	DefaultConfigFile = "config.yaml"
)

// Config holds the exifclean settings.
type Config struct {
	// Level is the default privacy level (minimal, standard, strict, paranoid).
	Level string `yaml:"level"`

	// Backup creates a .bak copy before rewriting a file in place.
	Backup bool `yaml:"backup,omitempty"`

	// ExifTool is the path to the exiftool binary. Empty means look on PATH.
	ExifTool string `yaml:"exiftool,omitempty"`

	// Timeout bounds the processing of a single file.
	Timeout time.Duration `yaml:"-"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Level:   DefaultLevel,
		Timeout: DefaultTimeout,
	}
}

// Dir returns the configuration directory.
// Uses $EXIFCLEAN_CONFIG_DIR if set, otherwise ~/.exifclean.
func Dir() (string, error) {
	if dir := os.Getenv("EXIFCLEAN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir), nil
}

// Path returns the full path to the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// Load builds the configuration. Later sources override earlier ones:
// defaults, then the config file if present, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err == nil {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// loadFromFile overlays settings from a YAML file. The timeout is stored as
// a duration string.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	type configFile struct {
		Level    string `yaml:"level"`
		Backup   bool   `yaml:"backup"`
		ExifTool string `yaml:"exiftool"`
		Timeout  string `yaml:"timeout"`
		Verbose  bool   `yaml:"verbose"`
	}

	var fileCfg configFile
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.Level != "" {
		cfg.Level = fileCfg.Level
	}
	if fileCfg.ExifTool != "" {
		cfg.ExifTool = fileCfg.ExifTool
	}
	if fileCfg.Timeout != "" {
		timeout, err := time.ParseDuration(fileCfg.Timeout)
		if err != nil {
			return fmt.Errorf("parsing timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	cfg.Backup = fileCfg.Backup
	cfg.Verbose = fileCfg.Verbose

	return nil
}

// loadFromEnv overlays environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("EXIFCLEAN_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("EXIFCLEAN_EXIFTOOL"); v != "" {
		cfg.ExifTool = v
	}
	if v := os.Getenv("EXIFCLEAN_TIMEOUT"); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = timeout
		}
	}
	if v := os.Getenv("EXIFCLEAN_BACKUP"); v == "true" || v == "1" {
		cfg.Backup = true
	}
	if v := os.Getenv("EXIFCLEAN_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := model.ParseLevel(c.Level); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// PrivacyLevel returns the configured level. Validate must have passed.
func (c *Config) PrivacyLevel() model.PrivacyLevel {
	level, _ := model.ParseLevel(c.Level)
	return level
}

// Save writes the configuration to the config file, creating the directory
// if needed.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	type configFile struct {
		Level    string `yaml:"level"`
		Backup   bool   `yaml:"backup,omitempty"`
		ExifTool string `yaml:"exiftool,omitempty"`
		Timeout  string `yaml:"timeout"`
		Verbose  bool   `yaml:"verbose,omitempty"`
	}

	data, err := yaml.Marshal(&configFile{
		Level:    cfg.Level,
		Backup:   cfg.Backup,
		ExifTool: cfg.ExifTool,
		Timeout:  cfg.Timeout.String(),
		Verbose:  cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
