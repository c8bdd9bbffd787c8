// Package config handles loading and saving user configuration for hanzipy.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/hanzipy/internal/pinyin"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the settings file inside the config directory.
const FileName = "config.yaml"

// Output formats understood by the convert command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all user configuration.
type Config struct {
	NonHan string `yaml:"non_han"` // keep or drop runes without a reading
	Format string `yaml:"format"`  // text, json or yaml
	Copy   bool   `yaml:"copy"`    // copy the last pinyin result to the clipboard
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		NonHan: string(pinyin.NonHanKeep),
		Format: FormatText,
	}
}

// Validate checks that every field holds a known value.
func (c *Config) Validate() error {
	if _, err := pinyin.ParseNonHan(c.NonHan); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q (want text, json or yaml)", ErrInvalid, c.Format)
	}
	return nil
}

// Converter builds the go-pinyin converter described by the config.
func (c *Config) Converter() (*pinyin.GoPinyin, error) {
	policy, err := pinyin.ParseNonHan(c.NonHan)
	if err != nil {
		return nil, err
	}
	return pinyin.NewGoPinyin(pinyin.WithNonHan(policy)), nil
}

// Load reads the configuration from a YAML file.
// A missing file yields the defaults; fields absent from the file keep theirs.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "hanzipy"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
