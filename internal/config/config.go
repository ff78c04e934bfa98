package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file searched for from the working directory upward
const FileName = "drills.toml"

// ErrInvalid is returned when a config value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Color modes
const (
	ColorAuto  = "auto"
	ColorNever = "never"
)

// Config represents the complete configuration for drills
type Config struct {
	LogLevel string `toml:"log_level"`
	Color    string `toml:"color"`

	// Path of the file the values were read from, empty when defaults are used
	Path string `toml:"-"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Color:    ColorNever,
	}
}

// Load reads the config file at path. An empty path searches for drills.toml
// from startDir upward; a missing file yields the defaults.
func Load(path, startDir string) (*Config, error) {
	if path == "" {
		found, err := findConfigFile(startDir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data), path)
}

// Parse decodes TOML config data on top of the defaults.
func Parse(data, path string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field holds a supported value
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.LogLevel) {
	case "error", "warn", "info", "debug":
	default:
		problems = append(problems, fmt.Sprintf("log_level %q must be one of error, warn, info, debug", c.LogLevel))
	}
	switch c.Color {
	case ColorAuto, ColorNever:
	default:
		problems = append(problems, fmt.Sprintf("color %q must be auto or never", c.Color))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, ", "))
	}
	return nil
}

// findConfigFile searches for drills.toml starting from the given directory.
// It returns "" when no file exists up to the filesystem root.
func findConfigFile(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
