// Package config loads lvmine settings from an optional YAML file, LVMINE_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// LVMINE_MINING_MIN_SUPPORT.
const EnvPrefix = "LVMINE"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full configuration tree.
type Config struct {
	Mining MiningConfig `mapstructure:"mining"`
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// MiningConfig holds the algorithm thresholds.
type MiningConfig struct {
	MinSupport    int     `mapstructure:"min_support"`
	MinConfidence float64 `mapstructure:"min_confidence"`
	MaxLength     int     `mapstructure:"max_length"`
	StrictRules   bool    `mapstructure:"strict_rules"`
}

// InputConfig describes where transactions come from.
type InputConfig struct {
	Path      string `mapstructure:"path"`
	Format    string `mapstructure:"format"`
	Separator string `mapstructure:"separator"`
}

// OutputConfig selects the renderer.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggerConfig configures internal/logger.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
	// Path is the directory for rotating log files; empty disables them.
	Path string `mapstructure:"path"`
	// MaxAge in days.
	MaxAge int `mapstructure:"max_age"`
	// RotationTime in hours.
	RotationTime int `mapstructure:"rotation_time"`
	// RotationSize in MB.
	RotationSize uint32 `mapstructure:"rotation_size"`
	SentryDSN    string `mapstructure:"sentry_dsn"`
}

var defaults = map[string]any{
	"mining.min_support":    2,
	"mining.min_confidence": 0.6,
	"mining.max_length":     0,
	"mining.strict_rules":   false,
	"input.path":            "",
	"input.format":          "",
	"input.separator":       ",",
	"output.format":         "table",
	"logger.level":          "info",
	"logger.path":           "",
	"logger.max_age":        7,
	"logger.rotation_time":  24,
	"logger.rotation_size":  100,
	"logger.sentry_dsn":     "",
}

// NewViper returns a viper instance with defaults and environment
// overrides installed.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds each flag of fs named in keys to its configuration key,
// so a flag given on the command line wins over file and environment.
// Flags missing from fs are ignored.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", flag, err)
		}
	}

	return nil
}

// Load reads path into v (when path is non-empty; otherwise ./lvmine.yaml
// if present), then decodes and validates the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("lvmine")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read lvmine.yaml: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Mining.MinConfidence < 0 || c.Mining.MinConfidence > 1 {
		return fmt.Errorf("%w: mining.min_confidence %v not in [0, 1]", ErrInvalid, c.Mining.MinConfidence)
	}
	if c.Mining.MaxLength < 0 {
		return fmt.Errorf("%w: mining.max_length %d < 0", ErrInvalid, c.Mining.MaxLength)
	}
	if n := len([]rune(c.Input.Separator)); n > 1 {
		return fmt.Errorf("%w: input.separator %q must be one character", ErrInvalid, c.Input.Separator)
	}

	return nil
}

// SeparatorRune returns the CSV separator, ',' when unset.
func (c InputConfig) SeparatorRune() rune {
	for _, r := range c.Separator {
		return r
	}

	return ','
}
