// Package config loads command line configuration from a file, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. COLLECTION_LOG_LEVEL.
const EnvPrefix = "COLLECTION"

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat format is neither json nor yaml
var ErrUnknownFormat = errors.New("unknown format")

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Input  FormatConfig `mapstructure:"input"`
	Output FormatConfig `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type FormatConfig struct {
	Format string `mapstructure:"format"`
}

// Load reads path when not empty, then the environment, then the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("input.format", FormatJSON)
	v.SetDefault("output.format", FormatJSON)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := ValidateFormat(c.Input.Format); err != nil {
		return fmt.Errorf("config: input: %w", err)
	}
	if err := ValidateFormat(c.Output.Format); err != nil {
		return fmt.Errorf("config: output: %w", err)
	}
	return nil
}

func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
