// Package config loads the settings of the reqparse tools from built-in
// defaults, an optional YAML file and REQPARSE_* environment variables, in
// that order of increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/eucaby/reqparse"
	"github.com/eucaby/reqparse/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// ConfigPathEnvVar overrides the config file location.
	ConfigPathEnvVar = "REQPARSE_CONFIG"
	// DefaultConfigPath is read when present and no other path is given.
	DefaultConfigPath = "reqparse.yaml"
	// EnvPrefix starts every environment override.
	EnvPrefix = "REQPARSE_"
)

// Config is the full tool configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging" validate:"required"`
	Parser  ParserConfig  `koanf:"parser" validate:"required"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

type ParserConfig struct {
	// Strict reports undeclared keys as unparsed.
	Strict bool `koanf:"strict"`
	// MaxMemory bounds form and JSON body reads, in bytes.
	MaxMemory int64 `koanf:"max_memory" validate:"gt=0"`
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	opts := logging.DefaultConfig()
	opts.Level = c.Logging.Level
	opts.Format = c.Logging.Format
	opts.Caller = c.Logging.Caller
	return opts
}

// HandlerOptions converts the parser section for reqparse.Handler.
func (c *Config) HandlerOptions() reqparse.HandlerOpts {
	return reqparse.HandlerOpts{
		Strict:  c.Parser.Strict,
		Request: reqparse.RequestOpts{MaxMemory: c.Parser.MaxMemory},
	}
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Parser: ParserConfig{
			Strict:    false,
			MaxMemory: reqparse.DefaultMaxMemory,
		},
	}
}

// Load builds the configuration.
//
// path names the YAML file to read. When empty, REQPARSE_CONFIG is used, then
// DefaultConfigPath if it exists. A path given explicitly must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func findConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return DefaultConfigPath, nil
	}
	return "", nil
}

// envMappings maps lower-cased variable names, without EnvPrefix, to config
// paths. Unknown variables are dropped.
var envMappings = map[string]string{
	"logging_level":     "logging.level",
	"logging_format":    "logging.format",
	"logging_caller":    "logging.caller",
	"log_level":         "logging.level",
	"log_format":        "logging.format",
	"parser_strict":     "parser.strict",
	"parser_max_memory": "parser.max_memory",
}

// envTransformFunc turns REQPARSE_PARSER_MAX_MEMORY into parser.max_memory.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
