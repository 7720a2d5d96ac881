package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wexinc/sweetcakes/internal/storage"
)

const (
	// DefaultConfigPath is the default path to the config file relative to the working directory.
	DefaultConfigPath = ".sweetcakes/config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "SWEETCAKES"
)

// ErrNotFound is wrapped by LoadError when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies defaults,
// merges environment variables, and validates the result.
// If path is empty, it uses DefaultConfigPath relative to the working directory.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     ErrNotFound,
		}
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	// Start with defaults
	cfg := NewConfig()

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	return l.finish(cfg, path)
}

// LoadOrDefault loads the config file at path, falling back to defaults
// (plus environment overrides) when the file does not exist.
func (l *Loader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if path == "" {
		path = DefaultConfigPath
	}
	return l.finish(NewConfig(), path)
}

// LoadConfigFromDir loads configuration from .sweetcakes/config.yaml in the specified directory.
func (l *Loader) LoadConfigFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultConfigPath)
	return l.LoadConfig(path)
}

func (l *Loader) finish(cfg *Config, path string) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "invalid environment override",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	// Storage settings
	if v := os.Getenv(EnvPrefix + "_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = storage.Driver(v)
	}
	if v := os.Getenv(EnvPrefix + "_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvPrefix + "_STORAGE_KEY"); v != "" {
		cfg.Storage.Key = v
	}

	if v := os.Getenv(EnvPrefix + "_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}

	// Log settings
	if v := os.Getenv(EnvPrefix + "_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOG_JSON"); v != "" {
		cfg.Log.JSON = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_CONSOLE"); v != "" {
		cfg.Log.Console = parseBool(v)
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_FILES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s_LOG_MAX_FILES: %w", EnvPrefix, err)
		}
		cfg.Log.MaxFiles = n
	}
	if v := os.Getenv(EnvPrefix + "_LOG_MAX_AGE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s_LOG_MAX_AGE: %w", EnvPrefix, err)
		}
		cfg.Log.MaxAge = d
	}

	// Shop settings
	if v := os.Getenv(EnvPrefix + "_SHOP_CURRENCY"); v != "" {
		cfg.Shop.Currency = v
	}
	if v := os.Getenv(EnvPrefix + "_SHOP_DELIVERY_FEE"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s_SHOP_DELIVERY_FEE: %w", EnvPrefix, err)
		}
		cfg.Shop.DeliveryFee = fee
	}

	return nil
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
// Returns false for anything else.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc creates a decode hook for our custom types.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		switch to {
		case reflect.TypeOf(storage.Driver("")):
			return storage.Driver(strings.ToLower(data.(string))), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// LoadFromDir is a convenience function that loads configuration from a directory.
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader().LoadConfigFromDir(dir)
}

// LoadOrDefault is a convenience function for Loader.LoadOrDefault.
func LoadOrDefault(path string) (*Config, error) {
	return NewLoader().LoadOrDefault(path)
}

const fileHeader = "# sweetcakes configuration\n# Environment variables prefixed with " + EnvPrefix + "_ override these values.\n\n"

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
