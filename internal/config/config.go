// Package config provides configuration data structures for sweetcakes.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/storage"
)

// Config represents the complete sweetcakes configuration loaded from .sweetcakes/config.yaml.
type Config struct {
	Storage StorageConfig `yaml:"storage" json:"storage" mapstructure:"storage"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog" mapstructure:"catalog"`
	Log     LogConfig     `yaml:"log"     json:"log"     mapstructure:"log"`
	Shop    ShopConfig    `yaml:"shop"    json:"shop"    mapstructure:"shop"`
}

// StorageConfig configures where the cart is persisted.
type StorageConfig struct {
	// Driver is the storage backend: file, sqlite or memory (default: file).
	Driver storage.Driver `yaml:"driver" json:"driver" mapstructure:"driver"`
	// Path is the storage location. Empty means the driver's default file in .sweetcakes/.
	Path string `yaml:"path,omitempty" json:"path,omitempty" mapstructure:"path"`
	// Key is the storage key holding the cart (default: sweet-cakes-cart).
	Key string `yaml:"key" json:"key" mapstructure:"key"`
}

// CatalogConfig configures the product catalog.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty means the built-in catalog.
	Path string `yaml:"path,omitempty" json:"path,omitempty" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory (default: .sweetcakes/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// JSON writes logs as JSON instead of text.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
	// Console mirrors logs to stderr.
	Console bool `yaml:"console" json:"console" mapstructure:"console"`
	// MaxFiles is the number of log files to keep (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// MaxAge is how long log files are kept (default: 168h).
	MaxAge time.Duration `yaml:"max_age" json:"max_age" mapstructure:"max_age"`
}

// ShopConfig configures how prices are presented.
type ShopConfig struct {
	// Currency is the symbol printed before prices (default: "$").
	Currency string `yaml:"currency" json:"currency" mapstructure:"currency"`
	// DeliveryFee is added to the order total. Zero is shown as "Free".
	DeliveryFee float64 `yaml:"delivery_fee" json:"delivery_fee" mapstructure:"delivery_fee"`
}

// Default values.
const (
	DefaultDir         = ".sweetcakes"
	DefaultLogLevel    = "info"
	DefaultMaxLogFiles = 10
	DefaultMaxLogAge   = 7 * 24 * time.Hour
	DefaultCurrency    = "$"
)

// DefaultLogDir is the default log directory.
var DefaultLogDir = filepath.Join(DefaultDir, "logs")

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: storage.DriverFile,
			Key:    cart.DefaultKey,
		},
		Log: LogConfig{
			Level:    DefaultLogLevel,
			Dir:      DefaultLogDir,
			MaxFiles: DefaultMaxLogFiles,
			MaxAge:   DefaultMaxLogAge,
		},
		Shop: ShopConfig{
			Currency: DefaultCurrency,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	c.Storage.Driver = storage.Driver(strings.ToLower(string(c.Storage.Driver)))
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaults.Log.Dir
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}

	if c.Shop.Currency == "" {
		c.Shop.Currency = defaults.Shop.Currency
	}
}

// StoragePath returns the configured storage path, or the driver's default
// file inside DefaultDir.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return storage.PathIn(DefaultDir, c.Storage.Driver)
}

// Logging converts the log section into a logging.Config.
func (c *Config) Logging() (*logging.Config, error) {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.LogDir = c.Log.Dir
	lc.JSONFormat = c.Log.JSON
	lc.Console = c.Log.Console
	lc.MaxLogFiles = c.Log.MaxFiles
	lc.MaxLogAge = c.Log.MaxAge
	return lc, nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Storage.Driver != "" && !c.Storage.Driver.IsValid() {
		names := make([]string, len(storage.Drivers))
		for i, d := range storage.Drivers {
			names[i] = fmt.Sprintf("'%s'", d)
		}
		errs = append(errs, &ValidationError{
			Field:   "storage.driver",
			Message: "must be " + strings.Join(names, ", "),
		})
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, &ValidationError{Field: "storage.key", Message: "must not be empty"})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if c.Shop.DeliveryFee < 0 {
		errs = append(errs, &ValidationError{Field: "shop.delivery_fee", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
