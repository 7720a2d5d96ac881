package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wexinc/sweetcakes/internal/cart"
	"github.com/wexinc/sweetcakes/internal/logging"
	"github.com/wexinc/sweetcakes/internal/storage"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Storage.Driver != storage.DriverFile {
		t.Errorf("expected storage.driver %q, got %q", storage.DriverFile, cfg.Storage.Driver)
	}
	if cfg.Storage.Key != cart.DefaultKey {
		t.Errorf("expected storage.key %q, got %q", cart.DefaultKey, cfg.Storage.Key)
	}
	if cfg.Storage.Path != "" {
		t.Errorf("expected empty storage.path, got %q", cfg.Storage.Path)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected empty catalog.path, got %q", cfg.Catalog.Path)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected log.level %q, got %q", DefaultLogLevel, cfg.Log.Level)
	}
	if cfg.Log.Dir != DefaultLogDir {
		t.Errorf("expected log.dir %q, got %q", DefaultLogDir, cfg.Log.Dir)
	}
	if cfg.Log.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("expected log.max_files %d, got %d", DefaultMaxLogFiles, cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != DefaultMaxLogAge {
		t.Errorf("expected log.max_age %v, got %v", DefaultMaxLogAge, cfg.Log.MaxAge)
	}
	if cfg.Shop.Currency != DefaultCurrency {
		t.Errorf("expected shop.currency %q, got %q", DefaultCurrency, cfg.Shop.Currency)
	}
	if cfg.Shop.DeliveryFee != 0 {
		t.Errorf("expected free delivery by default, got %v", cfg.Shop.DeliveryFee)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.ApplyDefaults()

	if cfg.Storage.Driver != storage.DriverFile {
		t.Errorf("expected storage.driver %q, got %q", storage.DriverFile, cfg.Storage.Driver)
	}
	if cfg.Storage.Key != cart.DefaultKey {
		t.Errorf("expected storage.key %q, got %q", cart.DefaultKey, cfg.Storage.Key)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("expected log.level %q, got %q", DefaultLogLevel, cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != DefaultMaxLogFiles {
		t.Errorf("expected log.max_files %d, got %d", DefaultMaxLogFiles, cfg.Log.MaxFiles)
	}
	if cfg.Log.MaxAge != DefaultMaxLogAge {
		t.Errorf("expected log.max_age %v, got %v", DefaultMaxLogAge, cfg.Log.MaxAge)
	}
	if cfg.Shop.Currency != DefaultCurrency {
		t.Errorf("expected shop.currency %q, got %q", DefaultCurrency, cfg.Shop.Currency)
	}
}

func TestConfig_ApplyDefaults_PreservesExistingValues(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Driver: "SQLite", Key: "my-cart", Path: "/tmp/cart.db"},
		Log:     LogConfig{Level: "debug", MaxFiles: 3, MaxAge: time.Hour},
		Shop:    ShopConfig{Currency: "€", DeliveryFee: 4.5},
	}

	cfg.ApplyDefaults()

	if cfg.Storage.Driver != storage.DriverSQLite {
		t.Errorf("expected storage.driver to be normalized to sqlite, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Key != "my-cart" {
		t.Errorf("expected storage.key to be preserved, got %q", cfg.Storage.Key)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log.level to be preserved, got %q", cfg.Log.Level)
	}
	if cfg.Log.MaxFiles != 3 || cfg.Log.MaxAge != time.Hour {
		t.Errorf("expected log limits to be preserved, got %d / %v", cfg.Log.MaxFiles, cfg.Log.MaxAge)
	}
	if cfg.Shop.Currency != "€" || cfg.Shop.DeliveryFee != 4.5 {
		t.Errorf("expected shop settings to be preserved, got %+v", cfg.Shop)
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }, "storage.driver"},
		{"empty key", func(c *Config) { c.Storage.Key = "  " }, "storage.key"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"negative max files", func(c *Config) { c.Log.MaxFiles = -1 }, "log.max_files"},
		{"negative max age", func(c *Config) { c.Log.MaxAge = -time.Minute }, "log.max_age"},
		{"negative delivery fee", func(c *Config) { c.Shop.DeliveryFee = -2 }, "shop.delivery_fee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.field {
				t.Errorf("expected one error for %q, got %v", tt.field, verrs)
			}
		})
	}
}

func TestConfig_Validate_DriverMessageListsDrivers(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Driver = "redis"

	err := cfg.Validate()
	for _, d := range storage.Drivers {
		if !strings.Contains(err.Error(), string(d)) {
			t.Errorf("expected %q in message %q", d, err.Error())
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	if got := (ValidationErrors{}).Error(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}

	one := ValidationErrors{{Field: "a", Message: "bad"}}
	if got := one.Error(); got != "a: bad" {
		t.Errorf("expected 'a: bad', got %q", got)
	}

	two := ValidationErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	want := "multiple validation errors:\n  - a: bad\n  - b: worse"
	if got := two.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestConfig_StoragePath(t *testing.T) {
	tests := []struct {
		driver storage.Driver
		path   string
		want   string
	}{
		{storage.DriverFile, "", filepath.Join(DefaultDir, "storage.json")},
		{storage.DriverSQLite, "", filepath.Join(DefaultDir, "storage.db")},
		{storage.DriverMemory, "", ""},
		{storage.DriverFile, "/var/lib/cart.json", "/var/lib/cart.json"},
	}

	for _, tt := range tests {
		cfg := NewConfig()
		cfg.Storage.Driver = tt.driver
		cfg.Storage.Path = tt.path

		if got := cfg.StoragePath(); got != tt.want {
			t.Errorf("StoragePath(%s, %q) = %q, want %q", tt.driver, tt.path, got, tt.want)
		}
	}
}

func TestConfig_Logging(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "warn"
	cfg.Log.JSON = true
	cfg.Log.Console = true
	cfg.Log.MaxFiles = 4
	cfg.Log.MaxAge = 48 * time.Hour

	lc, err := cfg.Logging()
	if err != nil {
		t.Fatalf("Logging() error: %v", err)
	}
	if lc.Level != logging.LevelWarn {
		t.Errorf("expected level warn, got %v", lc.Level)
	}
	if !lc.JSONFormat || !lc.Console {
		t.Errorf("expected json and console enabled, got %+v", lc)
	}
	if lc.MaxLogFiles != 4 || lc.MaxLogAge != 48*time.Hour {
		t.Errorf("expected log limits to carry over, got %d / %v", lc.MaxLogFiles, lc.MaxLogAge)
	}
	if lc.FilePrefix != logging.DefaultFilePrefix {
		t.Errorf("expected file prefix %q, got %q", logging.DefaultFilePrefix, lc.FilePrefix)
	}

	cfg.Log.Level = "loud"
	if _, err := cfg.Logging(); err == nil {
		t.Error("expected error for unknown level")
	}
}
