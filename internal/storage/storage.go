// Package storage provides the durable local key-value storage that backs
// the cart, in the spirit of a browser's localStorage: string keys mapped to
// string values, each Set replacing the previous value whole.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Driver names a storage backend.
type Driver string

const (
	// DriverFile stores all keys in one JSON object file.
	DriverFile Driver = "file"
	// DriverSQLite stores keys in a SQLite table.
	DriverSQLite Driver = "sqlite"
	// DriverMemory keeps keys in process memory only.
	DriverMemory Driver = "memory"
)

// Drivers lists the supported drivers.
var Drivers = []Driver{DriverFile, DriverSQLite, DriverMemory}

// IsValid returns true if the driver is a known driver.
func (d Driver) IsValid() bool {
	switch d {
	case DriverFile, DriverSQLite, DriverMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// DefaultFilename returns the conventional file name for a driver's data
// inside the sweetcakes directory.
func (d Driver) DefaultFilename() string {
	switch d {
	case DriverSQLite:
		return "storage.db"
	case DriverMemory:
		return ""
	default:
		return "storage.json"
	}
}

// ErrCorrupt is returned when a storage file exists but cannot be parsed.
var ErrCorrupt = errors.New("storage file is corrupt")

// KV is a string key-value store.
type KV interface {
	// Get returns the value stored under key. ok is false if the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the backend.
	Close() error
}

// Open opens the storage backend for driver at path.
// path is ignored by the memory driver.
func Open(driver Driver, path string) (KV, error) {
	switch Driver(strings.ToLower(string(driver))) {
	case DriverFile, "":
		return NewFileStore(path), nil
	case DriverSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// PathIn returns the default storage path for driver inside dir.
func PathIn(dir string, driver Driver) string {
	name := driver.DefaultFilename()
	if name == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
