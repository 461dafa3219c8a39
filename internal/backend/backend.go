// Package backend creates the configured kv.Store implementation.
package backend

import (
	"fmt"

	"siga/internal/config"
	"siga/internal/kv"
	applog "siga/internal/log"
)

// Type represents the storage backend type
type Type string

const (
	MemoryBackend   Type = "memory"
	JSONFileBackend Type = "jsonfile"
	SQLiteBackend   Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, JSONFileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the store instance and optional cleanup function
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Factory creates kv stores based on configuration
type Factory struct {
	logger *applog.Logger
}

func NewFactory(logger *applog.Logger) *Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent("backend")}
}

// Create builds the kv.Store selected by cfg.DataBackend.
func (f *Factory) Create(cfg *config.Config) (*Result, error) {
	bt := Type(cfg.DataBackend)
	if !bt.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch bt {
	case SQLiteBackend:
		s, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: s, Cleanup: s.Close}, nil

	case JSONFileBackend:
		s, err := kv.NewJSONFile(cfg.DataDirectory)
		if err != nil {
			return nil, fmt.Errorf("initialize jsonfile store: %w", err)
		}
		f.logger.Info("Initialized jsonfile backend", "data_directory", cfg.DataDirectory)
		return &Result{Store: s, Cleanup: nil}, nil

	default:
		f.logger.Info("Initialized memory backend")
		return &Result{Store: kv.NewMemory(), Cleanup: nil}, nil
	}
}
