// Package kv provides the durable string-keyed store the configuration store
// writes to. Backends guarantee atomicity per key and nothing more.
package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/earning-formula/pkg/constants"
	"go.uber.org/zap"
)

// ErrClosed is returned by a backend used after Close.
var ErrClosed = errors.New("kv: backend closed")

// Backend is a string-keyed store with get/set/remove semantics.
type Backend interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the resources held by the backend.
	Close() error
}

// Config selects and locates a backend.
type Config struct {
	Backend string `mapstructure:"backend" yaml:"backend,omitempty"` // memory, file, sqlite
	Path    string `mapstructure:"path" yaml:"path,omitempty"`
}

// Open creates the backend described by cfg. An empty path resolves to a file
// below ~/.earning-formula.
func Open(ctx context.Context, logger *zap.Logger, cfg Config) (Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = constants.DefaultStorageBackend
	}

	switch backend {
	case constants.StorageBackendMemory:
		logger.Debug("using in-memory storage",
			zap.String("op", "kv.Open"),
		)
		return NewMemory(), nil
	case constants.StorageBackendFile:
		path, err := resolvePath(cfg.Path, constants.DefaultFileStorageName)
		if err != nil {
			return nil, err
		}
		logger.Debug("using file storage",
			zap.String("op", "kv.Open"),
			zap.String("path", path),
		)
		return NewFile(path)
	case constants.StorageBackendSQLite:
		path, err := resolvePath(cfg.Path, constants.DefaultSQLiteStorageName)
		if err != nil {
			return nil, err
		}
		logger.Debug("using sqlite storage",
			zap.String("op", "kv.Open"),
			zap.String("path", path),
		)
		return NewSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}

// DefaultDir returns the root data directory (~/.earning-formula).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, constants.DefaultDataDir), nil
}

func resolvePath(path, defaultName string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return path, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultName), nil
}
