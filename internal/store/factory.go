package store

import (
	"fmt"
	"path/filepath"

	"gramgrid/internal/config"
	"gramgrid/internal/village"
)

// NewStoreFromConfig creates a Store implementation based on the config type.
func NewStoreFromConfig(cfg config.StoreConfig) (village.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("filesystem store requires data_dir to be set")
		}
		return NewFileStore(cfg.DataDir)
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("sqlite store requires data_dir to be set")
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, "gramgrid.db"))
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
