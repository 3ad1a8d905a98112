package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// StorageConfig holds settings for the persistent game store.
type StorageConfig struct {
	// Dir is the badger database directory
	Dir string

	// InMemory keeps the store in memory; Dir is ignored
	InMemory bool

	// Disabled runs the server without persistence
	Disabled bool
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{
		Dir: "chessd-data",
	}
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if !s.Disabled && !s.InMemory && s.Dir == "" {
		return fmt.Errorf("storage directory is empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
