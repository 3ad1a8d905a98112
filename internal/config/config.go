// Package config provides configuration for the chess server and tools.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Server  *ServerConfig
	Storage *StorageConfig
	Log     *LogConfig
	Perft   *PerftConfig

	// LogFile receives log output.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:  NewServerConfig(),
		Storage: NewStorageConfig(),
		Log:     NewLogConfig(),
		Perft:   NewPerftConfig(),
		LogFile: os.Stderr,
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
