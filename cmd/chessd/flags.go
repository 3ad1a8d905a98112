// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Server options
	addr         = flag.String("addr", ":8080", "Listen address")
	readTimeout  = flag.Duration("read-timeout", 0, "HTTP read timeout (0 = default)")
	writeTimeout = flag.Duration("write-timeout", 0, "HTTP write timeout (0 = default)")
	maxGames     = flag.Int("max-games", 0, "Maximum live games (0 = unlimited)")
	noAccessLog  = flag.Bool("no-access-log", false, "Disable the HTTP access log")

	// Storage options
	dataDir  = flag.String("data", "", "Game database directory (default: chessd-data)")
	inMemory = flag.Bool("in-memory", false, "Keep games in memory only")
	noStore  = flag.Bool("no-store", false, "Disable game persistence")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "text", "Log format: text or json")
	logFile   = flag.String("l", "", "Write logs to this file (default: stderr)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyServerFlags(cfg)
	applyStorageFlags(cfg)
	return applyLogFlags(cfg)
}

// applyServerFlags configures the HTTP server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	if *readTimeout > 0 {
		cfg.Server.ReadTimeout = *readTimeout
	}
	if *writeTimeout > 0 {
		cfg.Server.WriteTimeout = *writeTimeout
	}
	cfg.Server.MaxGames = *maxGames
	cfg.Server.AccessLog = !*noAccessLog
}

// applyStorageFlags configures game persistence.
func applyStorageFlags(cfg *config.Config) {
	if *dataDir != "" {
		cfg.Storage.Dir = *dataDir
	}
	cfg.Storage.InMemory = *inMemory
	cfg.Storage.Disabled = *noStore
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config) error {
	format, err := config.ParseLogFormat(*logFormat)
	if err != nil {
		return err
	}
	cfg.Log.Format = format
	cfg.Log.Level = *logLevel
	return nil
}
