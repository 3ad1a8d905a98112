package config

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LogFormat selects the log handler.
type LogFormat int

const (
	TextLog LogFormat = iota // Human readable key=value lines
	JSONLog                  // One JSON object per line
)

// ParseLogFormat converts "text" or "json" to a LogFormat.
func ParseLogFormat(s string) (LogFormat, error) {
	switch s {
	case "text":
		return TextLog, nil
	case "json":
		return JSONLog, nil
	}
	return TextLog, fmt.Errorf("unknown log format %q: %w", s, errors.ErrInvalidConfig)
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is an apex/log level name: debug, info, warn, error, fatal
	Level string

	Format LogFormat
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: TextLog,
	}
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	if l.Format != TextLog && l.Format != JSONLog {
		return fmt.Errorf("log format %d: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}

// Handler returns the apex/log handler for the configured format.
func (l *LogConfig) Handler(w io.Writer) log.Handler {
	if l.Format == JSONLog {
		return json.New(w)
	}
	return text.New(w)
}

// Apply installs the configured handler and level on the default logger.
func (l *LogConfig) Apply(w io.Writer) error {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	log.SetHandler(l.Handler(w))
	log.SetLevel(level)
	return nil
}
