// Package logging builds the zerolog loggers used by providers and transports
package logging

import (
	"github.com/rs/zerolog"
	"io"
	"os"
	"time"
)

type Config struct {
	Level zerolog.Level
	// Pretty uses the console writer rather than JSON lines
	Pretty     bool
	Output     io.Writer
	TimeFormat string
	Component  string
}

func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// New creates a logger - the component (when set) is added as a "component" field
func New(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}
	output := cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}
	zctx := zerolog.New(output).Level(cfg.Level).With().Timestamp()
	if cfg.Component != "" {
		zctx = zctx.Str("component", cfg.Component)
	}
	return zctx.Logger()
}

// ParseLevel parses a level name ("debug", "info", "warn" etc.) - an empty name is info
func ParseLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(level)
}

// Nop is a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
