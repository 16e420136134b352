// Package logger builds the structured logger used across radar.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config mirrors the log block of radar.hcl plus overrides used by the CLI
// and tests.
type Config struct {
	// Level is parsed by ParseLevel; empty means info.
	Level string
	// Pretty switches to zerolog's console writer.
	Pretty bool
	// Output defaults to stderr.
	Output io.Writer
	// WithCaller adds file:line to every entry.
	WithCaller bool
}

// ParseLevel maps a level name to a zerolog level. Unknown names are info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger tagged with service=radar.
func New(cfg Config) zerolog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zlog := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "radar").
		Logger()

	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}
	return zlog
}

// Component returns a child logger for one subsystem.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// LogLoad records a dataset load.
func LogLoad(l zerolog.Logger, domain, file string, rows int, missing []string, duration time.Duration) {
	ev := l.Info().
		Str("domain", domain).
		Str("file", file).
		Int("rows", rows).
		Dur("duration_ms", duration)
	if len(missing) > 0 {
		ev = ev.Strs("missing_columns", missing)
	}
	ev.Msg("dataset loaded")
}
