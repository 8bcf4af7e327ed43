// Package logging owns the zerolog logger of the reqparse binaries.
//
// The CLI configures it once from config.Config, and Middleware hands a
// per-request child of it to reqparse.Handler through the request context:
//
//	logging.Init(cfg.LoggingOptions())
//	handler := logging.Middleware(reqparse.Handler(parser, opts, fn))
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level, encoding and destination of log output.
type Config struct {
	Level     string    // trace, debug, info, warn, error, fatal, panic or disabled
	Format    string    // json or console
	Caller    bool      // Add file:line to every entry
	Timestamp bool      // Add a "time" field to every entry
	Output    io.Writer // Defaults to os.Stderr
}

// DefaultConfig logs JSON at info level to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	current zerolog.Logger
	mu      sync.RWMutex
)

func init() {
	current = build(DefaultConfig())
}

// Init replaces the shared logger with one built from cfg. Empty fields take
// their DefaultConfig value.
func Init(cfg Config) {
	l := build(cfg)

	mu.Lock()
	defer mu.Unlock()
	current = l
}

func build(cfg Config) zerolog.Logger {
	defaults := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = defaults.Level
	}
	if cfg.Output == nil {
		cfg.Output = defaults.Output
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.TimeOnly}
	}

	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// parseLevel maps a config level name to zerolog. Unknown names mean info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "disabled":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// Logger returns the shared logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetLogger swaps the shared logger, typically for one writing to a buffer.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

// WithComponent returns the shared logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", component).Logger()
}
