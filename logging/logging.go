// Package logging configures the process-wide structured logger using
// bolt.
package logging

import (
	"os"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	defaultLogger *bolt.Logger
	once          sync.Once
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string
}

// DefaultConfig returns a console logger at info level.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "console"}
}

func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// Init initializes the default logger with the given configuration.
func Init(config Config) {
	once.Do(func() {
		var handler bolt.Handler
		if config.Format == "json" {
			handler = bolt.NewJSONHandler(os.Stderr)
		} else {
			handler = bolt.NewConsoleHandler(os.Stderr)
		}
		defaultLogger = bolt.New(handler).SetLevel(parseLevel(config.Level))
	})
}

// Get returns the default logger, initializing it if necessary.
func Get() *bolt.Logger {
	if defaultLogger == nil {
		Init(DefaultConfig())
	}
	return defaultLogger
}
