// Package logging provides structured logging for the mobileapp system using zerolog.
// Diagnostics (skipped catalog lines, missing user folders, failed saves) are
// written as structured events so they can be filtered by level, while menu
// text stays on the command's own output writer.
//
// Example usage:
//
//	log := logging.Default()
//	log.Warn().Int("line", 3).Msg("Skipping malformed line")
//
//	ctx := logging.WithUser(context.Background(), "alice")
//	logging.FromContext(ctx).Info().Msg("Search logged")
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = createDefaultLogger()
}

// createDefaultLogger creates a logger with default settings.
func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr

	if isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") != "" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}
