// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with application.Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/mobileapp"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Client returns the launcher client, creating it lazily on first use.
	// The catalog is loaded once per process.
	Client() (mobileapp.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
