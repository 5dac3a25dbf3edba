package mobileapp

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/logging"
)

// options holds the configuration for a Client.
type options struct {
	dataDir     string
	catalog     string
	credentials string
	users       string
	atomicSave  bool
	maxGuesses  int
	logger      *zerolog.Logger
	now         func() time.Time
}

// Option is a function that configures a Client.
type Option func(*options)

func defaults() *options {
	return &options{
		dataDir:     ".",
		catalog:     constants.CatalogFile,
		credentials: constants.CredentialsFile,
		users:       constants.UsersDir,
		maxGuesses:  constants.MaxGuesses,
		logger:      logging.Default(),
		now:         time.Now,
	}
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolve joins relative paths onto the data directory.
func (o *options) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.dataDir, path)
}

func (o *options) catalogPath() string     { return o.resolve(o.catalog) }
func (o *options) credentialsPath() string { return o.resolve(o.credentials) }
func (o *options) usersDir() string        { return o.resolve(o.users) }

// WithDataDir sets the directory relative file paths resolve against.
func WithDataDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.dataDir = dir
		}
	}
}

// WithCatalogPath sets the movie catalog backing file.
func WithCatalogPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.catalog = path
		}
	}
}

// WithCredentialsPath sets the credentials file.
func WithCredentialsPath(path string) Option {
	return func(o *options) {
		if path != "" {
			o.credentials = path
		}
	}
}

// WithUsersDir sets the folder holding one directory per user.
func WithUsersDir(path string) Option {
	return func(o *options) {
		if path != "" {
			o.users = path
		}
	}
}

// WithAtomicSave writes the catalog through a temp file and rename.
func WithAtomicSave(enabled bool) Option {
	return func(o *options) {
		o.atomicSave = enabled
	}
}

// WithMaxGuesses sets the attempt limit of the number guessing game.
func WithMaxGuesses(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxGuesses = n
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces time.Now for every timestamped log line.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
