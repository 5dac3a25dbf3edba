// Package app provides the application context and dependency management
// for the mobileapp CLI. It centralizes configuration, logging and the
// lazily created launcher client, and builds the root cobra command.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/mobileapp"
	"github.com/agentstation/mobileapp/internal/appcontext"
	"github.com/agentstation/mobileapp/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the mobileapp application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Standard streams handed to the root command
	in  io.Reader
	out io.Writer
	err io.Writer

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client mobileapp.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		in:      os.Stdin,
		out:     os.Stdout,
		err:     os.Stderr,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, which may be empty.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Client returns the launcher client, creating it on first use. The catalog
// is loaded exactly once per process.
func (a *App) Client() (mobileapp.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	c, err := mobileapp.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}
	a.client = c
	return c, nil
}

// Shutdown releases application resources. The catalog is saved on every
// mutation, so there is nothing to flush.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return ctx.Err()
}

func (a *App) buildClientOptions() []mobileapp.Option {
	return []mobileapp.Option{
		mobileapp.WithDataDir(a.config.DataDir),
		mobileapp.WithCatalogPath(a.config.CatalogFile),
		mobileapp.WithCredentialsPath(a.config.CredentialsFile),
		mobileapp.WithUsersDir(a.config.UsersDir),
		mobileapp.WithAtomicSave(a.config.AtomicSave),
		mobileapp.WithMaxGuesses(a.config.MaxGuesses),
		mobileapp.WithLogger(a.logger),
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "config must not be nil", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c mobileapp.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}

// WithIO replaces the standard streams the commands read from and write to.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.in, a.out, a.err = in, out, errOut
		return nil
	}
}
