// Package mobileapp provides the main entry point for the mobile app launcher.
// A Client owns one loaded movie catalog together with the account store and
// the per-user session logs, and exposes the operations the interactive menu
// and the non-interactive commands share.
//
// Example usage:
//
//	app, err := mobileapp.New(mobileapp.WithDataDir("./data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app.OnMovieAdded(func(e movies.Entry) {
//	    log.Printf("added %d. %s", e.ID, e.Name)
//	})
//
//	if err := app.Login(ctx, "alice", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range app.Search(ctx, "alice", "matrix") {
//	    fmt.Println(e.Movie)
//	}
package mobileapp

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/mobileapp/pkg/accounts"
	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/movies"
	"github.com/agentstation/mobileapp/pkg/sessionlog"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client is the launcher facade.
type Client interface {

	// Catalog provides read access to the loaded catalog
	Catalog

	// Movies handles search and mutation of the catalog
	Movies

	// Users handles registration, login and per-user workspaces
	Users

	// Apps runs the calculator and records game results
	Apps

	// Persistence handles catalog persistence operations
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options

	// catalog is loaded once in New and guarded by mu
	mu          sync.RWMutex
	catalog     *movies.Catalog
	diagnostics []movies.Diagnostic

	accounts *accounts.Store
	sessions *sessionlog.Logger
	hooks    *hooks
}

// New creates a Client and loads the catalog backing file. A missing file
// and malformed lines are logged and do not fail; any other read error does.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)

	c := &client{
		options:  o,
		accounts: accounts.New(o.credentialsPath()),
		sessions: sessionlog.New(o.usersDir(), sessionlog.WithClock(o.now)),
		hooks:    newHooks(),
	}

	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *client) load() error {
	log := c.options.logger
	path := c.options.catalogPath()

	log.Debug().Str("path", path).Msg("Loading movie catalog")
	catalog, diags, err := movies.Load(path, movies.WithAtomicSave(c.options.atomicSave))
	if err != nil {
		return errors.WrapResource("load", "catalog", path, err)
	}
	logDiagnostics(log, path, diags)
	log.Debug().Int("movies", catalog.Len()).Int("skipped", len(diags)).Msg("Movie catalog loaded")

	c.mu.Lock()
	c.catalog = catalog
	c.diagnostics = diags
	c.mu.Unlock()
	return nil
}

func logDiagnostics(log *zerolog.Logger, path string, diags []movies.Diagnostic) {
	for _, d := range diags {
		switch d.Kind {
		case movies.MissingFile:
			log.Info().Str("path", path).Msg(d.String())
		default:
			log.Warn().Err(d.Err).Str("path", path).Int("line", d.Line).Str("text", d.Text).Msg(d.String())
		}
	}
}

// Accounts returns the credentials store.
func (c *client) Accounts() *accounts.Store {
	return c.accounts
}

// Sessions returns the per-user log writer.
func (c *client) Sessions() *sessionlog.Logger {
	return c.sessions
}
