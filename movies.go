package mobileapp

import (
	"context"
	"fmt"

	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/movies"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog = (*client)(nil)
	_ Movies  = (*client)(nil)
)

// Catalog provides read access to the loaded catalog.
type Catalog interface {
	// Entries returns every movie in display order
	Entries() []movies.Entry

	// Movie returns the movie stored under id
	Movie(id int) (movies.Movie, bool)

	// Diagnostics returns the lines skipped by the last load
	Diagnostics() []movies.Diagnostic

	// CatalogPath returns the backing file
	CatalogPath() string
}

// Movies handles search and mutation of the catalog.
type Movies interface {
	// Search returns the movies whose name contains query, ignoring case.
	// When user is set the outcome is appended to the user's search log.
	Search(ctx context.Context, user, query string) []movies.Entry

	// AddMovie inserts a movie under the next free id and saves the catalog.
	AddMovie(ctx context.Context, user, name, genre string, year int) (movies.Entry, error)
}

// Entries returns every movie in display order.
func (c *client) Entries() []movies.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Entries()
}

// Movie returns the movie stored under id.
func (c *client) Movie(id int) (movies.Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Get(id)
}

// Diagnostics returns the lines skipped by the last load.
func (c *client) Diagnostics() []movies.Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]movies.Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// CatalogPath returns the backing file.
func (c *client) CatalogPath() string {
	return c.options.catalogPath()
}

// Search runs a case-insensitive substring match over movie names.
func (c *client) Search(ctx context.Context, user, query string) []movies.Entry {
	c.mu.RLock()
	results := c.catalog.Search(query)
	c.mu.RUnlock()

	logging.FromContext(ctx).Debug().Str("query", query).Int("matches", len(results)).Msg("Movie search")
	if user != "" {
		c.sessions.LogSearch(ctx, user, query, results)
	}
	return results
}

// AddMovie inserts a movie and rewrites the backing file. When the save
// fails the movie stays in memory, the returned entry is still valid and the
// error reports the failed write.
func (c *client) AddMovie(ctx context.Context, user, name, genre string, year int) (movies.Entry, error) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	id, err := c.catalog.Add(name, genre, year)
	c.mu.Unlock()

	if id == 0 {
		return movies.Entry{}, err
	}
	entry := movies.Entry{ID: id, Movie: movies.Movie{Name: name, Genre: genre, Year: year}}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("Movie added in memory but not saved")
		return entry, err
	}

	log.Info().Int("id", id).Str("name", name).Msg("Movie added")
	if user != "" {
		c.logInteraction(ctx, user, fmt.Sprintf("Movie '%s' added.", name))
	}
	c.hooks.movieAdded(entry)
	return entry, nil
}
