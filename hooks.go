package mobileapp

import (
	"sync"

	"github.com/agentstation/mobileapp/pkg/movies"
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*client)(nil)

// Hooks provides event callback registration.
type Hooks interface {
	// OnMovieAdded registers a callback for movies added through AddMovie
	OnMovieAdded(MovieAddedHook)

	// OnUserRegistered registers a callback for new accounts
	OnUserRegistered(UserRegisteredHook)
}

// Hook function types
type (
	// MovieAddedHook is called after a movie is added and saved
	MovieAddedHook func(entry movies.Entry)

	// UserRegisteredHook is called after an account is created
	UserRegisteredHook func(username string)
)

// hooks manages event callbacks.
type hooks struct {
	mu               sync.RWMutex
	onMovieAdded     []MovieAddedHook
	onUserRegistered []UserRegisteredHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnMovieAdded registers a callback for when movies are added.
func (c *client) OnMovieAdded(fn MovieAddedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onMovieAdded = append(c.hooks.onMovieAdded, fn)
}

// OnUserRegistered registers a callback for when accounts are created.
func (c *client) OnUserRegistered(fn UserRegisteredHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onUserRegistered = append(c.hooks.onUserRegistered, fn)
}

func (h *hooks) movieAdded(entry movies.Entry) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onMovieAdded {
		hook(entry)
	}
}

func (h *hooks) userRegistered(username string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onUserRegistered {
		hook(username)
	}
}
