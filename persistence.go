package mobileapp

import (
	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/save"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save writes the catalog. Without options it rewrites the backing file.
	Save(opts ...save.Option) error

	// Reload discards the in-memory catalog and parses the backing file again.
	Reload() error
}

// Save persists the current catalog.
func (c *client) Save(opts ...save.Option) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.catalog.Save(opts...); err != nil {
		return errors.WrapResource("save", "catalog", c.catalog.Path(), err)
	}
	return nil
}

// Reload parses the backing file again and replaces the catalog.
func (c *client) Reload() error {
	return c.load()
}
