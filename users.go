package mobileapp

import (
	"context"
	"fmt"

	"github.com/agentstation/mobileapp/pkg/accounts"
	"github.com/agentstation/mobileapp/pkg/logging"
	"github.com/agentstation/mobileapp/pkg/sessionlog"
	"github.com/agentstation/mobileapp/pkg/todo"
)

// Compile-time interface check to ensure proper implementation.
var _ Users = (*client)(nil)

// Users handles registration, login and per-user workspaces.
type Users interface {
	// Register creates an account and bootstraps the user's folder
	Register(ctx context.Context, username, password string) error

	// Login checks the credentials and records the login
	Login(ctx context.Context, username, password string) error

	// Logout records the end of a session
	Logout(ctx context.Context, username string)

	// Bootstrap creates the user's folder and seed files when absent
	Bootstrap(ctx context.Context, username string) (string, error)

	// Todo opens the to-do list of username
	Todo(username string) (*todo.List, error)

	// Accounts returns the credentials store
	Accounts() *accounts.Store

	// Sessions returns the per-user log writer
	Sessions() *sessionlog.Logger
}

// Register creates the account, bootstraps the folder and logs the event.
func (c *client) Register(ctx context.Context, username, password string) error {
	if err := c.accounts.Register(username, password); err != nil {
		return err
	}
	if _, err := c.Bootstrap(ctx, username); err != nil {
		return err
	}
	c.logInteraction(ctx, username, fmt.Sprintf("User %s registered an account.", username))
	logging.FromContext(ctx).Info().Str("user", username).Msg("Account registered")
	c.hooks.userRegistered(username)
	return nil
}

// Login authenticates the user. Accounts created before their folder existed
// get one on first login.
func (c *client) Login(ctx context.Context, username, password string) error {
	if err := c.accounts.Authenticate(username, password); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("user", username).Msg("Login rejected")
		return err
	}
	if _, err := c.Bootstrap(ctx, username); err != nil {
		return err
	}
	c.logInteraction(ctx, username, fmt.Sprintf("User %s logged in.", username))
	return nil
}

// Logout records the end of a session.
func (c *client) Logout(ctx context.Context, username string) {
	c.logInteraction(ctx, username, fmt.Sprintf("User %s logged out.", username))
}

// Bootstrap creates the user's folder and seed files when absent.
func (c *client) Bootstrap(ctx context.Context, username string) (string, error) {
	dir, err := c.sessions.Bootstrap(username)
	if err != nil {
		return "", err
	}
	logging.FromContext(ctx).Debug().Str("user", username).Str("path", dir).Msg("User folder ready")
	return dir, nil
}

// Todo opens the to-do list stored in the user's folder.
func (c *client) Todo(username string) (*todo.List, error) {
	dir, err := c.sessions.Dir(username)
	if err != nil {
		return nil, err
	}
	return todo.Open(dir, todo.WithClock(c.options.now))
}

// logInteraction appends to the user log. Failures are logged, not returned.
func (c *client) logInteraction(ctx context.Context, username, message string) {
	if err := c.sessions.LogInteraction(username, message); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("user", username).Msg("Interaction not logged")
	}
}
