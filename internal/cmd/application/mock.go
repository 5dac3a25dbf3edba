// Package application provides a test double for appcontext.Interface.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/mobileapp"
	"github.com/agentstation/mobileapp/internal/appcontext"
)

// Mock provides a mock implementation of appcontext.Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	client, _ := mobileapp.New(mobileapp.WithDataDir(t.TempDir()))
//	mock := &application.Mock{
//	    ClientFunc: func() (mobileapp.Client, error) {
//	        return client, nil
//	    },
//	}
//	cmd := movies.NewCommand(mock)
//	// ... test command
type Mock struct {
	ClientFunc       func() (mobileapp.Client, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (mobileapp.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*Mock)(nil)
