// Package save holds the options accepted by catalog save operations.
package save

import (
	"fmt"
	"io"
	"strings"
)

// Format is the encoding used when a catalog is written out.
type Format int

// Format constants.
const (
	// FormatText is the pipe-delimited backing file format.
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatText, fmt.Errorf("unknown save format %q: must be one of text, json, yaml", s)
}

// Options is the configuration for save.
type Options struct {
	path   string
	writer io.Writer
	format Format
	atomic bool
}

// Path returns the path for the save options.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the writer for the save options.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the format for the save options.
func (s *Options) Format() Format {
	return s.format
}

// Atomic reports whether a path save goes through a temp file and rename.
func (s *Options) Atomic() bool {
	return s.atomic
}

// Defaults returns the default save options: text format, truncate in place.
func Defaults() *Options {
	return &Options{
		format: FormatText,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs. A writer takes precedence over a path.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}

// WithAtomic writes to a sibling temp file and renames it over the destination.
func WithAtomic(enabled bool) Option {
	return func(s *Options) {
		s.atomic = enabled
	}
}
