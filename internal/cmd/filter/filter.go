// Package filter narrows catalog listings by genre and release year.
package filter

import (
	"golang.org/x/text/cases"

	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/movies"
)

// MovieFilter applies filters to catalog entries
type MovieFilter struct {
	Genre   string // exact match, ignoring case
	MinYear int
	MaxYear int
}

// Validate rejects an inverted year range.
func (f *MovieFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.MinYear > 0 && f.MaxYear > 0 && f.MinYear > f.MaxYear {
		return errors.NewValidationError("year", f.MinYear, "--from must not be after --to")
	}
	return nil
}

// Apply filters a slice of entries, keeping their order.
func (f *MovieFilter) Apply(entries []movies.Entry) []movies.Entry {
	if f == nil || f.isEmpty() {
		return entries
	}

	filtered := make([]movies.Entry, 0, len(entries))
	for _, e := range entries {
		if f.matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (f *MovieFilter) isEmpty() bool {
	return f.Genre == "" && f.MinYear == 0 && f.MaxYear == 0
}

func (f *MovieFilter) matches(e movies.Entry) bool {
	if f.Genre != "" && !f.matchesGenre(e) {
		return false
	}
	if f.MinYear > 0 && e.Year < f.MinYear {
		return false
	}
	if f.MaxYear > 0 && e.Year > f.MaxYear {
		return false
	}
	return true
}

func (f *MovieFilter) matchesGenre(e movies.Entry) bool {
	fold := cases.Fold()
	return fold.String(e.Genre) == fold.String(f.Genre)
}
