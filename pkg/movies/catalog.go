package movies

import (
	"strings"

	"github.com/agentstation/mobileapp/pkg/errors"
)

// Catalog maps positive integer ids to movies and remembers insertion order
// for display. A Catalog is owned by one session and is not safe for
// concurrent use.
type Catalog struct {
	path    string
	atomic  bool
	order   []int
	records map[int]Movie
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithAtomicSave makes every save write a temp file and rename it over the
// backing file instead of truncating it in place.
func WithAtomicSave(enabled bool) Option {
	return func(c *Catalog) {
		c.atomic = enabled
	}
}

// New creates an empty catalog persisted to path.
func New(path string, opts ...Option) *Catalog {
	c := &Catalog{
		path:    path,
		records: make(map[int]Movie),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the backing file of the catalog.
func (c *Catalog) Path() string {
	return c.path
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the movie stored under id.
func (c *Catalog) Get(id int) (Movie, bool) {
	m, ok := c.records[id]
	return m, ok
}

// Entries returns every record in insertion order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, Entry{ID: id, Movie: c.records[id]})
	}
	return entries
}

// MaxID returns the largest id in the catalog, or 0 when empty.
func (c *Catalog) MaxID() int {
	maxID := 0
	for _, id := range c.order {
		if id > maxID {
			maxID = id
		}
	}
	return maxID
}

// NextID returns the id the next Add will use. Gaps below the maximum are
// never reused.
func (c *Catalog) NextID() int {
	return c.MaxID() + 1
}

// Add inserts a movie under NextID and rewrites the backing file. When the
// save fails the record stays in memory and the error is returned; the
// caller decides whether to retry.
func (c *Catalog) Add(name, genre string, year int) (int, error) {
	if err := validateField("name", name); err != nil {
		return 0, err
	}
	if err := validateField("genre", genre); err != nil {
		return 0, err
	}
	id := c.NextID()
	if err := c.insert(id, Movie{Name: name, Genre: genre, Year: year}); err != nil {
		return 0, err
	}
	if err := c.Save(); err != nil {
		return id, errors.WrapResource("save", "catalog", c.path, err)
	}
	return id, nil
}

// validateField rejects values that would split one record over several lines.
func validateField(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return errors.NewValidationError(field, value, "must not contain line breaks")
	}
	return nil
}

func (c *Catalog) insert(id int, m Movie) error {
	if id <= 0 {
		return errors.NewValidationError("id", id, "must be positive")
	}
	if _, exists := c.records[id]; exists {
		return &errors.AlreadyExistsError{Resource: "movie id", ID: itoa(id)}
	}
	c.records[id] = m
	c.order = append(c.order, id)
	return nil
}
