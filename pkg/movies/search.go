package movies

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns every entry whose case-folded name contains the
// case-folded query, in catalog order. An empty query matches everything.
func Search(c *Catalog, query string) []Entry {
	if c == nil {
		return nil
	}

	// Casers carry state; one per call.
	fold := cases.Fold()
	needle := fold.String(query)

	var results []Entry
	for _, entry := range c.Entries() {
		if strings.Contains(fold.String(entry.Name), needle) {
			results = append(results, entry)
		}
	}
	return results
}

// Search is shorthand for Search(c, query).
func (c *Catalog) Search(query string) []Entry {
	return Search(c, query)
}
