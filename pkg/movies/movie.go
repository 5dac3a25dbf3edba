// Package movies implements the movie catalog: parsing and persisting the
// pipe-delimited backing file, case-insensitive search, and id allocation
// for new records.
//
// The backing file holds one record per line:
//
//	Name: <name> | Genre: <genre> | Year: <year>
//
// Values are not escaped. A name or genre containing " | " will not survive
// a save/load round trip.
package movies

import "fmt"

const (
	fieldSeparator = " | "
	keySeparator   = ": "

	keyName  = "Name"
	keyGenre = "Genre"
	keyYear  = "Year"
)

// Movie is one catalog record. Names are not unique.
type Movie struct {
	Name  string `json:"name" yaml:"name"`
	Genre string `json:"genre" yaml:"genre"`
	Year  int    `json:"year" yaml:"year"`
}

// String renders the movie in backing file format, without a newline.
func (m Movie) String() string {
	return fmt.Sprintf("%s%s%s%s%s%s%s%s%s%s%d",
		keyName, keySeparator, m.Name, fieldSeparator,
		keyGenre, keySeparator, m.Genre, fieldSeparator,
		keyYear, keySeparator, m.Year)
}

// Entry pairs a movie with its catalog id.
type Entry struct {
	ID    int `json:"id" yaml:"id"`
	Movie `json:",inline" yaml:",inline"`
}
