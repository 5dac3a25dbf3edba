package movies

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/mobileapp/pkg/errors"
)

// maxLineSize bounds a single backing file line.
const maxLineSize = 1 << 20

// DiagnosticKind classifies a problem that Load recovered from.
type DiagnosticKind int

const (
	// MalformedLine is a line without the record shape or with a non-integer year.
	MalformedLine DiagnosticKind = iota
	// MissingFile is an absent backing file; the catalog starts empty.
	MissingFile
)

// String returns the string representation of the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed_line"
	case MissingFile:
		return "missing_file"
	}
	return "unknown"
}

// Diagnostic describes one recovered problem.
type Diagnostic struct {
	Kind DiagnosticKind
	Line int    // 1-based line number, 0 for MissingFile
	Text string // the offending line, trimmed
	Err  error
}

// String returns a one-line description suitable for a console.
func (d Diagnostic) String() string {
	if d.Kind == MissingFile {
		return "No existing movie data found, starting with an empty list."
	}
	return fmt.Sprintf("Skipping malformed line %d: %s", d.Line, d.Text)
}

// Load reads the catalog backing file at path. A missing file yields an
// empty catalog and a MissingFile diagnostic. Malformed lines are skipped
// and reported; only read failures are returned as errors.
func Load(path string, opts ...Option) (*Catalog, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			diag := Diagnostic{Kind: MissingFile, Err: errors.NewNotFoundError("catalog", path)}
			return New(path, opts...), []Diagnostic{diag}, nil
		}
		return nil, nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	c := New(path, opts...)
	diags, err := c.read(f, path)
	if err != nil {
		return nil, nil, err
	}
	return c, diags, nil
}

// Parse builds a catalog from r. The result has no backing file until one
// is given to Save.
func Parse(r io.Reader) (*Catalog, []Diagnostic, error) {
	c := New("")
	diags, err := c.read(r, "")
	if err != nil {
		return nil, nil, err
	}
	return c, diags, nil
}

// read assigns id = line number to every line that parses, so skipped
// lines leave gaps instead of shifting later ids.
func (c *Catalog) read(r io.Reader, source string) ([]Diagnostic, error) {
	var diags []Diagnostic

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		m, err := ParseLine(text)
		if err == nil {
			err = c.insert(lineNo, m)
		}
		if err != nil {
			var parseErr *errors.ParseError
			if errors.As(err, &parseErr) {
				parseErr.File = source
				parseErr.Line = lineNo
			}
			diags = append(diags, Diagnostic{Kind: MalformedLine, Line: lineNo, Text: text, Err: err})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", source, err)
	}
	return diags, nil
}

// ParseLine parses a single backing file line.
func ParseLine(line string) (Movie, error) {
	line = strings.TrimSpace(line)
	if !strings.Contains(line, "| Genre:") || !strings.Contains(line, "| Year:") {
		return Movie{}, malformed("missing Genre or Year segment")
	}

	parts := strings.Split(line, fieldSeparator)
	if len(parts) < 3 {
		return Movie{}, malformed("expected three fields")
	}

	name, err := fieldValue(parts[0], keyName)
	if err != nil {
		return Movie{}, err
	}
	genre, err := fieldValue(parts[1], keyGenre)
	if err != nil {
		return Movie{}, err
	}
	rawYear, err := fieldValue(parts[2], keyYear)
	if err != nil {
		return Movie{}, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return Movie{}, malformed(fmt.Sprintf("year %q is not an integer", rawYear))
	}

	return Movie{Name: name, Genre: genre, Year: year}, nil
}

func fieldValue(part, key string) (string, error) {
	k, v, ok := strings.Cut(part, keySeparator)
	if !ok {
		return "", malformed(fmt.Sprintf("missing value after %s", key))
	}
	if strings.TrimSpace(k) != key {
		return "", malformed(fmt.Sprintf("expected %s, found %q", key, k))
	}
	return v, nil
}

func malformed(message string) error {
	return errors.NewParseError("catalog", "", message, errors.ErrMalformedRecord)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
