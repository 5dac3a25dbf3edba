// Package sessionlog owns the per-user folders under the users directory:
// bootstrapping them on registration and appending to the audit files
// (interactions, movie searches, calculations, guessing game results).
package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/errors"
)

// Logger writes per-user audit files below a root directory.
type Logger struct {
	root string
	now  func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock replaces time.Now for timestamped lines.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger rooted at the users directory.
func New(root string, opts ...Option) *Logger {
	l := &Logger{
		root: root,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the users directory.
func (l *Logger) Root() string {
	return l.root
}

// Dir returns the folder of user.
func (l *Logger) Dir(user string) (string, error) {
	if err := ValidateUsername(user); err != nil {
		return "", err
	}
	return filepath.Join(l.root, user), nil
}

// Exists reports whether the folder of user is present.
func (l *Logger) Exists(user string) bool {
	dir, err := l.Dir(user)
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// Bootstrap creates the folder of user and seeds the user log, to-do list and
// guessing game log when they are absent. Existing files are left untouched.
func (l *Logger) Bootstrap(user string) (string, error) {
	dir, err := l.Dir(user)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", dir, err)
	}

	seeds := []struct {
		file   string
		header string
	}{
		{constants.UserLogFile, constants.UserLogHeader},
		{constants.TodoFile, constants.TodoHeader},
		{constants.GuessLogFile, constants.GuessLogHeader},
	}
	for _, seed := range seeds {
		path := filepath.Join(dir, seed.file)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.FilePermissions)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				continue
			}
			return "", errors.WrapIO("create", path, err)
		}
		_, werr := fmt.Fprintln(f, seed.header)
		cerr := f.Close()
		if werr != nil {
			return "", errors.WrapIO("write", path, werr)
		}
		if cerr != nil {
			return "", errors.WrapIO("close", path, cerr)
		}
	}
	return dir, nil
}

// LogInteraction appends a timestamped line to the user log. The folder of
// user must exist.
func (l *Logger) LogInteraction(user, message string) error {
	dir, err := l.Dir(user)
	if err != nil {
		return err
	}
	line := fmt.Sprintf("%s - %s", l.timestamp(), message)
	return appendLines(filepath.Join(dir, constants.UserLogFile), line)
}

// LogGuessResult appends one game result to the guessing game log.
func (l *Logger) LogGuessResult(user string, attempts int, won bool, number int) error {
	dir, err := l.Dir(user)
	if err != nil {
		return err
	}
	result := "Loss"
	if won {
		result = "Win"
	}
	line := fmt.Sprintf("%s - Game Result: %s | Number: %d | Attempts: %d", l.timestamp(), result, number, attempts)
	return appendLines(filepath.Join(dir, constants.GuessLogFile), line)
}

// LogCalculation appends one calculator operation to the calculation
// history, creating the folder of user when needed.
func (l *Logger) LogCalculation(user, operation, first, second, result string) error {
	dir, err := l.Dir(user)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	line := fmt.Sprintf("%s: %s | %s and %s = %s", user, operation, first, second, result)
	return appendLines(filepath.Join(dir, constants.CalculationLogFile), line)
}

func (l *Logger) timestamp() string {
	return l.now().Format(constants.TimeFormatLog)
}

// ValidateUsername rejects names that cannot be used as a folder name or a
// credentials file field.
func ValidateUsername(user string) error {
	switch {
	case strings.TrimSpace(user) == "":
		return errors.NewValidationError("username", user, "must not be empty")
	case user == "." || user == "..":
		return errors.NewValidationError("username", user, "must not be a relative path element")
	case strings.ContainsAny(user, `/\,`+"\n\r"):
		return errors.NewValidationError("username", user, "must not contain path separators, commas or newlines")
	}
	return nil
}

// appendLines opens path for appending, creating it if needed.
func appendLines(path string, lines ...string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("append", path, err)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			_ = f.Close()
			return errors.WrapIO("write", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
