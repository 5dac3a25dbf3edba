// Package accounts stores plaintext username,password pairs in a flat file.
// There is no hashing: the file format is shared with existing installations.
package accounts

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/agentstation/mobileapp/pkg/constants"
	"github.com/agentstation/mobileapp/pkg/errors"
	"github.com/agentstation/mobileapp/pkg/sessionlog"
)

// Store reads and appends the credentials file.
type Store struct {
	path string
}

// New creates a Store backed by path. The file is created on first Register.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the credentials file.
func (s *Store) Path() string {
	return s.path
}

type credential struct {
	username string
	password string
}

// read returns every well-formed line. Lines that do not split into exactly
// two fields are ignored.
func (s *Store) read() ([]credential, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("credentials file", s.path)
		}
		return nil, errors.WrapIO("open", s.path, err)
	}
	defer func() { _ = f.Close() }()

	var creds []credential
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), ",")
		if len(fields) != 2 {
			continue
		}
		creds = append(creds, credential{username: fields[0], password: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", s.path, err)
	}
	return creds, nil
}

// Exists reports whether username is registered. A missing file means no
// users are registered.
func (s *Store) Exists(username string) (bool, error) {
	creds, err := s.read()
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	for _, c := range creds {
		if c.username == username {
			return true, nil
		}
	}
	return false, nil
}

// Authenticate checks username and password against the credentials file.
// It returns a NotFoundError when the file does not exist yet and an
// AuthenticationError when no line matches both fields.
func (s *Store) Authenticate(username, password string) error {
	creds, err := s.read()
	if err != nil {
		return err
	}
	for _, c := range creds {
		if c.username == username && c.password == password {
			return nil
		}
	}
	return errors.NewAuthenticationError(username, "invalid username or password", nil)
}

// Register appends a new account. Usernames must be unique and usable as a
// folder name; passwords must be non-empty and free of commas and newlines.
func (s *Store) Register(username, password string) error {
	if err := sessionlog.ValidateUsername(username); err != nil {
		return err
	}
	if password == "" {
		return errors.NewValidationError("password", "", "must not be empty")
	}
	if strings.ContainsAny(password, ",\n\r") {
		return errors.NewValidationError("password", nil, "must not contain commas or newlines")
	}

	exists, err := s.Exists(username)
	if err != nil {
		return err
	}
	if exists {
		return &errors.AlreadyExistsError{Resource: "username", ID: username}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, constants.SecureFilePermissions)
	if err != nil {
		return errors.WrapIO("append", s.path, err)
	}
	if _, err := fmt.Fprintf(f, "%s,%s\n", username, password); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", s.path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", s.path, err)
	}
	return nil
}
