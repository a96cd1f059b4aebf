package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists credentials as a JSON file on disk, so sessions
// survive across CLI invocations the way browser local storage survives
// page reloads.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed credential store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the standard credentials file location,
// ~/.prospectctl/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".prospectctl", "credentials.json"), nil
}

// Path returns the file path backing this store.
func (s *FileStore) Path() string {
	return s.path
}

// Save persists the credential bundle.
// The file is written to a temp path and renamed into place so a crash
// mid-write never leaves a torn credentials file.
func (s *FileStore) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}

	return nil
}

// AccessToken returns the stored access token, or "" if none is stored.
func (s *FileStore) AccessToken() string {
	creds := s.load()
	if creds == nil {
		return ""
	}
	return creds.AccessToken
}

// RefreshToken returns the stored refresh token, or "" if none is stored.
func (s *FileStore) RefreshToken() string {
	creds := s.load()
	if creds == nil {
		return ""
	}
	return creds.RefreshToken
}

// User returns the cached user profile, or nil if none is stored.
func (s *FileStore) User() *User {
	creds := s.load()
	if creds == nil {
		return nil
	}
	user := creds.User
	return &user
}

// Clear removes the credentials file. A missing file is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}

// load reads the current bundle from disk.
// Returns nil if the file is missing or unreadable, which callers treat
// as "not logged in".
func (s *FileStore) load() *Credentials {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil
	}
	return &creds
}
