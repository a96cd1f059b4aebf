package credstore

import "sync"

// MemoryStore implements in-memory credential storage.
//
// Suitable for tests and for one-shot commands where nothing should be
// left on disk (login --no-save).
type MemoryStore struct {
	mu    sync.RWMutex
	creds *Credentials
}

// NewMemoryStore creates a new in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save persists the full credential bundle, replacing any previous one.
func (s *MemoryStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &creds
	return nil
}

// AccessToken returns the stored access token, or "" if none is stored.
func (s *MemoryStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.AccessToken
}

// RefreshToken returns the stored refresh token, or "" if none is stored.
func (s *MemoryStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.RefreshToken
}

// User returns the cached user profile, or nil if none is stored.
func (s *MemoryStore) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return nil
	}
	user := s.creds.User
	return &user
}

// Clear removes all stored credentials.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}
