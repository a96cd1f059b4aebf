package credstore

import "time"

// User is the profile snapshot returned by the auth endpoints.
// It is replaced wholesale on login and refresh, never patched.
type User struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"fullName,omitempty"`
}

// Credentials is the bundle persisted after a successful login,
// register, or refresh. Access and refresh tokens are opaque bearer
// strings; the client never inspects them.
type Credentials struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         User      `json:"user"`
}

// Store defines the interface for credential persistence.
//
// Save must replace all fields atomically: a reader never observes an
// access token without its matching refresh token. Clear removes all
// fields atomically for the same reason.
type Store interface {
	// Save persists the full credential bundle, replacing any previous one.
	Save(creds Credentials) error

	// AccessToken returns the stored access token, or "" if none is stored.
	AccessToken() string

	// RefreshToken returns the stored refresh token, or "" if none is stored.
	RefreshToken() string

	// User returns the cached user profile, or nil if none is stored.
	User() *User

	// Clear removes all stored credentials.
	// Clearing an empty store is not an error.
	Clear() error
}
