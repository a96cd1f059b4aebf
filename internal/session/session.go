// Package session manages the client's authentication state: a two-state
// machine over Anonymous and Authenticated, with login, register, logout,
// and refresh transitions persisted through the credential store.
package session

import (
	"context"

	"github.com/prospectly/prospectctl/internal/api"
	"github.com/prospectly/prospectctl/internal/credstore"
	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/log"
)

// Navigator receives the navigation side effects of session transitions:
// a successful login lands on the home view, a logout on the login view.
// The TUI implements it; CLI commands use NopNavigator.
type Navigator interface {
	ToHome()
	ToLogin()
}

// NopNavigator ignores navigation. Used by one-shot CLI commands where
// there is no view to switch.
type NopNavigator struct{}

func (NopNavigator) ToHome()  {}
func (NopNavigator) ToLogin() {}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Manager drives the session state machine.
type Manager struct {
	client *api.Client
	creds  credstore.Store
	nav    Navigator
	logger *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithNavigator sets the navigation sink for session transitions.
func WithNavigator(nav Navigator) Option {
	return func(m *Manager) {
		m.nav = nav
	}
}

// WithLogger sets the manager logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session manager over the given client and store.
func NewManager(client *api.Client, creds credstore.Store, opts ...Option) *Manager {
	m := &Manager{
		client: client,
		creds:  creds,
		nav:    NopNavigator{},
		logger: log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.creds.AccessToken() != ""
}

// CurrentUser returns the cached user profile, nil when anonymous.
func (m *Manager) CurrentUser() *credstore.User {
	return m.creds.User()
}

// Register creates an account and starts a session.
// On failure the session stays anonymous and the server's message is
// surfaced, falling back to a generic one.
func (m *Manager) Register(ctx context.Context, req RegisterRequest) error {
	var bundle api.AuthResponse
	if err := m.client.Post(ctx, "/auth/register", req, &bundle); err != nil {
		return errors.Wrap(errors.ErrCodeAuthRegisterFailed,
			api.ErrorMessage(err, "Registration failed"), err)
	}

	return m.startSession(bundle)
}

// Login authenticates and starts a session.
func (m *Manager) Login(ctx context.Context, req LoginRequest) error {
	var bundle api.AuthResponse
	if err := m.client.Post(ctx, "/auth/login", req, &bundle); err != nil {
		return errors.Wrap(errors.ErrCodeAuthLoginFailed,
			api.ErrorMessage(err, "Login failed"), err)
	}

	return m.startSession(bundle)
}

// startSession persists the credential bundle and navigates home.
func (m *Manager) startSession(bundle api.AuthResponse) error {
	if err := m.creds.Save(bundle.Credentials()); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to persist credentials", err)
	}

	m.logger.Debug("session started", "user", bundle.User.Email)
	m.nav.ToHome()
	return nil
}

// Logout clears the session unconditionally. No network call is needed;
// the tokens simply stop being presented.
func (m *Manager) Logout() error {
	if err := m.creds.Clear(); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to clear credentials", err)
	}

	m.nav.ToLogin()
	return nil
}

// Refresh renews the session using the stored refresh token.
//
// Any failure, including a missing refresh token, lands the session in
// anonymous and navigates to login. Repeating a failed refresh stays
// anonymous, so the operation is idempotent under failure.
func (m *Manager) Refresh(ctx context.Context) error {
	if err := m.client.RefreshSession(ctx); err != nil {
		// The client has already cleared the credentials.
		m.nav.ToLogin()
		return err
	}
	return nil
}
