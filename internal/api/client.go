package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/prospectly/prospectctl/internal/credstore"
	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/log"
)

// Client is the single outgoing HTTP gateway to the prospect backend.
//
// Every request is stamped with the stored access token when one is
// present. On an authorization failure the client silently refreshes the
// session and replays the original request exactly once; concurrent
// failures share a single refresh call.
type Client struct {
	baseURL string
	http    *http.Client
	creds   credstore.Store
	logger  *log.Logger

	// refreshGroup collapses concurrent refresh attempts into one
	// in-flight /auth/refresh call.
	refreshGroup singleflight.Group

	// onSessionExpired runs after a failed refresh has cleared the
	// credentials. The TUI uses it to navigate to the login view.
	onSessionExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSessionExpiredHandler sets the hook invoked when a refresh fails
// and the session is forced back to anonymous.
func WithSessionExpiredHandler(handler func()) Option {
	return func(c *Client) {
		c.onSessionExpired = handler
	}
}

// New creates a new API client.
func New(baseURL string, creds credstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
		logger:  log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
// A nil body sends an empty JSON object, matching what the backend expects
// on action endpoints.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do runs the request once, and on an authorization failure performs the
// refresh-and-replay protocol: one refresh, one replay, never more. The
// replay decision lives in this call frame rather than on a shared
// request object, so a request can never be replayed twice.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := marshalBody(method, body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	status, respBody, requestID, err := c.attempt(ctx, method, path, payload)
	if err != nil {
		return errors.NewAPIUnreachableError(c.baseURL, err)
	}

	if status == http.StatusUnauthorized {
		original := newError(status, respBody, requestID)

		if rerr := c.refreshSession(ctx); rerr != nil {
			// Refresh failed; credentials are already cleared.
			// Surface the original authorization failure.
			return original
		}

		c.logger.Debug("session refreshed, replaying request",
			"method", method, "path", path, "request_id", requestID)

		status, respBody, requestID, err = c.attempt(ctx, method, path, payload)
		if err != nil {
			return errors.NewAPIUnreachableError(c.baseURL, err)
		}
		// A second authorization failure falls through to the generic
		// handling below: no second refresh.
	}

	if status < 200 || status >= 300 {
		return newError(status, respBody, requestID)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecodeFailed,
				fmt.Sprintf("failed to decode %s %s response", method, path), err)
		}
	}

	return nil
}

// attempt sends a single HTTP request and reads the full response.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte) (status int, body []byte, requestID string, err error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, "", fmt.Errorf("create request: %w", err)
	}

	requestID = uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	// Unauthenticated requests (login, register) proceed without a token.
	if token := c.creds.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, requestID, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, requestID, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, body, requestID, nil
}

// AuthResponse is the credential bundle returned by the auth endpoints.
type AuthResponse struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"refreshToken"`
	ExpiresAt    time.Time      `json:"expiresAt"`
	User         credstore.User `json:"user"`
}

// Credentials converts the wire bundle to the stored form.
func (r *AuthResponse) Credentials() credstore.Credentials {
	return credstore.Credentials{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
		User:         r.User,
	}
}

// RefreshSession renews the stored credentials using the refresh token.
// Exposed so the session manager can refresh proactively; the 401 path
// uses the same shared-refresh machinery.
func (c *Client) RefreshSession(ctx context.Context) error {
	return c.refreshSession(ctx)
}

// refreshSession renews the stored credentials using the refresh token.
//
// Concurrent callers share one in-flight refresh: when several requests
// hit an expired token at once, exactly one /auth/refresh call is made
// and every waiter observes its outcome.
//
// Any failure lands the session in anonymous: credentials are cleared
// and the session-expired hook runs. Repeating a failed refresh is
// harmless, it stays anonymous.
func (c *Client) refreshSession(ctx context.Context) error {
	_, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refreshToken := c.creds.RefreshToken()
		if refreshToken == "" {
			c.expireSession()
			return nil, errors.New(errors.ErrCodeAuthNoRefreshToken, "no refresh token stored").
				WithSuggestion("Run 'prospectctl auth login' to authenticate")
		}

		body := map[string]string{"refreshToken": refreshToken}
		payload, err := json.Marshal(body)
		if err != nil {
			c.expireSession()
			return nil, errors.NewRefreshFailedError(err)
		}

		status, respBody, requestID, err := c.attempt(ctx, http.MethodPost, "/auth/refresh", payload)
		if err != nil {
			c.expireSession()
			return nil, errors.NewRefreshFailedError(err)
		}
		if status != http.StatusOK {
			c.expireSession()
			return nil, errors.NewRefreshFailedError(newError(status, respBody, requestID))
		}

		var bundle AuthResponse
		if err := json.Unmarshal(respBody, &bundle); err != nil {
			c.expireSession()
			return nil, errors.NewRefreshFailedError(err)
		}

		if err := c.creds.Save(bundle.Credentials()); err != nil {
			c.expireSession()
			return nil, errors.NewRefreshFailedError(err)
		}

		c.logger.Debug("session refreshed", "user", bundle.User.Email)
		return nil, nil
	})
	return err
}

// expireSession clears credentials and notifies the navigation hook.
// Never leaves the client half-authenticated.
func (c *Client) expireSession() {
	if err := c.creds.Clear(); err != nil {
		c.logger.Warn("failed to clear credentials", "error", err.Error())
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// marshalBody serializes the request body. Mutating methods with a nil
// body send "{}" because the backend's action endpoints require a JSON
// object; GET and DELETE send no body at all.
func marshalBody(method string, body any) ([]byte, error) {
	if body != nil {
		return json.Marshal(body)
	}
	if method == http.MethodPost || method == http.MethodPut {
		return []byte("{}"), nil
	}
	return nil, nil
}
