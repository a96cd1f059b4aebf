// Package health probes the backend's liveness endpoint and keeps a
// background watcher running on a fixed interval so the UI can show
// connection state.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prospectly/prospectctl/internal/log"
)

// Status represents the backend's observed liveness.
type Status string

const (
	// StatusHealthy means the liveness endpoint answered OK.
	StatusHealthy Status = "healthy"

	// StatusUnhealthy means the endpoint answered with an error status.
	StatusUnhealthy Status = "unhealthy"

	// StatusUnreachable means the probe could not reach the backend.
	StatusUnreachable Status = "unreachable"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Result is one probe outcome.
type Result struct {
	Status  Status
	Message string
	Latency time.Duration
	At      time.Time
}

// Healthy reports whether the backend answered OK.
func (r *Result) Healthy() bool {
	return r.Status == StatusHealthy
}

// CheckTimeout bounds a single liveness probe.
const CheckTimeout = 5 * time.Second

// WatchInterval is the fixed probe cadence. There is no backoff; an
// unreachable backend is simply probed again on the next tick.
const WatchInterval = 30 * time.Second

// Checker probes GET /healthz on the backend.
type Checker struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewChecker creates a liveness checker for the given backend URL.
func NewChecker(baseURL string, logger *log.Logger) *Checker {
	return &Checker{
		baseURL: baseURL,
		http:    &http.Client{Timeout: CheckTimeout},
		logger:  logger,
	}
}

// Check runs one liveness probe. It never returns an error; transport
// failures map to StatusUnreachable so callers can render them.
func (c *Checker) Check(ctx context.Context) *Result {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return &Result{
			Status:  StatusUnreachable,
			Message: err.Error(),
			At:      start,
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Result{
			Status:  StatusUnreachable,
			Message: fmt.Sprintf("could not reach %s", c.baseURL),
			Latency: time.Since(start),
			At:      start,
		}
	}
	defer resp.Body.Close()

	latency := time.Since(start)
	if resp.StatusCode != http.StatusOK {
		return &Result{
			Status:  StatusUnhealthy,
			Message: fmt.Sprintf("liveness endpoint returned %d", resp.StatusCode),
			Latency: latency,
			At:      start,
		}
	}

	message := "backend is up"
	var body struct {
		Status string `json:"status"`
	}
	if data, err := io.ReadAll(resp.Body); err == nil && len(data) > 0 {
		if json.Unmarshal(data, &body) == nil && body.Status != "" {
			message = body.Status
		}
	}

	return &Result{
		Status:  StatusHealthy,
		Message: message,
		Latency: latency,
		At:      start,
	}
}

// Watch probes on a fixed interval until the context is cancelled,
// sending every result to onResult. The first probe fires immediately.
// Fire and forget: a failed probe just waits for the next tick.
func (c *Checker) Watch(ctx context.Context, interval time.Duration, onResult func(*Result)) {
	if interval <= 0 {
		interval = WatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	probe := func() {
		result := c.Check(ctx)
		if !result.Healthy() {
			c.logger.Debug("liveness probe failed",
				"status", result.Status.String(), "message", result.Message)
		}
		onResult(result)
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
