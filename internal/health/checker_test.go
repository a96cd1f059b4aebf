package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prospectly/prospectctl/internal/log"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusHealthy, "healthy"},
		{StatusUnhealthy, "unhealthy"},
		{StatusUnreachable, "unreachable"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.String(); got != tt.expected {
				t.Errorf("Status.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCheckHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Errorf("probe hit %s, want /healthz", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	checker := NewChecker(server.URL, log.NewNop())
	result := checker.Check(context.Background())

	if !result.Healthy() {
		t.Errorf("result = %+v, want healthy", result)
	}
	if result.Message != "ok" {
		t.Errorf("Message = %q, want the reported status", result.Message)
	}
	if result.Latency <= 0 {
		t.Error("latency should be recorded")
	}
}

func TestCheckUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	checker := NewChecker(server.URL, log.NewNop())
	result := checker.Check(context.Background())

	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", result.Status)
	}
}

func TestCheckUnreachable(t *testing.T) {
	checker := NewChecker("http://127.0.0.1:1", log.NewNop())
	result := checker.Check(context.Background())

	if result.Status != StatusUnreachable {
		t.Errorf("Status = %v, want unreachable", result.Status)
	}
	if result.Healthy() {
		t.Error("unreachable must not count as healthy")
	}
}

func TestWatchProbesUntilCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	var probes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	checker := NewChecker(server.URL, log.NewNop())
	go func() {
		defer close(done)
		checker.Watch(ctx, 10*time.Millisecond, func(r *Result) {
			if probes.Add(1) >= 3 {
				cancel()
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}

	if probes.Load() < 3 {
		t.Errorf("probes = %d, want at least 3", probes.Load())
	}
}
