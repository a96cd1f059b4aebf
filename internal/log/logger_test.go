package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/prospectly/prospectctl/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "json format",
			config: Config{
				Level:  LevelInfo,
				Format: FormatJSON,
				Output: NewOutput(&bytes.Buffer{}),
			},
		},
		{
			name: "text format",
			config: Config{
				Level:  LevelDebug,
				Format: FormatText,
				Output: NewOutput(&bytes.Buffer{}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.config)
			if logger == nil {
				t.Fatal("New() returned nil")
			}
			if logger.Config().Format != tt.config.Format {
				t.Errorf("expected format %v, got %v", tt.config.Format, logger.Config().Format)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at WARN level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at WARN level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should be logged")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message should be logged")
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Info("listing prospects", "count", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "listing prospects" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("unexpected count: %v", entry["count"])
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	child := logger.With("prospect_id", "p-1")
	child.Info("updated")

	if !strings.Contains(buf.String(), "p-1") {
		t.Error("expected attribute from With() in output")
	}
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "nil error",
			err:  nil,
			want: nil,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"boom"},
		},
		{
			name: "client error with code and cause",
			err: errors.Wrap(errors.ErrCodeAuthRefreshFailed, "session refresh failed", fmt.Errorf("401")).
				WithSuggestion("Run 'prospectctl auth login'"),
			want: []string{"AUTH-004", "session refresh failed", "401"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  LevelInfo,
				Format: FormatJSON,
				Output: NewOutput(&buf),
			})

			logger.WithError(tt.err).Info("operation finished")

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got: %s", want, out)
				}
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&bytes.Buffer{}),
	})

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("DEBUG should not be enabled at WARN level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("ERROR should be enabled at WARN level")
	}
}
