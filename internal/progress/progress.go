// Package progress renders a terminal spinner and summary for batched
// prospect operations. The server does the per-item work in one call,
// so there is no incremental bar; the spinner shows liveness and the
// summary shows the per-item outcome counts.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prospectly/prospectctl/internal/batch"
)

// Indicator displays a spinner while a batch is in flight.
type Indicator struct {
	writer    io.Writer
	label     string
	startTime time.Time

	mu          sync.Mutex
	showSpinner bool
	spinnerIdx  int
	stopChan    chan struct{}
	stopOnce    sync.Once
	isCI        bool
}

// Config holds configuration for the progress indicator.
type Config struct {
	Writer      io.Writer
	Label       string
	ShowSpinner bool
	IsCI        bool // disables animated output in CI pipelines
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewIndicator creates a new progress indicator.
func NewIndicator(cfg Config) *Indicator {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	if !cfg.IsCI {
		cfg.IsCI = os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
	}

	return &Indicator{
		writer:      cfg.Writer,
		label:       cfg.Label,
		startTime:   time.Now(),
		showSpinner: cfg.ShowSpinner && !cfg.IsCI,
		stopChan:    make(chan struct{}),
		isCI:        cfg.IsCI,
	}
}

// Start begins the spinner animation. In CI mode it prints the label
// once instead.
func (p *Indicator) Start() {
	if p.showSpinner {
		go p.spinnerLoop()
		return
	}
	if p.label != "" {
		fmt.Fprintln(p.writer, p.label+"...")
	}
}

// Stop stops the spinner and clears its line.
func (p *Indicator) Stop() {
	p.stopOnce.Do(func() {
		if p.showSpinner {
			close(p.stopChan)
			fmt.Fprintf(p.writer, "\r%s\r", strings.Repeat(" ", 80))
		}
	})
}

func (p *Indicator) spinnerLoop() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.mu.Lock()
			frame := spinnerFrames[p.spinnerIdx]
			p.spinnerIdx = (p.spinnerIdx + 1) % len(spinnerFrames)
			elapsed := time.Since(p.startTime)
			fmt.Fprintf(p.writer, "\r%s %s... %s", frame, p.label, formatDuration(elapsed))
			p.mu.Unlock()
		}
	}
}

// PrintSummary prints the per-item outcome of a finished batch.
func (p *Indicator) PrintSummary(result batch.Progress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Since(p.startTime)

	fmt.Fprintln(p.writer)
	fmt.Fprintf(p.writer, "Total:     %d\n", result.Total)
	fmt.Fprintf(p.writer, "Completed: %d ✓\n", result.Completed)
	fmt.Fprintf(p.writer, "Failed:    %d ✗\n", result.Failed)
	if result.Total > 0 {
		fmt.Fprintf(p.writer, "Success:   %.0f%%\n",
			float64(result.Completed)/float64(result.Total)*100)
	}
	fmt.Fprintf(p.writer, "Elapsed:   %s\n", formatDuration(elapsed))
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
