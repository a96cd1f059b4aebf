package batch

import (
	"fmt"
	"sync"
	"time"
)

// Outcome classifies a finished batch.
type Outcome string

const (
	// OutcomeSuccess means every item succeeded.
	OutcomeSuccess Outcome = "success"
	// OutcomePartial means at least one item failed. An all-failed
	// batch is partial, not a separate class.
	OutcomePartial Outcome = "partial"
)

// DefaultNotificationTTL is how long a completion notification stays
// visible before it expires on its own.
const DefaultNotificationTTL = 10 * time.Second

// Notification is the transient summary shown after a batch completes.
type Notification struct {
	Outcome   Outcome
	Message   string
	Succeeded int
	Failed    int
	At        time.Time
}

// Notifier holds the latest batch completion notification. One
// instance is shared across every orchestrator in the process so any
// view can display the result of a batch started elsewhere.
type Notifier struct {
	mu      sync.Mutex
	current *Notification
	ttl     time.Duration
	now     func() time.Time
}

// NewNotifier creates a notifier with the given expiry.
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl, now: time.Now}
}

var (
	sharedOnce     sync.Once
	sharedNotifier *Notifier
)

// SharedNotifier returns the process-wide notifier. It starts empty
// and lives for the process lifetime.
func SharedNotifier() *Notifier {
	sharedOnce.Do(func() {
		sharedNotifier = NewNotifier(DefaultNotificationTTL)
	})
	return sharedNotifier
}

// Publish records a completion summary derived from the per-item counts.
func (n *Notifier) Publish(succeeded, failed int) {
	outcome := OutcomeSuccess
	if failed > 0 {
		outcome = OutcomePartial
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = &Notification{
		Outcome:   outcome,
		Message:   fmt.Sprintf("%d succeeded, %d failed", succeeded, failed),
		Succeeded: succeeded,
		Failed:    failed,
		At:        n.now(),
	}
}

// Current returns the active notification, or nil once it has expired
// or none was published. Expiry is checked lazily on read.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return nil
	}
	if n.now().Sub(n.current.At) > n.ttl {
		n.current = nil
		return nil
	}

	copy := *n.current
	return &copy
}

// Dismiss drops the active notification immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}
