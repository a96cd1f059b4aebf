// Package batch drives multi-prospect operations: research generation,
// email drafting, and the chained complete flow. The server does the
// per-item work in one call; this package tracks progress and publishes
// the completion notification.
package batch

import (
	"context"
	"sync"

	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/log"
	"github.com/prospectly/prospectctl/internal/prospect"
)

// Progress is the observable state of the batch in flight.
type Progress struct {
	Total     int
	Completed int
	Failed    int
	Running   bool
}

// Orchestrator runs batched prospect operations.
type Orchestrator struct {
	prospects *prospect.Service
	notifier  *Notifier
	logger    *log.Logger

	mu       sync.Mutex
	progress Progress
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithNotifier replaces the completion notifier.
func WithNotifier(n *Notifier) Option {
	return func(o *Orchestrator) {
		o.notifier = n
	}
}

// WithLogger sets the orchestrator logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator creates an orchestrator over the prospect service.
// Completion notifications go to the process-wide notifier unless one
// is injected.
func NewOrchestrator(prospects *prospect.Service, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		prospects: prospects,
		notifier:  SharedNotifier(),
		logger:    log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Progress returns a snapshot of the current batch progress.
func (o *Orchestrator) Progress() Progress {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress
}

// RunSoftData researches many prospects in one server call.
func (o *Orchestrator) RunSoftData(ctx context.Context, ids []string, provider prospect.Provider) (*prospect.BatchResult, error) {
	if err := o.start(ids); err != nil {
		return nil, err
	}

	result, err := o.prospects.BatchGenerateSoftData(ctx, ids, provider)
	return o.finish(result, err)
}

// RunEmail drafts emails for many prospects in one server call.
// autoGenerateSoftData lets the backend research prospects missing
// soft data as part of the same batch.
func (o *Orchestrator) RunEmail(ctx context.Context, ids []string, draftType prospect.DraftType, autoGenerateSoftData bool, provider prospect.Provider) (*prospect.BatchResult, error) {
	if err := o.start(ids); err != nil {
		return nil, err
	}

	result, err := o.prospects.BatchGenerateEmail(ctx, ids, draftType, autoGenerateSoftData, provider)
	return o.finish(result, err)
}

// RunCompleteFlow chains research then email drafting. The email stage
// runs only when the research stage returns a result, and it passes
// autoGenerateSoftData=false because the research just happened. A
// research-stage failure aborts the chain.
func (o *Orchestrator) RunCompleteFlow(ctx context.Context, ids []string, draftType prospect.DraftType, provider prospect.Provider) (*prospect.BatchResult, error) {
	if len(ids) == 0 {
		return nil, errors.NewEmptySelectionError()
	}

	if _, err := o.RunSoftData(ctx, ids, provider); err != nil {
		o.logger.Warn("research stage failed, skipping email stage", "error", err.Error())
		return nil, errors.Wrap(errors.ErrCodeBatchStageFailed, "research stage failed", err)
	}

	return o.RunEmail(ctx, ids, draftType, false, provider)
}

// start validates the precondition and resets progress. An empty id
// list is rejected before any network call.
func (o *Orchestrator) start(ids []string) error {
	if len(ids) == 0 {
		return errors.NewEmptySelectionError()
	}

	o.mu.Lock()
	o.progress = Progress{Total: len(ids), Running: true}
	o.mu.Unlock()
	return nil
}

// finish folds the server outcome into progress and, on success,
// publishes the completion notification.
func (o *Orchestrator) finish(result *prospect.BatchResult, err error) (*prospect.BatchResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.progress.Running = false
	if err != nil {
		return nil, err
	}

	o.progress.Completed = result.SuccessCount
	o.progress.Failed = result.FailureCount
	o.notifier.Publish(result.SuccessCount, result.FailureCount)

	o.logger.Debug("batch finished",
		"total", result.TotalCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailureCount)
	return result, nil
}
