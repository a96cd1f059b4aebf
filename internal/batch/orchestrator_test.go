package batch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prospectly/prospectctl/internal/api"
	"github.com/prospectly/prospectctl/internal/credstore"
	"github.com/prospectly/prospectctl/internal/prospect"
)

type batchBackend struct {
	softDataCalls atomic.Int32
	emailCalls    atomic.Int32

	softDataStatus int
	successCount   int
	failureCount   int

	lastEmailBody map[string]any
}

func (b *batchBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/prospects/batch/soft-data/generate", func(w http.ResponseWriter, r *http.Request) {
		b.softDataCalls.Add(1)
		if b.softDataStatus != 0 && b.softDataStatus != http.StatusOK {
			w.WriteHeader(b.softDataStatus)
			json.NewEncoder(w).Encode(map[string]string{"error": "research backend down"})
			return
		}
		b.writeResult(w)
	})

	mux.HandleFunc("/prospects/batch/email/generate", func(w http.ResponseWriter, r *http.Request) {
		b.emailCalls.Add(1)
		json.NewDecoder(r.Body).Decode(&b.lastEmailBody)
		b.writeResult(w)
	})

	return mux
}

func (b *batchBackend) writeResult(w http.ResponseWriter) {
	json.NewEncoder(w).Encode(map[string]any{
		"successes":    make([]any, b.successCount),
		"failures":     make([]any, b.failureCount),
		"totalCount":   b.successCount + b.failureCount,
		"successCount": b.successCount,
		"failureCount": b.failureCount,
	})
}

func newOrchestrator(t *testing.T, backend *batchBackend) (*Orchestrator, *Notifier) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client := api.New(server.URL, credstore.NewMemoryStore())
	notifier := NewNotifier(DefaultNotificationTTL)
	return NewOrchestrator(prospect.NewService(client), WithNotifier(notifier)), notifier
}

func TestRunSoftDataReportsProgress(t *testing.T) {
	backend := &batchBackend{successCount: 2, failureCount: 1}
	orch, notifier := newOrchestrator(t, backend)

	result, err := orch.RunSoftData(context.Background(), []string{"a", "b", "c"}, prospect.ProviderClaude)
	if err != nil {
		t.Fatalf("RunSoftData() error = %v", err)
	}
	if result.SuccessCount != 2 || result.FailureCount != 1 {
		t.Errorf("result = %+v", result)
	}

	progress := orch.Progress()
	if progress.Completed != 2 || progress.Failed != 1 || progress.Running {
		t.Errorf("progress = %+v, want completed=2 failed=1 running=false", progress)
	}

	note := notifier.Current()
	if note == nil || note.Outcome != OutcomePartial {
		t.Errorf("notification = %+v, want partial", note)
	}
}

func TestAllSuccessYieldsSuccessNotification(t *testing.T) {
	backend := &batchBackend{successCount: 3}
	orch, notifier := newOrchestrator(t, backend)

	if _, err := orch.RunSoftData(context.Background(), []string{"a", "b", "c"}, ""); err != nil {
		t.Fatalf("RunSoftData() error = %v", err)
	}

	note := notifier.Current()
	if note == nil || note.Outcome != OutcomeSuccess {
		t.Errorf("notification = %+v, want success", note)
	}
}

func TestAllFailedIsPartialNotSuccess(t *testing.T) {
	backend := &batchBackend{failureCount: 3}
	orch, notifier := newOrchestrator(t, backend)

	if _, err := orch.RunSoftData(context.Background(), []string{"a", "b", "c"}, ""); err != nil {
		t.Fatalf("RunSoftData() error = %v", err)
	}

	note := notifier.Current()
	if note == nil || note.Outcome != OutcomePartial || note.Succeeded != 0 {
		t.Errorf("notification = %+v, want partial with zero succeeded", note)
	}
}

func TestEmptySelectionMakesNoNetworkCall(t *testing.T) {
	backend := &batchBackend{}
	orch, _ := newOrchestrator(t, backend)

	if _, err := orch.RunSoftData(context.Background(), nil, ""); err == nil {
		t.Error("RunSoftData should reject an empty selection")
	}
	if _, err := orch.RunEmail(context.Background(), nil, "", true, ""); err == nil {
		t.Error("RunEmail should reject an empty selection")
	}
	if _, err := orch.RunCompleteFlow(context.Background(), nil, "", ""); err == nil {
		t.Error("RunCompleteFlow should reject an empty selection")
	}

	if backend.softDataCalls.Load() != 0 || backend.emailCalls.Load() != 0 {
		t.Errorf("empty selection must not reach the server, got %d/%d calls",
			backend.softDataCalls.Load(), backend.emailCalls.Load())
	}
	if orch.Progress().Running {
		t.Error("rejected batch must not report as running")
	}
}

func TestCompleteFlowChainsStages(t *testing.T) {
	backend := &batchBackend{successCount: 2}
	orch, _ := newOrchestrator(t, backend)

	_, err := orch.RunCompleteFlow(context.Background(), []string{"a", "b"},
		prospect.DraftTypeUseCollectedData, prospect.ProviderHybrid)
	if err != nil {
		t.Fatalf("RunCompleteFlow() error = %v", err)
	}

	if backend.softDataCalls.Load() != 1 || backend.emailCalls.Load() != 1 {
		t.Errorf("calls = %d research, %d email, want 1 and 1",
			backend.softDataCalls.Load(), backend.emailCalls.Load())
	}

	// The email stage must not re-research what the first stage just did.
	if auto, ok := backend.lastEmailBody["autoGenerateSoftData"].(bool); !ok || auto {
		t.Errorf("autoGenerateSoftData = %v, want false", backend.lastEmailBody["autoGenerateSoftData"])
	}
}

func TestCompleteFlowAbortsWhenResearchFails(t *testing.T) {
	backend := &batchBackend{softDataStatus: http.StatusInternalServerError}
	orch, _ := newOrchestrator(t, backend)

	_, err := orch.RunCompleteFlow(context.Background(), []string{"a"}, "", "")
	if err == nil {
		t.Fatal("expected the chain to fail")
	}

	if backend.emailCalls.Load() != 0 {
		t.Error("email stage must never run after a failed research stage")
	}
	if orch.Progress().Running {
		t.Error("failed stage must stop progress")
	}
}

func TestNotificationExpires(t *testing.T) {
	notifier := NewNotifier(50 * time.Millisecond)
	base := time.Now()
	current := base
	notifier.now = func() time.Time { return current }

	notifier.Publish(2, 0)
	if notifier.Current() == nil {
		t.Fatal("fresh notification should be visible")
	}

	current = base.Add(100 * time.Millisecond)
	if notifier.Current() != nil {
		t.Error("notification should expire after the TTL")
	}
}

func TestNotificationDismiss(t *testing.T) {
	notifier := NewNotifier(time.Minute)
	notifier.Publish(1, 0)
	notifier.Dismiss()
	if notifier.Current() != nil {
		t.Error("dismissed notification should be gone")
	}
}
