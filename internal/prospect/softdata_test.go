package prospect

import (
	"testing"
	"time"
)

func TestSoftDataParse(t *testing.T) {
	hooks := `[{"text":"Raised series A","source":"news","date":"2026-02-01","relevance":"high"}]`
	news := `[{"headline":"Acme expands","date":"2026-02-10","source":"DI","url":"https://di.se/x"}]`
	sources := `["https://acme.se","https://di.se"]`

	data := &SoftCompanyData{
		ID:            "sd-1",
		ProspectID:    "p-1",
		HooksJSON:     &hooks,
		NewsItemsJSON: &news,
		SourcesJSON:   &sources,
		ResearchedAt:  time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
	}

	parsed := data.Parse()
	if len(parsed.Hooks) != 1 || parsed.Hooks[0].Relevance != "high" {
		t.Errorf("unexpected hooks: %+v", parsed.Hooks)
	}
	if len(parsed.News) != 1 || parsed.News[0].Headline != "Acme expands" {
		t.Errorf("unexpected news: %+v", parsed.News)
	}
	if len(parsed.Sources) != 2 {
		t.Errorf("unexpected sources: %+v", parsed.Sources)
	}
	// Unset columns decode as empty slices, not nil.
	if parsed.Events == nil || len(parsed.Events) != 0 {
		t.Errorf("unexpected events: %+v", parsed.Events)
	}
	if !parsed.ResearchedAt.Equal(data.ResearchedAt) {
		t.Errorf("unexpected researchedAt: %v", parsed.ResearchedAt)
	}
}

func TestSoftDataParseTolerance(t *testing.T) {
	malformed := `[{"text": unterminated`
	literalNull := "null"

	data := &SoftCompanyData{
		HooksJSON:        &malformed,
		RecentEventsJSON: &literalNull,
	}

	// A bad column must not hide the rest.
	parsed := data.Parse()
	if len(parsed.Hooks) != 0 {
		t.Errorf("malformed column should decode as empty, got %+v", parsed.Hooks)
	}
	if len(parsed.Events) != 0 {
		t.Errorf("literal null should decode as empty, got %+v", parsed.Events)
	}
}

func TestSoftDataParseNil(t *testing.T) {
	var data *SoftCompanyData
	if parsed := data.Parse(); parsed != nil {
		t.Errorf("nil data should parse to nil, got %+v", parsed)
	}
}

func TestSoftDataStaleness(t *testing.T) {
	fresh := &SoftCompanyData{ResearchedAt: time.Now().Add(-24 * time.Hour)}
	old := &SoftCompanyData{ResearchedAt: time.Now().Add(-10 * 24 * time.Hour)}

	if fresh.IsStale(DefaultStaleAfter) {
		t.Error("day-old data should not be stale at the default threshold")
	}
	if !old.IsStale(DefaultStaleAfter) {
		t.Error("ten-day-old data should be stale at the default threshold")
	}

	var missing *SoftCompanyData
	if !missing.IsStale(DefaultStaleAfter) {
		t.Error("missing data counts as stale")
	}
	if missing.AgeDays() != 0 {
		t.Error("missing data has zero age")
	}

	if got := old.AgeDays(); got != 10 {
		t.Errorf("AgeDays() = %d, want 10", got)
	}
}
