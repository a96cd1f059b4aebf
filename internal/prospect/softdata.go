package prospect

import (
	"encoding/json"
	"time"
)

// SoftCompanyData is server-generated research about a prospect's
// company. The list payloads arrive as JSON-encoded strings, the way
// the backend stores them.
type SoftCompanyData struct {
	ID                 string     `json:"id"`
	ProspectID         string     `json:"prospectId"`
	HooksJSON          *string    `json:"hooksJson,omitempty"`
	RecentEventsJSON   *string    `json:"recentEventsJson,omitempty"`
	NewsItemsJSON      *string    `json:"newsItemsJson,omitempty"`
	SocialActivityJSON *string    `json:"socialActivityJson,omitempty"`
	SourcesJSON        *string    `json:"sourcesJson,omitempty"`
	ResearchedAt       time.Time  `json:"researchedAt"`
	CreatedUTC         time.Time  `json:"createdUtc"`
	UpdatedUTC         *time.Time `json:"updatedUtc,omitempty"`
}

// PersonalizationHook is a fact usable as an email opener.
type PersonalizationHook struct {
	Text      string `json:"text"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	Relevance string `json:"relevance"`
}

// CompanyEvent is a recent event at the prospect's company.
type CompanyEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// NewsItem is a news mention of the prospect's company.
type NewsItem struct {
	Headline string `json:"headline"`
	Date     string `json:"date"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// SocialActivity is a recent social media post.
type SocialActivity struct {
	Platform string `json:"platform"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	URL      string `json:"url"`
}

// ParsedSoftData is SoftCompanyData with the JSON payload columns
// decoded into structured slices.
type ParsedSoftData struct {
	Hooks          []PersonalizationHook `json:"hooks"`
	Events         []CompanyEvent        `json:"events"`
	News           []NewsItem            `json:"news"`
	SocialActivity []SocialActivity      `json:"socialActivity"`
	Sources        []string              `json:"sources"`
	ResearchedAt   time.Time             `json:"researchedAt"`
}

// Parse decodes the JSON payload columns. Malformed or missing columns
// decode as empty slices; research data is best-effort and a bad column
// must not hide the rest.
func (d *SoftCompanyData) Parse() *ParsedSoftData {
	if d == nil {
		return nil
	}

	parsed := &ParsedSoftData{
		Hooks:          []PersonalizationHook{},
		Events:         []CompanyEvent{},
		News:           []NewsItem{},
		SocialActivity: []SocialActivity{},
		Sources:        []string{},
		ResearchedAt:   d.ResearchedAt,
	}

	decodeColumn(d.HooksJSON, &parsed.Hooks)
	decodeColumn(d.RecentEventsJSON, &parsed.Events)
	decodeColumn(d.NewsItemsJSON, &parsed.News)
	decodeColumn(d.SocialActivityJSON, &parsed.SocialActivity)
	decodeColumn(d.SourcesJSON, &parsed.Sources)

	return parsed
}

// decodeColumn decodes one JSON-string column, leaving out untouched on
// any failure. The backend sometimes stores literal "null".
func decodeColumn(column *string, out any) {
	if column == nil || *column == "" || *column == "null" {
		return
	}
	_ = json.Unmarshal([]byte(*column), out)
}

// DefaultStaleAfter is how old research data may be before it should be
// regenerated.
const DefaultStaleAfter = 7 * 24 * time.Hour

// IsStale reports whether the research data is older than maxAge.
// Missing data counts as stale.
func (d *SoftCompanyData) IsStale(maxAge time.Duration) bool {
	if d == nil {
		return true
	}
	return time.Since(d.ResearchedAt) > maxAge
}

// AgeDays returns the age of the research data in whole days.
func (d *SoftCompanyData) AgeDays() int {
	if d == nil {
		return 0
	}
	return int(time.Since(d.ResearchedAt).Hours() / 24)
}
