package prospect

import "time"

// Status tracks a prospect through the outreach lifecycle.
// The order is meaningful: sorting by status follows this progression.
type Status int

const (
	StatusNew Status = iota
	StatusResearched
	StatusDrafted
	StatusEmailed
	StatusResponded
	StatusArchived
)

// String returns the display label for the status
func (s Status) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusResearched:
		return "Researched"
	case StatusDrafted:
		return "Drafted"
	case StatusEmailed:
		return "Emailed"
	case StatusResponded:
		return "Responded"
	case StatusArchived:
		return "Archived"
	default:
		return "Unknown"
	}
}

// ParseStatus parses a status label. Matching is case-sensitive on the
// canonical labels; ok is false for anything else.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "New":
		return StatusNew, true
	case "Researched":
		return StatusResearched, true
	case "Drafted":
		return StatusDrafted, true
	case "Emailed":
		return StatusEmailed, true
	case "Responded":
		return StatusResponded, true
	case "Archived":
		return StatusArchived, true
	default:
		return StatusNew, false
	}
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusResearched, StatusDrafted, StatusEmailed, StatusResponded, StatusArchived}
}

// Website is a website contact record
type Website struct {
	URL     *string `json:"url,omitempty"`
	Service *string `json:"service,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// EmailAddress is an email contact record
type EmailAddress struct {
	Address *string `json:"address,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// PhoneNumber is a phone contact record
type PhoneNumber struct {
	Number *string `json:"number,omitempty"`
	Type   *string `json:"type,omitempty"`
}

// Address is a postal address contact record
type Address struct {
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Country *string `json:"country,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// Tag is a CRM tag attached to an imported prospect
type Tag struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	DataTag bool   `json:"dataTag"`
}

// CustomField is a CRM custom field attached to an imported prospect
type CustomField struct {
	ID                int64   `json:"id"`
	FieldName         *string `json:"fieldName,omitempty"`
	FieldDefinitionID *int64  `json:"fieldDefinitionId,omitempty"`
	Value             *string `json:"value,omitempty"`
	TagID             *int64  `json:"tagId,omitempty"`
}

// Prospect is a sales-lead record. The server assigns the id on
// creation; partial updates change only the supplied fields.
type Prospect struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	IsFromCapsule   bool             `json:"isFromCapsule"`
	CapsuleID       *int64           `json:"capsuleId,omitempty"`
	IsPending       bool             `json:"isPending"`
	About           *string          `json:"about,omitempty"`
	Websites        []Website        `json:"websites"`
	EmailAddresses  []EmailAddress   `json:"emailAddresses"`
	PhoneNumbers    []PhoneNumber    `json:"phoneNumbers"`
	Addresses       []Address        `json:"addresses"`
	Tags            []Tag            `json:"tags"`
	CustomFields    []CustomField    `json:"customFields"`
	PictureURL      *string          `json:"pictureURL,omitempty"`
	LastContactedAt *time.Time       `json:"lastContactedAt,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Status          Status           `json:"status"`
	CreatedUTC      time.Time        `json:"createdUtc"`
	UpdatedUTC      *time.Time       `json:"updatedUtc,omitempty"`
	MailTitle       *string          `json:"mailTitle,omitempty"`
	MailBodyPlain   *string          `json:"mailBodyPlain,omitempty"`
	MailBodyHTML    *string          `json:"mailBodyHTML,omitempty"`
	OwnerID         *string          `json:"ownerId,omitempty"`
	SoftCompanyData *SoftCompanyData `json:"softCompanyData,omitempty"`
}

// HasEmail reports whether the prospect has at least one email address.
func (p *Prospect) HasEmail() bool {
	return len(p.EmailAddresses) > 0
}

// HasContact reports whether the prospect has at least one contact
// method of any kind: email, phone, or website.
func (p *Prospect) HasContact() bool {
	return len(p.EmailAddresses) > 0 || len(p.PhoneNumbers) > 0 || len(p.Websites) > 0
}

// PrimaryEmail returns the first non-empty email address, or "".
func (p *Prospect) PrimaryEmail() string {
	for _, e := range p.EmailAddresses {
		if e.Address != nil && *e.Address != "" {
			return *e.Address
		}
	}
	return ""
}

// PrimaryWebsite returns the first non-empty website URL, or "".
func (p *Prospect) PrimaryWebsite() string {
	for _, w := range p.Websites {
		if w.URL != nil && *w.URL != "" {
			return *w.URL
		}
	}
	return ""
}

// CreateRequest is the payload for creating a prospect.
type CreateRequest struct {
	Name           string   `json:"name"`
	Websites       []string `json:"websites,omitempty"`
	EmailAddresses []string `json:"emailAddresses,omitempty"`
	PhoneNumbers   []string `json:"phoneNumbers,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// UpdateRequest is a partial update: only non-nil fields change.
type UpdateRequest struct {
	Name           *string  `json:"name,omitempty"`
	Websites       []string `json:"websites,omitempty"`
	EmailAddresses []string `json:"emailAddresses,omitempty"`
	PhoneNumbers   []string `json:"phoneNumbers,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	Status         *Status  `json:"status,omitempty"`
	MailTitle      *string  `json:"mailTitle,omitempty"`
	MailBodyPlain  *string  `json:"mailBodyPlain,omitempty"`
	MailBodyHTML   *string  `json:"mailBodyHTML,omitempty"`
}

// PendingProspect is an imported lead awaiting claim or rejection.
type PendingProspect struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CapsuleID      int64          `json:"capsuleId"`
	About          *string        `json:"about,omitempty"`
	PictureURL     *string        `json:"pictureURL,omitempty"`
	Websites       []Website      `json:"websites"`
	EmailAddresses []EmailAddress `json:"emailAddresses"`
	CreatedUTC     time.Time      `json:"createdUtc"`
}

// EmailDraft is a generated outreach email.
type EmailDraft struct {
	MailTitle     string `json:"mailTitle,omitempty"`
	MailBodyPlain string `json:"mailBodyPlain,omitempty"`
	MailBodyHTML  string `json:"mailBodyHTML,omitempty"`
}

// DraftType selects the email generation strategy.
type DraftType string

const (
	// DraftTypeWebSearch generates from a live web search.
	DraftTypeWebSearch DraftType = "WebSearch"
	// DraftTypeUseCollectedData generates from previously collected soft data.
	DraftTypeUseCollectedData DraftType = "UseCollectedData"
)

// Provider selects the research backend for soft-data generation.
type Provider string

const (
	ProviderOpenAI Provider = "OpenAI"
	ProviderClaude Provider = "Claude"
	ProviderHybrid Provider = "Hybrid"
)

// SendResult is the response from the email send endpoint.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ChatRequest is one turn of the email-improvement chat.
type ChatRequest struct {
	UserInput       string   `json:"userInput"`
	MailTitle       *string  `json:"mailTitle,omitempty"`
	MailBodyPlain   *string  `json:"mailBodyPlain,omitempty"`
	UseWebSearch    *bool    `json:"useWebSearch,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}

// ChatResponse is the assistant's reply; when ImprovedMail is set the
// mail fields carry the rewritten draft.
type ChatResponse struct {
	AIMessage     string  `json:"aiMessage"`
	ImprovedMail  bool    `json:"improvedMail"`
	MailTitle     *string `json:"mailTitle,omitempty"`
	MailBodyPlain *string `json:"mailBodyPlain,omitempty"`
	MailBodyHTML  *string `json:"mailBodyHTML,omitempty"`
}

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a client-side chat log entry.
type ChatMessage struct {
	ID           string      `json:"id"`
	Role         ChatRole    `json:"role"`
	Content      string      `json:"content"`
	Timestamp    time.Time   `json:"timestamp"`
	ImprovedMail bool        `json:"improvedMail,omitempty"`
	MailData     *EmailDraft `json:"mailData,omitempty"`
}
