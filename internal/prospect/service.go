package prospect

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/prospectly/prospectctl/internal/api"
	"github.com/prospectly/prospectctl/internal/errors"
)

// Service exposes the prospect endpoints of the backend.
type Service struct {
	client *api.Client
}

// NewService creates a prospect service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List fetches all prospects.
func (s *Service) List(ctx context.Context) ([]Prospect, error) {
	var prospects []Prospect
	if err := s.client.Get(ctx, "/prospects", &prospects); err != nil {
		return nil, err
	}
	return prospects, nil
}

// Get fetches one prospect by id.
func (s *Service) Get(ctx context.Context, id string) (*Prospect, error) {
	var p Prospect
	if err := s.client.Get(ctx, "/prospects/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a prospect; the server assigns the id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Prospect, error) {
	var p Prospect
	if err := s.client.Post(ctx, "/prospects", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

/// Update partially updates a prospect: only supplied fields change.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Prospect, error) {
	var p Prospect
	if err := s.client.Put(ctx, "/prospects/"+url.PathEscape(id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a prospect. Deletion is terminal; the server keeps no
// tombstone and neither does the client.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/prospects/"+url.PathEscape(id))
}

// GenerateEmailDraft asks the backend to draft an outreach email.
// draftType may be empty to let the backend pick its default strategy.
func (s *Service) GenerateEmailDraft(ctx context.Context, id string, draftType DraftType) (*EmailDraft, error) {
	path := "/prospects/" + url.PathEscape(id) + "/email/draft"
	if draftType != "" {
		path += "?type=" + url.QueryEscape(string(draftType))
	}

	var draft EmailDraft
	if err := s.client.Post(ctx, path, nil, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// SendEmail sends the prospect's current draft.
func (s *Service) SendEmail(ctx context.Context, id string) (*SendResult, error) {
	var result SendResult
	if err := s.client.Post(ctx, "/prospects/"+url.PathEscape(id)+"/email/send", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Chat sends one email-improvement chat turn.
func (s *Service) Chat(ctx context.Context, id string, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := s.client.Post(ctx, "/prospects/"+url.PathEscape(id)+"/chat", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetChat clears the server-side chat history for a prospect.
func (s *Service) ResetChat(ctx context.Context, id string) error {
	return s.client.Post(ctx, "/prospects/"+url.PathEscape(id)+"/chat/reset", nil, nil)
}

// GenerateSoftData generates company research for one prospect.
// provider may be empty to use the backend default.
func (s *Service) GenerateSoftData(ctx context.Context, id string, provider Provider) (*SoftCompanyData, error) {
	path := "/prospects/" + url.PathEscape(id) + "/soft-data/generate"
	if provider != "" {
		path += "?provider=" + url.QueryEscape(string(provider))
	}

	var data SoftCompanyData
	if err := s.client.Post(ctx, path, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// BatchItemFailure is one failed item in a batch response.
type BatchItemFailure struct {
	ProspectID string `json:"prospectId"`
	Error      string `json:"error"`
}

// BatchResult is the per-item outcome of a server-side batch operation.
// Successes are kept raw because their shape depends on the operation
// (soft data vs email drafts).
type BatchResult struct {
	Successes    []json.RawMessage  `json:"successes"`
	Failures     []BatchItemFailure `json:"failures"`
	TotalCount   int                `json:"totalCount"`
	SuccessCount int                `json:"successCount"`
	FailureCount int                `json:"failureCount"`
}

// batchSoftDataRequest is the body for the batch research endpoint.
type batchSoftDataRequest struct {
	ProspectIDs []string `json:"prospectIds"`
	Provider    Provider `json:"provider,omitempty"`
}

// batchEmailRequest is the body for the batch email endpoint.
type batchEmailRequest struct {
	ProspectIDs          []string  `json:"prospectIds"`
	Type                 DraftType `json:"type,omitempty"`
	AutoGenerateSoftData bool      `json:"autoGenerateSoftData"`
	SoftDataProvider     Provider  `json:"softDataProvider,omitempty"`
}

// BatchGenerateSoftData runs research for many prospects in one server
// call; the server reports per-item outcomes.
func (s *Service) BatchGenerateSoftData(ctx context.Context, ids []string, provider Provider) (*BatchResult, error) {
	if len(ids) == 0 {
		return nil, errors.NewEmptySelectionError()
	}

	req := batchSoftDataRequest{ProspectIDs: ids, Provider: provider}
	var result BatchResult
	if err := s.client.Post(ctx, "/prospects/batch/soft-data/generate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BatchGenerateEmail drafts emails for many prospects in one server
// call. autoGenerateSoftData lets the backend research prospects that
// have no soft data yet; the complete flow passes false because it just
// ran the research stage itself.
func (s *Service) BatchGenerateEmail(ctx context.Context, ids []string, draftType DraftType, autoGenerateSoftData bool, provider Provider) (*BatchResult, error) {
	if len(ids) == 0 {
		return nil, errors.NewEmptySelectionError()
	}

	req := batchEmailRequest{
		ProspectIDs:          ids,
		Type:                 draftType,
		AutoGenerateSoftData: autoGenerateSoftData,
		SoftDataProvider:     provider,
	}
	var result BatchResult
	if err := s.client.Post(ctx, "/prospects/batch/email/generate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPending fetches imported leads awaiting claim or rejection.
func (s *Service) ListPending(ctx context.Context) ([]PendingProspect, error) {
	var pending []PendingProspect
	if err := s.client.Get(ctx, "/prospects/pending", &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Claim converts a pending prospect into an owned one.
func (s *Service) Claim(ctx context.Context, id string) (*Prospect, error) {
	var p Prospect
	if err := s.client.Post(ctx, "/prospects/"+url.PathEscape(id)+"/claim", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RejectPending discards a pending prospect.
func (s *Service) RejectPending(ctx context.Context, id string) error {
	return s.client.Post(ctx, "/prospects/"+url.PathEscape(id)+"/pending/reject", nil, nil)
}
