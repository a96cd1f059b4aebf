// Package settings exposes the account-level configuration endpoints:
// the email prompt library and the company profile used in generated
// outreach.
package settings

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/prospectly/prospectctl/internal/api"
)

// EmailPrompt is a stored generation prompt. Exactly one prompt is
// active at a time; the backend enforces that on activation.
type EmailPrompt struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Prompt     string    `json:"prompt"`
	IsActive   bool      `json:"isActive"`
	CreatedUTC time.Time `json:"createdUtc"`
	UpdatedUTC time.Time `json:"updatedUtc"`
}

// EmailPromptRequest creates or updates a prompt.
type EmailPromptRequest struct {
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// CompanyInfo is the sender's own company profile, woven into
// generated emails.
type CompanyInfo struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Website      *string `json:"website,omitempty"`
	Industry     *string `json:"industry,omitempty"`
	ValueOffer   *string `json:"valueOffer,omitempty"`
	SenderName   *string `json:"senderName,omitempty"`
	SenderTitle  *string `json:"senderTitle,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
}

// Service exposes the settings endpoints of the backend.
type Service struct {
	client *api.Client
}

// NewService creates a settings service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// ListEmailPrompts fetches all stored prompts.
func (s *Service) ListEmailPrompts(ctx context.Context) ([]EmailPrompt, error) {
	var prompts []EmailPrompt
	if err := s.client.Get(ctx, "/settings/email-prompts", &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// ActiveEmailPrompt fetches the active prompt. Having no active prompt
// is a normal state, not an error: a 404 returns nil, nil.
func (s *Service) ActiveEmailPrompt(ctx context.Context) (*EmailPrompt, error) {
	var prompt EmailPrompt
	if err := s.client.Get(ctx, "/settings/email-prompts/active", &prompt); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

// CreateEmailPrompt stores a new prompt.
func (s *Service) CreateEmailPrompt(ctx context.Context, req EmailPromptRequest) (*EmailPrompt, error) {
	var prompt EmailPrompt
	if err := s.client.Post(ctx, "/settings/email-prompts", req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// UpdateEmailPrompt rewrites an existing prompt.
func (s *Service) UpdateEmailPrompt(ctx context.Context, id string, req EmailPromptRequest) (*EmailPrompt, error) {
	var prompt EmailPrompt
	if err := s.client.Put(ctx, "/settings/email-prompts/"+url.PathEscape(id), req, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// ActivateEmailPrompt makes one prompt the active one; the backend
// deactivates the rest.
func (s *Service) ActivateEmailPrompt(ctx context.Context, id string) (*EmailPrompt, error) {
	var prompt EmailPrompt
	if err := s.client.Post(ctx, "/settings/email-prompts/"+url.PathEscape(id)+"/activate", nil, &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// DeleteEmailPrompt removes a prompt.
func (s *Service) DeleteEmailPrompt(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/settings/email-prompts/"+url.PathEscape(id))
}

// GetCompanyInfo fetches the sender's company profile.
func (s *Service) GetCompanyInfo(ctx context.Context) (*CompanyInfo, error) {
	var info CompanyInfo
	if err := s.client.Get(ctx, "/settings/company-info", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateCompanyInfo rewrites the sender's company profile.
func (s *Service) UpdateCompanyInfo(ctx context.Context, info CompanyInfo) (*CompanyInfo, error) {
	var updated CompanyInfo
	if err := s.client.Put(ctx, "/settings/company-info", info, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
