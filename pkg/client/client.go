// Package client is a Go SDK for the lead generation API. Besides plain
// request helpers it carries the view state of the lead browser and the
// settings autosave.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx answer of the API. It matches the serrors kind named
// by its code, so errors.Is(err, serrors.ErrConflict) works on it.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return serrors.NewKind(e.Code)
}

// LeadQuery selects one page of leads.
type LeadQuery struct {
	Filter   domain.LeadFilter
	Page     int
	PageSize int
}

// LocationValidation mirrors the server's validation result.
type LocationValidation struct {
	Valid   []domain.Location `json:"valid"`
	Invalid []string          `json:"invalid"`
}

// TriggerResult is the answer of a workflow trigger.
type TriggerResult struct {
	Webhook        string `json:"webhook"`
	Message        string `json:"message"`
	RefreshAfterMs int64  `json:"refreshAfterMs"`
}

// RefreshAfter is how long to wait before reloading affected views.
func (r TriggerResult) RefreshAfter() time.Duration {
	return time.Duration(r.RefreshAfterMs) * time.Millisecond
}

// SearchPreview lists the combinations a search would run.
type SearchPreview struct {
	Combinations []domain.SearchCombination `json:"combinations"`
	New          int                        `json:"new"`
}

// Client talks to the lead generation API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New constructs a Client for the API at baseURL authenticating with token.
func New(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(b, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = serrors.ErrInternal.Error()
			apiErr.Message = strings.TrimSpace(string(b))
		}

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

func (c *Client) Account(ctx context.Context) (*domain.Account, error) {
	var acc domain.Account
	if err := c.do(ctx, http.MethodGet, "/v1/account", nil, nil, &acc); err != nil {
		return nil, err
	}

	return &acc, nil
}

// ListLeads fetches one page of leads. Zero Page and PageSize use the
// server defaults.
func (c *Client) ListLeads(ctx context.Context, q LeadQuery) (domain.LeadPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	params.Set("includeWithoutEmail", strconv.FormatBool(q.Filter.IncludeWithoutEmail))
	params.Set("includeAlreadyEmailed", strconv.FormatBool(q.Filter.IncludeAlreadyEmailed))
	params.Set("excludedOnly", strconv.FormatBool(q.Filter.ExcludedOnly))

	var page domain.LeadPage
	err := c.do(ctx, http.MethodGet, "/v1/leads", params, nil, &page)

	return page, err
}

type leadIDsReq struct {
	LeadIDs []domain.LeadID `json:"leadIds"`
}

type updatedRes struct {
	Updated int64 `json:"updated"`
}

// Exclude hides leads and adds the categories to the account's exclusion list.
func (c *Client) Exclude(ctx context.Context, ids []domain.LeadID, categories []string, custom string) (int64, error) {
	in := struct {
		LeadIDs          []domain.LeadID `json:"leadIds"`
		Categories       []string        `json:"categories"`
		CustomCategories string          `json:"customCategories"`
	}{ids, categories, custom}

	var out updatedRes
	err := c.do(ctx, http.MethodPost, "/v1/leads/exclude", nil, in, &out)

	return out.Updated, err
}

func (c *Client) Restore(ctx context.Context, ids []domain.LeadID) (int64, error) {
	var out updatedRes
	err := c.do(ctx, http.MethodPost, "/v1/leads/restore", nil, leadIDsReq{ids}, &out)

	return out.Updated, err
}

// SelectedCategories returns the categories of the given leads for the
// exclusion dialog.
func (c *Client) SelectedCategories(ctx context.Context, ids []domain.LeadID) ([]string, error) {
	var out struct {
		Categories []string `json:"categories"`
	}
	err := c.do(ctx, http.MethodPost, "/v1/leads/categories", nil, leadIDsReq{ids}, &out)

	return out.Categories, err
}

func (c *Client) Settings(ctx context.Context) (domain.SearchSettings, error) {
	var out domain.SearchSettings
	err := c.do(ctx, http.MethodGet, "/v1/settings", nil, nil, &out)

	return out, err
}

func (c *Client) UpdateSettings(ctx context.Context, s domain.SearchSettings) (domain.SearchSettings, error) {
	var out domain.SearchSettings
	err := c.do(ctx, http.MethodPut, "/v1/settings", nil, s, &out)

	return out, err
}

func (c *Client) ValidateLocations(ctx context.Context, raw string) (LocationValidation, error) {
	in := struct {
		Locations string `json:"locations"`
	}{raw}

	var out LocationValidation
	err := c.do(ctx, http.MethodPost, "/v1/locations/validate", nil, in, &out)

	return out, err
}

func (c *Client) PreviewSearch(ctx context.Context) (SearchPreview, error) {
	var out SearchPreview
	err := c.do(ctx, http.MethodGet, "/v1/search/preview", nil, nil, &out)

	return out, err
}

func (c *Client) TriggerSearch(ctx context.Context, repeat bool) (TriggerResult, error) {
	in := struct {
		Repeat bool `json:"repeat"`
	}{repeat}

	var out TriggerResult
	err := c.do(ctx, http.MethodPost, "/v1/search/trigger", nil, in, &out)

	return out, err
}

func (c *Client) GenerateEmails(ctx context.Context, ids []domain.LeadID) (TriggerResult, error) {
	var out TriggerResult
	err := c.do(ctx, http.MethodPost, "/v1/emails/generate", nil, leadIDsReq{ids}, &out)

	return out, err
}

type draftsRes struct {
	Drafts []domain.EmailDraft `json:"drafts"`
}

func (c *Client) Drafts(ctx context.Context, archived bool) ([]domain.EmailDraft, error) {
	params := url.Values{"archived": []string{strconv.FormatBool(archived)}}

	var out draftsRes
	err := c.do(ctx, http.MethodGet, "/v1/drafts", params, nil, &out)

	return out.Drafts, err
}

func (c *Client) ExportDrafts(ctx context.Context, ids []domain.DraftID) ([]domain.EmailDraft, error) {
	in := struct {
		DraftIDs []domain.DraftID `json:"draftIds"`
	}{ids}

	var out draftsRes
	err := c.do(ctx, http.MethodPost, "/v1/drafts/export", nil, in, &out)

	return out.Drafts, err
}
