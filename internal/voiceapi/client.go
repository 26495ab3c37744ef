package voiceapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/callpulse/callpulse/internal/domain/models"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// httpDoer is the subset of *http.Client the Client needs; tests can
// substitute their own implementation.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches call records from the hosted voice backend.
//
// The backend exposes GET /v1/calls with startedAtGe/startedAtLe window
// params, a limit, and cursor-based pagination. Authentication is a
// bearer token.
type Client struct {
	baseURL  string
	token    string
	pageSize int
	http     httpDoer
}

// NewClient constructs a Client for the given base URL and token.
// pageSize is clamped to [1, 1000]; 0 selects the default of 100.
func NewClient(baseURL, token string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		pageSize: pageSize,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// wireCall mirrors the upstream JSON shape. A missing cost decodes to 0,
// matching the backend's contract for free-tier calls.
type wireCall struct {
	ID              string    `json:"id"`
	StartedAt       time.Time `json:"startedAt"`
	DurationSeconds float64   `json:"durationSeconds"`
	Cost            float64   `json:"cost"`
	EndedReason     string    `json:"endedReason"`
}

type listCallsPage struct {
	Calls      []wireCall `json:"calls"`
	NextCursor string     `json:"nextCursor"`
}

// ListCalls fetches every call that started inside [start, end], following
// the cursor until the upstream reports no further pages.
func (c *Client) ListCalls(ctx context.Context, start, end time.Time) ([]models.CallRecord, error) {
	var out []models.CallRecord
	cursor := ""

	for {
		page, err := c.fetchPage(ctx, start, end, cursor)
		if err != nil {
			return nil, err
		}
		for _, w := range page.Calls {
			out = append(out, models.CallRecord{
				ID:              w.ID,
				OccurredAt:      w.StartedAt.UTC(),
				DurationSeconds: w.DurationSeconds,
				Cost:            w.Cost,
				EndReason:       w.EndedReason,
			})
		}
		if page.NextCursor == "" {
			return out, nil
		}
		cursor = page.NextCursor
	}
}

func (c *Client) fetchPage(ctx context.Context, start, end time.Time, cursor string) (*listCallsPage, error) {
	u, err := url.Parse(c.baseURL + "/v1/calls")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("startedAtGe", start.UTC().Format(time.RFC3339))
	q.Set("startedAtLe", end.UTC().Format(time.RFC3339))
	q.Set("limit", strconv.Itoa(c.pageSize))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body, URL: u.String()}
	}

	var page listCallsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode calls page: %w", err)
	}
	return &page, nil
}
