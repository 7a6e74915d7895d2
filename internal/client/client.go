// Package client is a Go client for the presentation platform API. It
// implements the composer-side contract: parameters are validated before
// any network traffic, and each submission issues exactly one call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

// ErrTopicRequired blocks a submission with an empty topic. No request is
// issued when it is returned.
var ErrTopicRequired = errors.New("topic is required")

// APIError is a non-success response from the platform.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error (status %d): %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the presentation platform. Each Client owns one session: its
// generations and edits all target the same stored deck.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessionID  string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionID pins the session instead of generating one.
func WithSessionID(id string) Option {
	return func(c *Client) { c.sessionID = id }
}

// WithToken sends a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 3 * time.Minute},
		sessionID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID returns the session this client submits under.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Generate submits a generation request. The topic precondition is checked
// locally first: an empty topic fails fast without a network round-trip.
// A successful result replaces the session's previously stored document.
func (c *Client) Generate(ctx context.Context, req *model.GenerationRequest) (*model.GenerateResponse, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, ErrTopicRequired
	}
	req.SessionID = c.sessionID

	var resp model.GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/decks/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDeck loads the session's current document.
func (c *Client) GetDeck(ctx context.Context) (*model.PresentationDocument, error) {
	var deck model.Deck
	if err := c.do(ctx, http.MethodGet, "/api/v1/decks/"+c.sessionID, nil, &deck); err != nil {
		return nil, err
	}
	return &deck.Document, nil
}

// UpdateSlide replaces the slide matching the given slide's index and
// returns the full document after the edit.
func (c *Client) UpdateSlide(ctx context.Context, slide model.Slide) (*model.UpdateSlideResponse, error) {
	path := fmt.Sprintf("/api/v1/decks/%s/slides/%d", c.sessionID, slide.Index)
	var resp model.UpdateSlideResponse
	if err := c.do(ctx, http.MethodPut, path, model.UpdateSlideRequest{Slide: slide}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Export streams the formatted JSON export into w and returns the filename
// the server suggested.
func (c *Client) Export(ctx context.Context, w io.Writer) (string, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, "/api/v1/decks/"+c.sessionID+"/export", nil)
	if err != nil {
		return "", err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return "", decodeAPIError(httpResp)
	}

	if _, err := io.Copy(w, httpResp.Body); err != nil {
		return "", err
	}

	filename := ""
	if cd := httpResp.Header.Get("Content-Disposition"); cd != "" {
		if i := strings.Index(cd, "filename="); i >= 0 {
			filename = strings.Trim(cd[i+len("filename="):], `"`)
		}
	}
	return filename, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	httpReq, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return decodeAPIError(httpResp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(httpResp.Body).Decode(out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("X-Session-ID", c.sessionID)
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	return httpReq, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
	}
	return apiErr
}
